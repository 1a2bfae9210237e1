package analytics

import (
	"context"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// DashboardUseCase agrega las lecturas del panel principal: contadores globales,
// productos bajo reorden y últimos movimientos.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	ledgerRepo repository.LedgerRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, ledgerRepo repository.LedgerRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, ledgerRepo: ledgerRepo}
}

// Stats devuelve los contadores agregados del panel.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.reportRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:       stats.TotalProducts,
		LowStockProducts:    stats.LowStockProducts,
		TotalCategories:     stats.TotalCategories,
		TotalWarehouses:     stats.TotalWarehouses,
		TotalInventoryValue: stats.TotalInventoryValue,
		RecentTransactions:  stats.RecentTransactions,
	}, nil
}

// LowStock devuelve hasta limit productos en o bajo su nivel de reorden.
func (uc *DashboardUseCase) LowStock(ctx context.Context, limit int) ([]dto.LowStockProductDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.reportRepo.GetLowStockProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockProductDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.LowStockProductDTO{
			ProductCode:  r.ProductCode,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			CurrentStock: r.CurrentStock,
			ReorderLevel: r.ReorderLevel,
			UnitPrice:    r.UnitPrice,
		})
	}
	return items, nil
}

// RecentTransactions devuelve los últimos limit movimientos del libro.
func (uc *DashboardUseCase) RecentTransactions(ctx context.Context, limit int) ([]dto.RecentTransactionDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	views, err := uc.ledgerRepo.List(ctx, repository.LedgerFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	return toTransactionDTOs(views), nil
}

func toTransactionDTOs(views []*repository.LedgerEntryView) []dto.RecentTransactionDTO {
	items := make([]dto.RecentTransactionDTO, 0, len(views))
	for _, v := range views {
		items = append(items, dto.RecentTransactionDTO{
			ID:            v.Entry.ID,
			Direction:     v.Entry.Direction,
			Quantity:      v.Entry.Quantity,
			Notes:         v.Entry.Notes,
			ActorName:     v.Entry.ActorName,
			ProductCode:   v.ProductCode,
			ProductName:   v.ProductName,
			WarehouseName: v.WarehouseName,
			CreatedAt:     v.Entry.CreatedAt,
		})
	}
	return items
}
