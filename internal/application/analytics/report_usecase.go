package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// Límite duro del reporte de transacciones, igual que el listado de la UI.
const transactionReportLimit = 100

// ReportUseCase reportes de solo lectura: valorización por bodega, niveles de stock
// y movimientos filtrados. El PDF de valorización se delega al puerto ReportPDFGenerator.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	ledgerRepo repository.LedgerRepository
	pdf        ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se expone el export.
func NewReportUseCase(reportRepo repository.ReportRepository, ledgerRepo repository.LedgerRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, ledgerRepo: ledgerRepo, pdf: pdf}
}

// InventoryValue valoriza el inventario activo por bodega.
func (uc *ReportUseCase) InventoryValue(ctx context.Context) ([]dto.WarehouseValueDTO, error) {
	rows, err := uc.reportRepo.GetInventoryValueByWarehouse(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseValueDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.WarehouseValueDTO{
			WarehouseName: r.WarehouseName,
			ProductCount:  r.ProductCount,
			TotalUnits:    r.TotalUnits,
			TotalValue:    r.TotalValue,
		})
	}
	return items, nil
}

// InventoryValuePDF genera el reporte de valorización como PDF.
func (uc *ReportUseCase) InventoryValuePDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.reportRepo.GetInventoryValueByWarehouse(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryValuePDF(ctx, rows)
}

// StockLevels devuelve el stock total por producto, del más bajo al más alto.
func (uc *ReportUseCase) StockLevels(ctx context.Context) ([]dto.ProductStockLevelDTO, error) {
	rows, err := uc.reportRepo.GetProductStockLevels(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductStockLevelDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductStockLevelDTO{
			ProductID:    r.ProductID,
			ProductCode:  r.ProductCode,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			TotalStock:   r.TotalStock,
			ReorderLevel: r.ReorderLevel,
			Status:       r.Status,
		})
	}
	return items, nil
}

// Transaction devuelve una entrada del libro por ID; nil si no existe (404 lo decide el handler).
func (uc *ReportUseCase) Transaction(ctx context.Context, id int64) (*dto.LedgerEntryResponse, error) {
	entry, err := uc.ledgerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return &dto.LedgerEntryResponse{
		ID:             entry.ID,
		TransactionRef: entry.TransactionRef,
		ProductID:      entry.ProductID,
		WarehouseID:    entry.WarehouseID,
		Direction:      entry.Direction,
		Quantity:       entry.Quantity,
		Notes:          entry.Notes,
		ActorName:      entry.ActorName,
		CreatedAt:      entry.CreatedAt,
	}, nil
}

// Transactions devuelve movimientos del libro filtrados por rango de fechas y dirección.
func (uc *ReportUseCase) Transactions(ctx context.Context, from, to *time.Time, direction string) ([]dto.RecentTransactionDTO, error) {
	views, err := uc.ledgerRepo.List(ctx, repository.LedgerFilter{
		From:      from,
		To:        to,
		Direction: direction,
		Limit:     transactionReportLimit,
	})
	if err != nil {
		return nil, err
	}
	return toTransactionDTOs(views), nil
}
