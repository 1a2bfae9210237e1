package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/domain"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// StockQueryUseCase listados de solo lectura sobre las existencias.
// Nunca participa en el ajuste: lee fuera de transacción y no cachea niveles.
type StockQueryUseCase struct {
	stockRepo repository.StockLevelRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockLevelRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo}
}

// GetLevel devuelve la existencia puntual de un par (producto, bodega).
// Un par sin fila reporta Quantity = 0: "no hay stock" es una respuesta, no un error.
func (uc *StockQueryUseCase) GetLevel(ctx context.Context, productID, warehouseID int64) (*dto.StockLevelDetail, error) {
	if productID <= 0 || warehouseID <= 0 {
		return nil, fmt.Errorf("%w: product_id y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	level, err := uc.stockRepo.Get(ctx, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return &dto.StockLevelDetail{
		ProductID:     level.ProductID,
		WarehouseID:   level.WarehouseID,
		Quantity:      level.Quantity,
		LastRestockAt: level.LastRestockAt,
		UpdatedAt:     level.UpdatedAt,
	}, nil
}

// List devuelve el inventario completo con nombres de producto, bodega y categoría.
func (uc *StockQueryUseCase) List(ctx context.Context) ([]dto.StockLevelRow, error) {
	views, err := uc.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockLevelRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, dto.StockLevelRow{
			ProductID:     v.Level.ProductID,
			WarehouseID:   v.Level.WarehouseID,
			Quantity:      v.Level.Quantity,
			LastRestockAt: v.Level.LastRestockAt,
			UpdatedAt:     v.Level.UpdatedAt,
			ProductCode:   v.ProductCode,
			ProductName:   v.ProductName,
			UnitPrice:     v.UnitPrice,
			WarehouseName: v.WarehouseName,
			CategoryName:  v.CategoryName,
		})
	}
	return rows, nil
}
