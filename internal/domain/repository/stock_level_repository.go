package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
)

// StockLevelRepository define el puerto para consultar/actualizar existencias por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia.
type StockLevelRepository interface {
	Get(ctx context.Context, productID, warehouseID int64) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Si el par no existe devuelve un nivel con Quantity = 0 (sin fila aún).
	GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.StockLevel, error)
	// Upsert inserta o actualiza la cantidad; refresca last_restock_at y updated_at.
	Upsert(ctx context.Context, level *entity.StockLevel) error
	List(ctx context.Context) ([]*StockLevelView, error)
}

// StockLevelView fila del listado de inventario con nombres desnormalizados para la UI.
type StockLevelView struct {
	Level         entity.StockLevel
	ProductCode   string
	ProductName   string
	UnitPrice     decimal.Decimal
	WarehouseName string
	CategoryName  string
}
