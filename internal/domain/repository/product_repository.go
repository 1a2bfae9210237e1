package repository

import (
	"context"

	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*ProductView, error)
	Update(ctx context.Context, product *entity.Product) error
	// List devuelve los productos activos con nombres de categoría/proveedor y stock total.
	List(ctx context.Context) ([]*ProductView, error)
	// Deactivate marca el producto como inactivo (soft delete); las filas de stock y
	// el libro de movimientos no se tocan.
	Deactivate(ctx context.Context, id int64) error
}

// ProductView producto con campos desnormalizados para listados y detalle.
type ProductView struct {
	Product      entity.Product
	CategoryName string
	SupplierName string
	TotalStock   int
}
