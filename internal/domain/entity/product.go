package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryID y SupplierID son opcionales (nil = sin asignar).
// La existencia por bodega vive en StockLevel; aquí solo el umbral de reorden.
type Product struct {
	ID           int64
	Code         string // código único de producto
	Name         string
	Description  string
	CategoryID   *int64
	SupplierID   *int64
	UnitPrice    decimal.Decimal
	ReorderLevel int
	ImageURL     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
