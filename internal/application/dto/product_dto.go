package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/{id}. Campos nil no se modifican.
type UpdateProductRequest struct {
	Code         *string          `json:"code,omitempty"`
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	CategoryID   *int64           `json:"category_id,omitempty"`
	SupplierID   *int64           `json:"supplier_id,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	ReorderLevel *int             `json:"reorder_level,omitempty"`
	ImageURL     *string          `json:"image_url,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// ProductResponse producto con nombres desnormalizados y stock total.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
	ImageURL     string          `json:"image_url,omitempty"`
	IsActive     bool            `json:"is_active"`
	CategoryName string          `json:"category_name,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	TotalStock   int             `json:"total_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
