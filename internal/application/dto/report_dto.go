package dto

import "github.com/shopspring/decimal"

// WarehouseValueDTO valorización del inventario de una bodega.
type WarehouseValueDTO struct {
	WarehouseName string          `json:"warehouse_name"`
	ProductCount  int             `json:"product_count"`
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// ProductStockLevelDTO stock total por producto frente a su nivel de reorden.
type ProductStockLevelDTO struct {
	ProductID    int64  `json:"product_id"`
	ProductCode  string `json:"product_code"`
	ProductName  string `json:"product_name"`
	CategoryName string `json:"category_name,omitempty"`
	TotalStock   int    `json:"total_stock"`
	ReorderLevel int    `json:"reorder_level"`
	Status       string `json:"status"` // OK | LOW
}
