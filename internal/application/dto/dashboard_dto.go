package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsResponse contadores del panel principal.
type DashboardStatsResponse struct {
	TotalProducts       int             `json:"total_products"`
	LowStockProducts    int             `json:"low_stock_products"`
	TotalCategories     int             `json:"total_categories"`
	TotalWarehouses     int             `json:"total_warehouses"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	RecentTransactions  int             `json:"recent_transactions"`
}

// LowStockProductDTO producto bajo su nivel de reorden.
type LowStockProductDTO struct {
	ProductCode  string          `json:"product_code"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name,omitempty"`
	CurrentStock int             `json:"current_stock"`
	ReorderLevel int             `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// RecentTransactionDTO movimiento reciente para el dashboard y el reporte de transacciones.
type RecentTransactionDTO struct {
	ID            int64     `json:"id"`
	Direction     string    `json:"direction"`
	Quantity      int       `json:"quantity"`
	Notes         string    `json:"notes,omitempty"`
	ActorName     string    `json:"actor_name,omitempty"`
	ProductCode   string    `json:"product_code"`
	ProductName   string    `json:"product_name"`
	WarehouseName string    `json:"warehouse_name"`
	CreatedAt     time.Time `json:"created_at"`
}
