package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardStats contadores agregados para el panel principal.
type DashboardStats struct {
	TotalProducts       int
	LowStockProducts    int
	TotalCategories     int
	TotalWarehouses     int
	TotalInventoryValue decimal.Decimal
	RecentTransactions  int // últimos 30 días
}

// LowStockProduct producto activo cuyo stock total está en o bajo su nivel de reorden.
type LowStockProduct struct {
	ProductCode  string
	ProductName  string
	CategoryName string
	CurrentStock int
	ReorderLevel int
	UnitPrice    decimal.Decimal
}

// WarehouseValue valorización del inventario de una bodega (reporte).
type WarehouseValue struct {
	WarehouseName string
	ProductCount  int
	TotalUnits    int
	TotalValue    decimal.Decimal
}

// ProductStockLevel stock total de un producto con su estado frente al nivel de reorden.
type ProductStockLevel struct {
	ProductID    int64
	ProductCode  string
	ProductName  string
	CategoryName string
	TotalStock   int
	ReorderLevel int
	Status       string // IN_STOCK | LOW_STOCK | OUT_OF_STOCK (vista product_stock_levels)
}

// ReportRepository define las consultas de lectura para dashboard y reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	// GetLowStockProducts devuelve hasta limit productos bajo reorden, del más crítico al menos.
	GetLowStockProducts(ctx context.Context, limit int) ([]LowStockProduct, error)
	// GetInventoryValueByWarehouse valoriza el inventario activo por bodega (mayor valor primero).
	GetInventoryValueByWarehouse(ctx context.Context) ([]WarehouseValue, error)
	// GetProductStockLevels devuelve el stock total por producto, del más bajo al más alto.
	GetProductStockLevels(ctx context.Context) ([]ProductStockLevel, error)
}
