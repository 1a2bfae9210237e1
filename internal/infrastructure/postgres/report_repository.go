package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura para dashboard y reportes sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool (las consultas son read-only).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetDashboardStats calcula los contadores del panel en una sola consulta.
func (r *ReportRepo) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active = TRUE) AS total_products,
			(SELECT COUNT(*) FROM products p WHERE p.is_active = TRUE AND
				(SELECT COALESCE(SUM(quantity), 0) FROM stock_levels WHERE product_id = p.id) <= p.reorder_level) AS low_stock_products,
			(SELECT COUNT(*) FROM categories) AS total_categories,
			(SELECT COUNT(*) FROM warehouses) AS total_warehouses,
			(SELECT COALESCE(SUM(l.quantity * p.unit_price), 0)
			 FROM stock_levels l
			 JOIN products p ON p.id = l.product_id
			 WHERE p.is_active = TRUE) AS total_inventory_value,
			(SELECT COUNT(*) FROM inventory_transactions
			 WHERE created_at >= CURRENT_TIMESTAMP - INTERVAL '30 days') AS recent_transactions`
	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, query).Scan(
		&stats.TotalProducts, &stats.LowStockProducts, &stats.TotalCategories,
		&stats.TotalWarehouses, &stats.TotalInventoryValue, &stats.RecentTransactions,
	)
	if err != nil {
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}
	return &stats, nil
}

// GetLowStockProducts devuelve productos activos en o bajo su nivel de reorden,
// ordenados del stock más bajo al más alto.
func (r *ReportRepo) GetLowStockProducts(ctx context.Context, limit int) ([]repository.LowStockProduct, error) {
	query := `
		SELECT
			p.code,
			p.name,
			COALESCE(c.name, ''),
			COALESCE(SUM(l.quantity), 0)::int AS current_stock,
			p.reorder_level,
			p.unit_price
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN stock_levels l ON l.product_id = p.id
		WHERE p.is_active = TRUE
		GROUP BY p.id, p.code, p.name, c.name, p.reorder_level, p.unit_price
		HAVING COALESCE(SUM(l.quantity), 0) <= p.reorder_level
		ORDER BY COALESCE(SUM(l.quantity), 0) ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get low stock products: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockProduct
	for rows.Next() {
		var item repository.LowStockProduct
		if err := rows.Scan(
			&item.ProductCode, &item.ProductName, &item.CategoryName,
			&item.CurrentStock, &item.ReorderLevel, &item.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetInventoryValueByWarehouse valoriza el inventario activo por bodega (mayor valor primero).
func (r *ReportRepo) GetInventoryValueByWarehouse(ctx context.Context) ([]repository.WarehouseValue, error) {
	query := `
		SELECT
			w.name,
			COUNT(DISTINCT l.product_id)::int AS product_count,
			COALESCE(SUM(l.quantity), 0)::int AS total_units,
			COALESCE(SUM(l.quantity * p.unit_price), 0) AS total_value
		FROM stock_levels l
		JOIN products p ON p.id = l.product_id
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE p.is_active = TRUE
		GROUP BY w.id, w.name
		ORDER BY total_value DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get inventory value by warehouse: %w", err)
	}
	defer rows.Close()
	var items []repository.WarehouseValue
	for rows.Next() {
		var item repository.WarehouseValue
		if err := rows.Scan(&item.WarehouseName, &item.ProductCount, &item.TotalUnits, &item.TotalValue); err != nil {
			return nil, fmt.Errorf("scan warehouse value: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetProductStockLevels devuelve el stock total por producto con su estado frente
// al nivel de reorden, del más bajo al más alto.
func (r *ReportRepo) GetProductStockLevels(ctx context.Context) ([]repository.ProductStockLevel, error) {
	query := `
		SELECT product_id, product_code, product_name, category_name, total_stock, reorder_level, status
		FROM product_stock_levels
		ORDER BY total_stock ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get product stock levels: %w", err)
	}
	defer rows.Close()
	var items []repository.ProductStockLevel
	for rows.Next() {
		var item repository.ProductStockLevel
		if err := rows.Scan(
			&item.ProductID, &item.ProductCode, &item.ProductName, &item.CategoryName,
			&item.TotalStock, &item.ReorderLevel, &item.Status,
		); err != nil {
			return nil, fmt.Errorf("scan product stock level: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
