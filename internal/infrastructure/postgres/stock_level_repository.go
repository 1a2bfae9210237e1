package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-control-api/internal/domain"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene la existencia actual de un producto en una bodega.
// Si el par no tiene fila devuelve un nivel con Quantity = 0.
func (r *StockLevelRepo) Get(ctx context.Context, productID, warehouseID int64) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, last_restock_at, updated_at
		FROM stock_levels WHERE product_id = $1 AND warehouse_id = $2`
	var l entity.StockLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&l.ProductID, &l.WarehouseID, &l.Quantity, &l.LastRestockAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE).
// Dos ajustes concurrentes sobre el mismo par se serializan aquí: el segundo espera
// el Commit/Rollback del primero y observa su cantidad confirmada.
func (r *StockLevelRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, last_restock_at, updated_at
		FROM stock_levels WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var l entity.StockLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&l.ProductID, &l.WarehouseID, &l.Quantity, &l.LastRestockAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &l, nil
}

// Upsert inserta o actualiza la cantidad del par (producto, bodega) y refresca
// last_restock_at y updated_at. Una violación de FK (producto/bodega inexistente)
// se devuelve como domain.ErrNotFound.
func (r *StockLevelRepo) Upsert(ctx context.Context, level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, warehouse_id, quantity, last_restock_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_restock_at = now(), updated_at = now()`
	_, err := r.q.Exec(ctx, query, level.ProductID, level.WarehouseID, level.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto o bodega inexistente", domain.ErrNotFound)
		}
		if isCheckViolation(err) {
			// Segunda barrera detrás de la validación del caso de uso.
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// List devuelve el inventario completo con nombres desnormalizados para la UI.
func (r *StockLevelRepo) List(ctx context.Context) ([]*repository.StockLevelView, error) {
	query := `
		SELECT s.product_id, s.warehouse_id, s.quantity, s.last_restock_at, s.updated_at,
		       p.code, p.name, p.unit_price, w.name, COALESCE(c.name, '')
		FROM stock_levels s
		JOIN products p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = TRUE
		ORDER BY p.name, w.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockLevelView
	for rows.Next() {
		var v repository.StockLevelView
		if err := rows.Scan(
			&v.Level.ProductID, &v.Level.WarehouseID, &v.Level.Quantity,
			&v.Level.LastRestockAt, &v.Level.UpdatedAt,
			&v.ProductCode, &v.ProductName, &v.UnitPrice, &v.WarehouseName, &v.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
