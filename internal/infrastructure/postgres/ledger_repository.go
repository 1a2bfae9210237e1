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

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: este adaptador no expone UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create inserta una entrada; id y created_at los asigna el servidor (RETURNING).
func (r *LedgerRepo) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO inventory_transactions (transaction_ref, product_id, warehouse_id, direction, quantity, notes, actor_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	notes := (*string)(nil)
	if entry.Notes != "" {
		notes = &entry.Notes
	}
	err := r.q.QueryRow(ctx, query,
		entry.TransactionRef, entry.ProductID, entry.WarehouseID,
		entry.Direction, entry.Quantity, notes, entry.ActorName,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto o bodega inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *LedgerRepo) GetByID(ctx context.Context, id int64) (*entity.LedgerEntry, error) {
	query := `
		SELECT id, transaction_ref, product_id, warehouse_id, direction, quantity, COALESCE(notes, ''), actor_name, created_at
		FROM inventory_transactions WHERE id = $1`
	var e entity.LedgerEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.TransactionRef, &e.ProductID, &e.WarehouseID,
		&e.Direction, &e.Quantity, &e.Notes, &e.ActorName, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// List devuelve entradas con nombres desnormalizados, de la más reciente a la más antigua.
func (r *LedgerRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*repository.LedgerEntryView, error) {
	query := `
		SELECT t.id, t.transaction_ref, t.product_id, t.warehouse_id, t.direction, t.quantity,
		       COALESCE(t.notes, ''), t.actor_name, t.created_at,
		       p.code, p.name, w.name
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		JOIN warehouses w ON w.id = t.warehouse_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.From != nil {
		query += fmt.Sprintf(" AND t.created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND t.created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	if filter.Direction != "" {
		query += fmt.Sprintf(" AND t.direction = $%d", pos)
		args = append(args, filter.Direction)
		pos++
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*repository.LedgerEntryView
	for rows.Next() {
		var v repository.LedgerEntryView
		if err := rows.Scan(
			&v.Entry.ID, &v.Entry.TransactionRef, &v.Entry.ProductID, &v.Entry.WarehouseID,
			&v.Entry.Direction, &v.Entry.Quantity, &v.Entry.Notes, &v.Entry.ActorName, &v.Entry.CreatedAt,
			&v.ProductCode, &v.ProductName, &v.WarehouseName,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
