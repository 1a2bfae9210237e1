package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/internal/domain"
)

// errQuerier Querier que siempre falla en Exec con el error configurado.
// Suficiente para probar la discriminación de SQLSTATE sin una base real.
type errQuerier struct {
	execErr error
}

func (q *errQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.execErr
}

func (q *errQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, q.execErr
}

func (q *errQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("no usado en estos tests")
}

func fkViolation() error {
	return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "products_supplier_id_fkey"}
}

// Borrar un proveedor referenciado por productos (SQLSTATE 23503) debe reportarse
// como ErrConflict, no como falla genérica de almacenamiento.
func TestSupplierRepo_DeleteReferenciadoEsConflict(t *testing.T) {
	repo := NewSupplierRepository(&errQuerier{execErr: fkViolation()})

	err := repo.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict, "la violación de FK debe mapearse a ErrConflict")
}

// Misma garantía para categorías y bodegas: los tres Delete discriminan la FK igual.
func TestCategoryRepo_DeleteReferenciadoEsConflict(t *testing.T) {
	repo := NewCategoryRepository(&errQuerier{execErr: fkViolation()})

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWarehouseRepo_DeleteReferenciadoEsConflict(t *testing.T) {
	repo := NewWarehouseRepository(&errQuerier{execErr: fkViolation()})

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
