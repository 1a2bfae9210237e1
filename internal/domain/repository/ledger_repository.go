package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para el libro de movimientos.
// El libro es append-only: no existen métodos de actualización ni borrado.
type LedgerRepository interface {
	// Create inserta la entrada y asigna ID y CreatedAt desde el servidor.
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	GetByID(ctx context.Context, id int64) (*entity.LedgerEntry, error)
	// List devuelve entradas con nombres desnormalizados, filtradas por rango y dirección.
	List(ctx context.Context, filter LedgerFilter) ([]*LedgerEntryView, error)
}

// LedgerFilter filtros del listado de movimientos (reportes).
type LedgerFilter struct {
	From      *time.Time
	To        *time.Time
	Direction string // vacío = todas
	Limit     int
}

// LedgerEntryView entrada del libro con nombres de producto y bodega para reportes.
type LedgerEntryView struct {
	Entry         entity.LedgerEntry
	ProductCode   string
	ProductName   string
	WarehouseName string
}
