package inventory

import (
	"context"

	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el ajuste de inventario: si fn devuelve error la transacción
// hace rollback completo; el nivel de stock y el libro quedan intactos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockLevelRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
