package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-control-api/internal/domain"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes de inventario de forma transaccional:
// bloquea la fila del par (producto, bodega) con SELECT FOR UPDATE, actualiza la
// cantidad y agrega exactamente una entrada al libro, todo con Commit o Rollback.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustStockInput entrada para un ajuste de inventario.
// Quantity es la magnitud del movimiento (> 0); Direction define el signo.
type AdjustStockInput struct {
	ProductID   int64
	WarehouseID int64
	Direction   string // entity.DirectionIn | entity.DirectionOut
	Quantity    int
	Notes       string
	ActorName   string
}

// AdjustStockResult resultado de un ajuste confirmado: el nivel resultante y la
// entrada del libro creada en la misma transacción.
type AdjustStockResult struct {
	Level *entity.StockLevel
	Entry *entity.LedgerEntry
}

// Adjust valida la entrada y ejecuta el ajuste como una unidad atómica.
//
// Garantías:
//   - Quantity del nivel nunca queda negativa; una salida que la dejaría bajo cero
//     termina en domain.ErrInsufficientStock con rollback (cero escrituras).
//   - Un ajuste confirmado produce exactamente una escritura de nivel y una entrada
//     de libro; uno fallido no produce ninguna.
//   - No hay reintentos: un ajuste reaplicado a ciegas se duplicaría (no es idempotente).
//
// Errores: domain.ErrInvalidInput (forma), domain.ErrInsufficientStock (regla de negocio),
// domain.ErrNotFound (producto/bodega inexistente) y domain.ErrStorage envolviendo
// cualquier falla de infraestructura.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustStockInput) (*AdjustStockResult, error) {
	if input.ProductID <= 0 || input.WarehouseID <= 0 {
		return nil, fmt.Errorf("%w: product_id y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if !entity.ValidDirection(input.Direction) {
		return nil, fmt.Errorf("%w: direction debe ser IN u OUT", domain.ErrInvalidInput)
	}

	now := time.Now()
	txRef := uuid.New().String()

	var result AdjustStockResult
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLevelRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Bloquea la fila del par (SELECT FOR UPDATE); si no existe, Quantity = 0.
		level, err := stockRepo.GetForUpdate(ctx, input.ProductID, input.WarehouseID)
		if err != nil {
			return err
		}

		newQty := level.Quantity + input.Quantity
		if input.Direction == entity.DirectionOut {
			newQty = level.Quantity - input.Quantity
		}
		if newQty < 0 {
			// Rollback: ni el nivel ni el libro se tocan.
			return domain.ErrInsufficientStock
		}

		level.Quantity = newQty
		level.LastRestockAt = now
		level.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, level); err != nil {
			return err
		}

		entry := &entity.LedgerEntry{
			TransactionRef: txRef,
			ProductID:      input.ProductID,
			WarehouseID:    input.WarehouseID,
			Direction:      input.Direction,
			Quantity:       input.Quantity,
			Notes:          input.Notes,
			ActorName:      input.ActorName,
		}
		if err := ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		result.Level = level
		result.Entry = entry
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &result, nil
}

// classify separa resultados de negocio esperados de fallas de infraestructura:
// los errores de dominio pasan intactos, el resto se envuelve como ErrStorage.
func classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}
