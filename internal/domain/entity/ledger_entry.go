package entity

import "time"

// Direcciones de movimiento de inventario.
const (
	DirectionIn  = "IN"  // entrada
	DirectionOut = "OUT" // salida
)

// ValidDirection indica si s es una dirección de movimiento reconocida.
func ValidDirection(s string) bool {
	return s == DirectionIn || s == DirectionOut
}

// LedgerEntry es el registro inmutable de un ajuste de inventario (append-only).
// Quantity es siempre la magnitud del movimiento; el signo lo implica Direction.
// TransactionRef agrupa entradas generadas por una misma operación (UUID por ajuste).
type LedgerEntry struct {
	ID             int64
	TransactionRef string
	ProductID      int64
	WarehouseID    int64
	Direction      string
	Quantity       int
	Notes          string
	ActorName      string
	CreatedAt      time.Time
}
