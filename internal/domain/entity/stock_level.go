package entity

import "time"

// StockLevel representa la existencia actual de un producto en una bodega.
// Existe a lo sumo una fila por par (ProductID, WarehouseID) y Quantity nunca es negativa;
// toda mutación pasa por el ajuste transaccional (nunca se escribe fuera de una tx).
type StockLevel struct {
	ProductID     int64
	WarehouseID   int64
	Quantity      int
	LastRestockAt time.Time
	UpdatedAt     time.Time
}
