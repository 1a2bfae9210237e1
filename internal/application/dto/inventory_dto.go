package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/adjust.
// Direction: "IN" suma, "OUT" resta; Quantity siempre positiva (magnitud).
type AdjustStockRequest struct {
	ProductID   int64  `json:"product_id"`
	WarehouseID int64  `json:"warehouse_id"`
	Direction   string `json:"direction"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
	ActorName   string `json:"actor_name"`
}

// AdjustStockResponse confirma el ajuste: nivel resultante y entrada del libro creada.
type AdjustStockResponse struct {
	ProductID     int64             `json:"product_id"`
	WarehouseID   int64             `json:"warehouse_id"`
	Quantity      int               `json:"quantity"`
	LastRestockAt time.Time         `json:"last_restock_at"`
	Entry         LedgerEntryDetail `json:"entry"`
}

// LedgerEntryDetail entrada del libro serializada en respuestas.
type LedgerEntryDetail struct {
	ID             int64     `json:"id"`
	TransactionRef string    `json:"transaction_ref"`
	Direction      string    `json:"direction"`
	Quantity       int       `json:"quantity"`
	Notes          string    `json:"notes,omitempty"`
	ActorName      string    `json:"actor_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// LedgerEntryResponse entrada del libro con su par, para el detalle de un movimiento.
type LedgerEntryResponse struct {
	ID             int64     `json:"id"`
	TransactionRef string    `json:"transaction_ref"`
	ProductID      int64     `json:"product_id"`
	WarehouseID    int64     `json:"warehouse_id"`
	Direction      string    `json:"direction"`
	Quantity       int       `json:"quantity"`
	Notes          string    `json:"notes,omitempty"`
	ActorName      string    `json:"actor_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// StockLevelDetail existencia puntual de un par (producto, bodega).
// Quantity es 0 cuando el par aún no tiene fila.
type StockLevelDetail struct {
	ProductID     int64     `json:"product_id"`
	WarehouseID   int64     `json:"warehouse_id"`
	Quantity      int       `json:"quantity"`
	LastRestockAt time.Time `json:"last_restock_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockLevelRow fila del listado GET /api/inventory.
type StockLevelRow struct {
	ProductID     int64           `json:"product_id"`
	WarehouseID   int64           `json:"warehouse_id"`
	Quantity      int             `json:"quantity"`
	LastRestockAt time.Time       `json:"last_restock_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	WarehouseName string          `json:"warehouse_name"`
	CategoryName  string          `json:"category_name,omitempty"`
}
