package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/application/inventory"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// StockAdjuster puerto del handler hacia el caso de uso de ajuste (facilita tests).
type StockAdjuster interface {
	Adjust(ctx context.Context, input inventory.AdjustStockInput) (*inventory.AdjustStockResult, error)
}

// StockLister puerto del handler hacia las lecturas de inventario.
type StockLister interface {
	List(ctx context.Context) ([]dto.StockLevelRow, error)
	GetLevel(ctx context.Context, productID, warehouseID int64) (*dto.StockLevelDetail, error)
}

// InventoryHandler maneja las peticiones HTTP de inventario: ajuste y listado.
type InventoryHandler struct {
	adjuster StockAdjuster
	query    StockLister
	log      *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjuster StockAdjuster, query StockLister, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{adjuster: adjuster, query: query, log: log}
}

// Adjust godoc
// @Summary      Ajustar inventario
// @Description  Registra un ajuste IN/OUT sobre un par (producto, bodega) de forma atómica:
// @Description  actualiza la existencia y agrega una entrada al libro en la misma transacción.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, warehouse_id, direction (IN|OUT), quantity > 0, notes, actor_name"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.adjuster.Adjust(c.Context(), inventory.AdjustStockInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Direction:   in.Direction,
		Quantity:    in.Quantity,
		Notes:       in.Notes,
		ActorName:   in.ActorName,
	})
	if err != nil {
		return domainError(c, h.log, err)
	}

	h.log.Info().
		Int64("product_id", result.Entry.ProductID).
		Int64("warehouse_id", result.Entry.WarehouseID).
		Str("direction", result.Entry.Direction).
		Int("quantity", result.Entry.Quantity).
		Int("new_quantity", result.Level.Quantity).
		Str("transaction_ref", result.Entry.TransactionRef).
		Msg("ajuste de inventario registrado")

	return c.JSON(dto.AdjustStockResponse{
		ProductID:     result.Level.ProductID,
		WarehouseID:   result.Level.WarehouseID,
		Quantity:      result.Level.Quantity,
		LastRestockAt: result.Level.LastRestockAt,
		Entry: dto.LedgerEntryDetail{
			ID:             result.Entry.ID,
			TransactionRef: result.Entry.TransactionRef,
			Direction:      result.Entry.Direction,
			Quantity:       result.Entry.Quantity,
			Notes:          result.Entry.Notes,
			ActorName:      result.Entry.ActorName,
			CreatedAt:      result.Entry.CreatedAt,
		},
	})
}

// GetLevel godoc
// @Summary      Existencia de un par producto/bodega
// @Description  Un par sin movimientos responde quantity 0, no 404.
// @Tags         inventory
// @Produce      json
// @Param        productId    path  int  true  "ID del producto"
// @Param        warehouseId  path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.StockLevelDetail
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/{warehouseId} [get]
func (h *InventoryHandler) GetLevel(c *fiber.Ctx) error {
	productID, err1 := strconv.ParseInt(c.Params("productId"), 10, 64)
	warehouseID, err2 := strconv.ParseInt(c.Params("warehouseId"), 10, 64)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "productId y warehouseId deben ser enteros"})
	}
	out, err := h.query.GetLevel(c.Context(), productID, warehouseID)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.StockLevelRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	rows, err := h.query.List(c.Context())
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(rows)
}
