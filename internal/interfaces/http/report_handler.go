package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-control-api/internal/application/analytics"
	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// ReportHandler expone los reportes de solo lectura y el export PDF.
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// InventoryValue godoc
// @Summary      Valorización del inventario por bodega
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.WarehouseValueDTO
// @Router       /api/reports/inventory-value [get]
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValue(c.Context())
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// InventoryValuePDF godoc
// @Summary      Valorización del inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory-value/pdf [get]
func (h *ReportHandler) InventoryValuePDF(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryValuePDF(c.Context())
	if err != nil {
		return domainError(c, h.log, err)
	}
	filename := fmt.Sprintf("valorizacion-inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}

// StockLevels godoc
// @Summary      Stock total por producto
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ProductStockLevelDTO
// @Router       /api/reports/stock-levels [get]
func (h *ReportHandler) StockLevels(c *fiber.Ctx) error {
	out, err := h.uc.StockLevels(c.Context())
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Movimientos del libro filtrados
// @Tags         reports
// @Produce      json
// @Param        from       query  string  false  "Fecha inicial (YYYY-MM-DD o RFC3339)"
// @Param        to         query  string  false  "Fecha final (YYYY-MM-DD o RFC3339)"
// @Param        direction  query  string  false  "IN u OUT"
// @Success      200  {array}   dto.RecentTransactionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) Transactions(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido: use YYYY-MM-DD o RFC3339"})
	}
	to, err := parseDateQuery(c.Query("to"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido: use YYYY-MM-DD o RFC3339"})
	}
	direction := c.Query("direction")
	if direction != "" && !entity.ValidDirection(direction) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction debe ser IN u OUT"})
	}
	out, err := h.uc.Transactions(c.Context(), from, to, direction)
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// TransactionByID godoc
// @Summary      Detalle de un movimiento del libro
// @Tags         reports
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.LedgerEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions/{id} [get]
func (h *ReportHandler) TransactionByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.Transaction(c.Context(), id)
	if err != nil {
		return domainError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// parseDateQuery acepta RFC3339 o fecha corta; la fecha corta "to" cubre el día completo.
func parseDateQuery(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
