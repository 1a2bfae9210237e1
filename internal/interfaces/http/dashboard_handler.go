package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-control-api/internal/application/analytics"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// DashboardHandler expone las lecturas agregadas del panel principal.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Stats godoc
// @Summary      Contadores del panel
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos en o bajo su nivel de reorden
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas"  default(10)
// @Success      200    {array}  dto.LowStockProductDTO
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}

// RecentTransactions godoc
// @Summary      Últimos movimientos del libro
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas"  default(10)
// @Success      200    {array}  dto.RecentTransactionDTO
// @Router       /api/dashboard/recent-transactions [get]
func (h *DashboardHandler) RecentTransactions(c *fiber.Ctx) error {
	out, err := h.uc.RecentTransactions(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return domainError(c, h.log, err)
	}
	return c.JSON(out)
}
