package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/application/inventory"
	"github.com/jhoicas/inventory-control-api/internal/domain"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	apphttp "github.com/jhoicas/inventory-control-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubAdjuster implementa apphttp.StockAdjuster con respuestas fijas.
type stubAdjuster struct {
	result *inventory.AdjustStockResult
	err    error
	got    inventory.AdjustStockInput
}

func (s *stubAdjuster) Adjust(ctx context.Context, input inventory.AdjustStockInput) (*inventory.AdjustStockResult, error) {
	s.got = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubLister struct {
	rows  []dto.StockLevelRow
	level *dto.StockLevelDetail
	err   error
}

func (s *stubLister) List(ctx context.Context) ([]dto.StockLevelRow, error) {
	return s.rows, s.err
}

func (s *stubLister) GetLevel(ctx context.Context, productID, warehouseID int64) (*dto.StockLevelDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.level, nil
}

func buildApp(adjuster apphttp.StockAdjuster, lister apphttp.StockLister) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	h := apphttp.NewInventoryHandler(adjuster, lister, log)
	app.Post("/api/inventory/adjust", h.Adjust)
	app.Get("/api/inventory", h.List)
	app.Get("/api/inventory/:productId/:warehouseId", h.GetLevel)
	return app
}

func postAdjust(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/adjust", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/inventory/adjust
// ──────────────────────────────────────────────────────────────────────────────

// Ajuste exitoso: el handler traduce el request al caso de uso y responde con
// el nivel resultante más la entrada del libro.
func TestAdjustHandler_Exitoso(t *testing.T) {
	stub := &stubAdjuster{
		result: &inventory.AdjustStockResult{
			Level: &entity.StockLevel{ProductID: 7, WarehouseID: 2, Quantity: 15},
			Entry: &entity.LedgerEntry{
				ID: 99, TransactionRef: "8b6f1e7a-0000-0000-0000-000000000000",
				ProductID: 7, WarehouseID: 2,
				Direction: entity.DirectionIn, Quantity: 15, ActorName: "laura",
			},
		},
	}
	app := buildApp(stub, &stubLister{})

	resp := postAdjust(t, app, dto.AdjustStockRequest{
		ProductID: 7, WarehouseID: 2, Direction: "IN", Quantity: 15, ActorName: "laura",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AdjustStockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(7), out.ProductID)
	assert.Equal(t, 15, out.Quantity)
	assert.Equal(t, int64(99), out.Entry.ID)
	assert.Equal(t, "IN", out.Entry.Direction)

	assert.Equal(t, int64(7), stub.got.ProductID, "el handler debe pasar el product_id tal cual")
	assert.Equal(t, "laura", stub.got.ActorName)
}

// Entrada inválida → 400 con código VALIDATION.
func TestAdjustHandler_EntradaInvalidaRetorna400(t *testing.T) {
	stub := &stubAdjuster{err: fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)}
	app := buildApp(stub, &stubLister{})

	resp := postAdjust(t, app, dto.AdjustStockRequest{ProductID: 1, WarehouseID: 1, Direction: "IN", Quantity: 0})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

// Stock insuficiente → 409 con código INSUFFICIENT_STOCK.
func TestAdjustHandler_StockInsuficienteRetorna409(t *testing.T) {
	stub := &stubAdjuster{err: domain.ErrInsufficientStock}
	app := buildApp(stub, &stubLister{})

	resp := postAdjust(t, app, dto.AdjustStockRequest{ProductID: 1, WarehouseID: 1, Direction: "OUT", Quantity: 50})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
}

// Producto o bodega inexistente → 404.
func TestAdjustHandler_NoEncontradoRetorna404(t *testing.T) {
	stub := &stubAdjuster{err: fmt.Errorf("%w: producto 999", domain.ErrNotFound)}
	app := buildApp(stub, &stubLister{})

	resp := postAdjust(t, app, dto.AdjustStockRequest{ProductID: 999, WarehouseID: 1, Direction: "IN", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Falla de infraestructura → 500 con mensaje genérico, sin filtrar detalles internos.
func TestAdjustHandler_FallaInternaRetorna500SinDetalles(t *testing.T) {
	stub := &stubAdjuster{err: fmt.Errorf("%w: dial tcp 10.0.0.5:5432: connection refused", domain.ErrStorage)}
	app := buildApp(stub, &stubLister{})

	resp := postAdjust(t, app, dto.AdjustStockRequest{ProductID: 1, WarehouseID: 1, Direction: "IN", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "10.0.0.5", "la respuesta no debe exponer detalles de infraestructura")
	assert.Contains(t, string(body), "INTERNAL")
}

// Body que no es JSON válido → 400 INVALID_BODY.
func TestAdjustHandler_BodyMalformadoRetorna400(t *testing.T) {
	app := buildApp(&stubAdjuster{}, &stubLister{})

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/adjust", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/inventory
// ──────────────────────────────────────────────────────────────────────────────

// GET de un par concreto: responde el nivel tal cual lo entrega el caso de uso.
func TestInventoryGetLevel_Retorna200(t *testing.T) {
	lister := &stubLister{level: &dto.StockLevelDetail{ProductID: 7, WarehouseID: 2, Quantity: 15}}
	app := buildApp(&stubAdjuster{}, lister)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/7/2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.StockLevelDetail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(7), out.ProductID)
	assert.Equal(t, 15, out.Quantity)
}

// IDs no numéricos en la ruta → 400 sin llegar al caso de uso.
func TestInventoryGetLevel_IDNoNumericoRetorna400(t *testing.T) {
	app := buildApp(&stubAdjuster{}, &stubLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/abc/2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestInventoryList_Retorna200ConFilas(t *testing.T) {
	lister := &stubLister{rows: []dto.StockLevelRow{
		{ProductID: 1, WarehouseID: 1, Quantity: 10, ProductCode: "SKU-1", ProductName: "Tornillo", WarehouseName: "Central"},
	}}
	app := buildApp(&stubAdjuster{}, lister)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []dto.StockLevelRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "SKU-1", rows[0].ProductCode)
}
