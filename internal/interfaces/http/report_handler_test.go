package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/internal/application/analytics"
	"github.com/jhoicas/inventory-control-api/internal/application/dto"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	"github.com/jhoicas/inventory-control-api/internal/domain/repository"
	apphttp "github.com/jhoicas/inventory-control-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// stubLedgerRepo libro en memoria de solo lectura.
type stubLedgerRepo struct {
	byID map[int64]entity.LedgerEntry
}

func (s *stubLedgerRepo) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	panic("no usado en estos tests")
}

func (s *stubLedgerRepo) GetByID(ctx context.Context, id int64) (*entity.LedgerEntry, error) {
	if e, ok := s.byID[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (s *stubLedgerRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*repository.LedgerEntryView, error) {
	return nil, nil
}

func buildReportApp(ledger repository.LedgerRepository) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := analytics.NewReportUseCase(nil, ledger, nil)
	h := apphttp.NewReportHandler(uc, log)
	app.Get("/api/reports/transactions/:id", h.TransactionByID)
	return app
}

// El detalle de un movimiento existente responde 200 con el par y la referencia.
func TestTransactionByID_Retorna200(t *testing.T) {
	ledger := &stubLedgerRepo{byID: map[int64]entity.LedgerEntry{
		42: {
			ID: 42, TransactionRef: "6f9619ff-8b86-d011-b42d-00c04fc964ff",
			ProductID: 7, WarehouseID: 2,
			Direction: entity.DirectionOut, Quantity: 3,
			ActorName: "laura", CreatedAt: time.Now(),
		},
	}}
	app := buildReportApp(ledger)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/transactions/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LedgerEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, int64(7), out.ProductID)
	assert.Equal(t, int64(2), out.WarehouseID)
	assert.Equal(t, "OUT", out.Direction)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", out.TransactionRef)
}

// Un ID inexistente responde 404, no 500.
func TestTransactionByID_InexistenteRetorna404(t *testing.T) {
	app := buildReportApp(&stubLedgerRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/transactions/999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Un ID no numérico responde 400.
func TestTransactionByID_IDInvalidoRetorna400(t *testing.T) {
	app := buildReportApp(&stubLedgerRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/transactions/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
