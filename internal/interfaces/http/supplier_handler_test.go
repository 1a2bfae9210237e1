package http_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/internal/application/usecase"
	"github.com/jhoicas/inventory-control-api/internal/domain"
	"github.com/jhoicas/inventory-control-api/internal/domain/entity"
	apphttp "github.com/jhoicas/inventory-control-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// stubSupplierRepo solo implementa Delete con el error configurado.
type stubSupplierRepo struct {
	deleteErr error
}

func (s *stubSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	panic("no usado en estos tests")
}

func (s *stubSupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	return nil, nil
}

func (s *stubSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	panic("no usado en estos tests")
}

func (s *stubSupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	return nil, nil
}

func (s *stubSupplierRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func buildSupplierApp(repo *stubSupplierRepo) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	h := apphttp.NewSupplierHandler(usecase.NewSupplierUseCase(repo), log)
	app.Delete("/api/suppliers/:id", h.Delete)
	return app
}

// Borrar un proveedor con productos asociados responde 409 CONFLICT, no 500.
func TestSupplierDelete_ReferenciadoRetorna409(t *testing.T) {
	repo := &stubSupplierRepo{deleteErr: fmt.Errorf("%w: proveedor con productos asociados", domain.ErrConflict)}
	app := buildSupplierApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/suppliers/3", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CONFLICT")
}

// Borrar un proveedor inexistente responde 404.
func TestSupplierDelete_InexistenteRetorna404(t *testing.T) {
	app := buildSupplierApp(&stubSupplierRepo{deleteErr: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/suppliers/999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
