package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Name: "inventory-control-api"},
	}
}

// El health check responde 200 y cada respuesta lleva un X-Request-ID asignado.
func TestNewFiberApp_HealthYRequestID(t *testing.T) {
	app := newFiberApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), "el middleware de request id debe marcar cada respuesta")
}

// CORS habilitado: las peticiones con Origin reciben Access-Control-Allow-Origin.
func TestNewFiberApp_CORSHabilitado(t *testing.T) {
	app := newFiberApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"), "CORS debe estar habilitado para la SPA")
}
