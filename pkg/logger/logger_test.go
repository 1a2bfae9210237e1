package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-control-api/pkg/logger"
)

// El nivel configurado debe respetarse; un valor desconocido o vacío cae a info.
func TestNew_NivelConfigurado(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verboso", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run("nivel "+tc.level, func(t *testing.T) {
			log := logger.New(logger.Config{Env: "production", Level: tc.level})
			assert.Equal(t, tc.want, log.Zerolog().GetLevel())
		})
	}
}

// Fuera de development cada línea es JSON y lleva los campos base service y env.
func TestNew_CamposBaseServiceYEnv(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "inventory-control-api"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Str("extra", "x").Msg("arranque")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "en producción la salida debe ser JSON")
	assert.Equal(t, "inventory-control-api", line["service"])
	assert.Equal(t, "production", line["env"])
	assert.Equal(t, "arranque", line["message"])
	assert.NotEmpty(t, line["time"], "cada línea debe llevar timestamp")
}

// Un sublogger con With conserva los campos base.
func TestWith_ConservaCamposBase(t *testing.T) {
	log := logger.New(logger.Config{Env: "staging", Level: "info", Service: "inventory-control-api"})

	var buf bytes.Buffer
	sub := log.With().Str("component", "postgres").Logger().Output(&buf)
	sub.Info().Msg("pool listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "inventory-control-api", line["service"])
	assert.Equal(t, "postgres", line["component"])
}
