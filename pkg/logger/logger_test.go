package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventasve/pedidos-api/pkg/logger"
)

func TestNewRespetaNivel(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			log := logger.New(logger.Config{Env: "production", Level: tc.level})
			assert.Equal(t, tc.want, log.Zerolog().GetLevel())
		})
	}
}

func TestNewNivelDesconocidoCaeAInfo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "verboso"})
	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())
}

func TestNewModoDesarrollo(t *testing.T) {
	log := logger.New(logger.Config{Env: "development", Level: "info"})
	require.NotNil(t, log)
	// Los eventos delegados deben ser usables sin panics.
	log.Warn().Str("k", "v").Msg("mensaje de prueba")
}
