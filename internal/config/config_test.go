package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/simerror"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ".", cfg.CatalogDir)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 0.20, cfg.MaxProbability)
	assert.Equal(t, "json", cfg.ExportMode)
	assert.Empty(t, cfg.FechaInicial)
	assert.Empty(t, cfg.FechaFinal)
}

func TestLoadDesdeEntorno(t *testing.T) {
	t.Setenv("MAX_PROBABILITY", "0.5")
	t.Setenv("FECHA_INICIAL", "2024-01-01")
	t.Setenv("FECHA_FINAL", "2024-01-31")
	t.Setenv("EXPORT_MODE", "todos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.MaxProbability)
	assert.Equal(t, "2024-01-01", cfg.FechaInicial)
	assert.Equal(t, "2024-01-31", cfg.FechaFinal)
	assert.Equal(t, "todos", cfg.ExportMode)
}

func TestLoadMaxProbabilityFueraDeRango(t *testing.T) {
	t.Setenv("MAX_PROBABILITY", "1.5")

	_, err := Load()
	require.ErrorIs(t, err, simerror.ErrMaxProbability)
}
