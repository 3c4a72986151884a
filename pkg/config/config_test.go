package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rfq-tracker/pkg/config"
)

// Caso 1: sin variables de entorno se aplican los defaults.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 120, cfg.CSRF.ExpMinutes)
	assert.Equal(t, []string{"admin", "pricing"}, cfg.Masking.ExemptRoles)
}

// Caso 2: las variables de entorno tienen prioridad sobre los defaults.
func TestLoad_ValoresDesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CSRF_EXPIRATION_MINUTES", "30")
	t.Setenv("MASK_EXEMPT_ROLES", "admin, pricing ,sales")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())
	assert.Equal(t, 30, cfg.CSRF.ExpMinutes)
	assert.Equal(t, []string{"admin", "pricing", "sales"}, cfg.Masking.ExemptRoles)
}

// Caso 3: un entero malformado en el entorno cae al default, nunca a cero.
func TestLoad_EnteroMalformadoUsaElDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("DB_PORT", "3000x")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port)
}
