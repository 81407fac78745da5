package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("INVENTORY_LEGACY_CLAMP_LEDGER", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "erp-inventario", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.False(t, cfg.Inventory.LegacyClampLedger)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("INVENTORY_LEGACY_CLAMP_LEDGER", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.DB.Migrate)
	assert.True(t, cfg.Inventory.LegacyClampLedger)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "erp", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://erp:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.DSN())
}
