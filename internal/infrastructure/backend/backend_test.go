package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/backend"
	"github.com/jhoicas/erp-inventario/pkg/config"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

func TestOpen_MemoriaConCatalogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogo.csv")
	require.NoError(t, os.WriteFile(path, []byte("BODEGA;GDG.05;Tienda Centro;;N\nARTICULO;A;Camisa;RO-1;10\n"), 0o600))

	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory, SeedCSV: path}}
	b, err := backend.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer b.Close()

	uc := backend.NewUseCases(b, cfg.Inventory, logger.Nop())
	ctx := auth.WithActor(context.Background(), "cli")

	st, err := uc.MasterData.StorageByCode(ctx, "GDG.05")
	require.NoError(t, err)
	it, err := uc.MasterData.ItemByCode(ctx, "A")
	require.NoError(t, err)

	_, err = uc.Movement.Out(ctx, st.ID, "VT-1", it.ID, 3, "")
	require.NoError(t, err)

	inv, err := uc.Inventory.GetByStorageAndItem(ctx, st.ID, it.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(0), inv.Quantity, "GDG.05 del catálogo no admite sobreventa")
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	_, err := backend.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
