package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

type fakePDF struct {
	storage *entity.Storage
	rows    []entity.OverallStock
}

func (p *fakePDF) GenerateStockReportPDF(_ context.Context, st *entity.Storage, rows []entity.OverallStock, _ time.Time) ([]byte, error) {
	p.storage, p.rows = st, rows
	return []byte("%PDF-1.4"), nil
}

func (f *fixture) report(pdf inventory.StockReportPDFGenerator) *inventory.StockReportUseCase {
	return inventory.NewStockReportUseCase(f.invRepo, f.movRepo, f.storages, pdf, logger.Nop()).WithClock(f.clock.Now)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte combinado
// ──────────────────────────────────────────────────────────────────────────────

func TestOverallStock_CombinaCantidadYAntiguedad(t *testing.T) {
	f := newFixture()
	ctx := actorCtx()
	engine := f.engine(false)

	// entrada de A hace dos días
	f.clock.t = baseTime.Add(-48 * time.Hour)
	_, err := engine.In(ctx, "st-01", "R1", "it-a", 5, "")
	require.NoError(t, err)

	// B existe con cantidad 0
	f.clock.t = baseTime
	_, err = engine.GetInventory(ctx, "st-01", "it-b")
	require.NoError(t, err)

	rows, err := f.report(nil).GetOverallStock(ctx, "st-01", inventory.StockFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "A", rows[0].ItemCode)
	assert.Equal(t, int64(5), rows[0].Quantity)
	assert.Equal(t, "Bodega Principal", rows[0].StorageName)
	require.NotNil(t, rows[0].DaysSinceLastInbound)
	assert.Equal(t, int64(2), *rows[0].DaysSinceLastInbound)
	require.NotNil(t, rows[0].StorageCode)
	assert.Equal(t, "GDG.01", *rows[0].StorageCode)
}

func TestOverallStock_FiltroPorPalabraClave(t *testing.T) {
	f := newFixture()
	ctx := actorCtx()
	engine := f.engine(false)

	_, err := engine.In(ctx, "st-01", "R1", "it-a", 1, "")
	require.NoError(t, err)
	_, err = engine.In(ctx, "st-01", "R2", "it-b", 1, "")
	require.NoError(t, err)

	rows, err := f.report(nil).GetOverallStock(ctx, "st-01", inventory.StockFilter{Keyword: "pantal"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].ItemCode)
}

func TestCombineStocks_SinEntradaNoTieneAntiguedad(t *testing.T) {
	now := baseTime
	qty := []entity.StockQuantityRow{
		{StorageName: "Bodega", ItemCode: "A", ItemName: "Camisa", Quantity: 3},
		{StorageName: "Bodega", ItemCode: "C", ItemName: "Gorra", Quantity: 1},
	}
	age := []entity.StockAgeRow{
		{StorageCode: "GDG.01", ItemCode: "A", LastInboundAt: now.Add(-71 * time.Hour)},
		{StorageCode: "GDG.01", ItemCode: "A", LastInboundAt: now.Add(-300 * time.Hour)},
	}

	out := inventory.CombineStocks(qty, age, now)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].DaysSinceLastInbound)
	assert.Equal(t, int64(2), *out[0].DaysSinceLastInbound, "se trunca hacia abajo y usa la primera coincidencia")
	assert.Nil(t, out[1].DaysSinceLastInbound)
	assert.Nil(t, out[1].StorageCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestExportOverallStockPDF(t *testing.T) {
	f := newFixture()
	ctx := actorCtx()
	_, err := f.engine(false).In(ctx, "st-01", "R1", "it-a", 2, "")
	require.NoError(t, err)

	gen := &fakePDF{}
	pdf, name, err := f.report(gen).ExportOverallStockPDF(ctx, "st-01", inventory.StockFilter{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "stock-GDG.01-20240310.pdf", name)
	assert.Equal(t, "GDG.01", gen.storage.Code)
	assert.Len(t, gen.rows, 1)

	_, _, err = f.report(gen).ExportOverallStockPDF(ctx, "st-99", inventory.StockFilter{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
