package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

func TestLedgerCreate_Validacion(t *testing.T) {
	f := newFixture()

	_, err := f.ledger().Create(actorCtx(), dto.InventoryMovementRequest{
		InventoryID: "nope", Type: "X", Before: 1, Quantity: 1, After: 5,
	})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "inventoryId")
	assert.Contains(t, ve.Fields, "type")
	assert.Contains(t, ve.Fields, "after")
}

func TestLedgerCreate_YConsultas(t *testing.T) {
	f := newFixture()
	ctx := actorCtx()

	inv, err := f.engine(false).GetInventory(ctx, "st-01", "it-a")
	require.NoError(t, err)

	created, err := f.ledger().Create(ctx, dto.InventoryMovementRequest{
		InventoryID: inv.ID, Reference: "AJ-9", Type: entity.MovementTypeIN,
		Before: 0, Quantity: 3, After: 3, Remark: "ajuste manual",
	})
	require.NoError(t, err)
	assert.Equal(t, "st-01", created.StorageID)
	assert.Equal(t, "it-a", created.ItemID)

	got, err := f.ledger().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "AJ-9", got.Reference)

	list, err := f.ledger().Read(ctx, dto.PageRequest{Keyword: "manual"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)

	hist, err := f.ledger().ListByInventory(ctx, inv.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, hist.Items, 1)

	missing, err := f.ledger().GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
