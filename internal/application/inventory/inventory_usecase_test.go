package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_AcumulaErroresDeCampo(t *testing.T) {
	f := newFixture()

	_, err := f.positions().Create(actorCtx(), dto.InventoryRequest{
		StorageID: "",
		ItemID:    "x",
		Quantity:  ptr(int64(-1)),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "storageId")
	assert.Contains(t, ve.Fields, "quantity")
	assert.Equal(t, "itemId no encontrado", ve.Fields["itemId"])

	_, total, _ := f.invRepo.List(actorCtx(), dto.PageRequest{}.ListOptions())
	assert.Zero(t, total, "no se persiste nada")
}

func TestInventoryCreate_CantidadRequerida(t *testing.T) {
	f := newFixture()

	_, err := f.positions().Create(actorCtx(), dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "quantity es requerido", ve.Fields["quantity"])
	assert.Len(t, ve.Fields, 1)
}

func TestInventoryCreate_ProductoInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.positions().Create(actorCtx(), dto.InventoryRequest{
		StorageID: "st-01", ProductID: "nope", Quantity: ptr(int64(1)),
	})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "producto no encontrado", ve.Fields["productId"])
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_ResuelveSnapshotsYEstampa(t *testing.T) {
	f := newFixture()

	out, err := f.positions().Create(actorCtx(), dto.InventoryRequest{
		StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(4)),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(4), out.Quantity)
	assert.Equal(t, "Bodega Principal", out.Storage.Name)
	require.NotNil(t, out.Item)
	assert.Equal(t, "RO-100", out.Item.RealizationOrder)
	assert.Equal(t, "ana.rios", out.CreatedBy)
	assert.Equal(t, baseTime, out.CreatedAt)
}

func TestInventoryCreate_DuplicadoVivo(t *testing.T) {
	f := newFixture()
	in := dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(1))}

	_, err := f.positions().Create(actorCtx(), in)
	require.NoError(t, err)
	_, err = f.positions().Create(actorCtx(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestInventoryDelete_BorradoLogico(t *testing.T) {
	f := newFixture()
	uc := f.positions()
	ctx := actorCtx()

	created, err := uc.Create(ctx, dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(2))})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Deleted)

	list, err := uc.Read(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Page.Total)

	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)

	// el par queda libre para una nueva posición
	_, err = uc.Create(ctx, dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(0))})
	assert.NoError(t, err)
}

func TestInventoryUpdate(t *testing.T) {
	f := newFixture()
	uc := f.positions()
	ctx := actorCtx()

	created, err := uc.Create(ctx, dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(2))})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.InventoryRequest{StorageID: "st-05", ItemID: "it-a", Quantity: ptr(int64(9))})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int64(9), updated.Quantity)
	assert.Equal(t, "GDG.05", updated.Storage.Code)

	missing, err := uc.Update(ctx, "nope", dto.InventoryRequest{StorageID: "st-05", ItemID: "it-a", Quantity: ptr(int64(1))})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInventoryRead_PalabraClaveYPaginacion(t *testing.T) {
	f := newFixture()
	uc := f.positions()
	ctx := actorCtx()

	for _, in := range []dto.InventoryRequest{
		{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(1))},
		{StorageID: "st-01", ItemID: "it-b", Quantity: ptr(int64(1))},
		{StorageID: "st-05", ItemID: "it-a", Quantity: ptr(int64(1))},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := uc.Read(ctx, dto.PageRequest{Size: 2})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.Equal(t, 3, all.Page.Total)
	assert.Equal(t, 2, all.Page.Size)

	camisa, err := uc.Read(ctx, dto.PageRequest{Keyword: "camisa"})
	require.NoError(t, err)
	assert.Equal(t, 2, camisa.Page.Total)

	centro, err := uc.Read(ctx, dto.PageRequest{Keyword: "centro"})
	require.NoError(t, err)
	assert.Equal(t, 1, centro.Page.Total)

	byStorage, err := uc.ReadByStorage(ctx, "st-01", dto.PageRequest{Keyword: "RO-2"})
	require.NoError(t, err)
	require.Len(t, byStorage.Items, 1)
	assert.Equal(t, "B", byStorage.Items[0].Item.Code)

	byItem, err := uc.GetByItem(ctx, "it-a")
	require.NoError(t, err)
	assert.Len(t, byItem, 2)

	pair, err := uc.GetByStorageAndItem(ctx, "st-05", "it-b")
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestInventoryRead_PalabraClaveEsTextoLiteral(t *testing.T) {
	f := newFixture()
	uc := f.positions()
	ctx := actorCtx()

	_, err := uc.Create(ctx, dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(1))})
	require.NoError(t, err)

	literal, err := uc.Read(ctx, dto.PageRequest{Keyword: "CAMISA LINO"})
	require.NoError(t, err)
	assert.Equal(t, 1, literal.Page.Total)

	for _, kw := range []string{"Cam.sa", "Camisa.*", "(Camisa"} {
		list, err := uc.Read(ctx, dto.PageRequest{Keyword: kw})
		require.NoError(t, err, kw)
		assert.Zero(t, list.Page.Total, "los metacaracteres no se interpretan: %q", kw)
	}
}

func TestInventoryRead_PaginaFueraDeRango(t *testing.T) {
	f := newFixture()
	uc := f.positions()
	ctx := actorCtx()

	_, err := uc.Create(ctx, dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: ptr(int64(1))})
	require.NoError(t, err)

	for _, pg := range []int{2, 461168601842738792, math.MaxInt} {
		list, err := uc.Read(ctx, dto.PageRequest{Page: pg, Size: 20})
		require.NoError(t, err, "page=%d", pg)
		assert.Empty(t, list.Items, "page=%d", pg)
		assert.Equal(t, 1, list.Page.Total)
	}
}
