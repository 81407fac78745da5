package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/usecase"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/memory"
)

func TestMasterData_ResuelvePorCodigo(t *testing.T) {
	s := memory.NewStore()
	s.PutStorage(&entity.Storage{ID: "st-05", Code: "GDG.05", Name: "Tienda Centro"})
	s.PutItem(&entity.Item{ID: "it-a", Code: "A", Name: "Camisa Lino"})
	s.PutProduct(&entity.Product{ID: "pr-1", Code: "P1", Name: "Kit Verano"})
	uc := usecase.NewMasterDataUseCase(memory.NewStorageLookup(s), memory.NewItemLookup(s), memory.NewProductLookup(s))

	st, err := uc.StorageByCode(context.Background(), " GDG.05 ")
	require.NoError(t, err)
	assert.Equal(t, "st-05", st.ID)

	it, err := uc.ItemByCode(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "it-a", it.ID)

	p, err := uc.ProductByCode(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "pr-1", p.ID)

	_, err = uc.ItemByCode(context.Background(), "ZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
