package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/application/usecase"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/memory"
)

func newThemeUseCase() *usecase.ArticleThemeUseCase {
	return usecase.NewArticleThemeUseCase(memory.NewArticleThemeRepo(memory.NewStore()))
}

func TestArticleTheme_CodigoYNombreRequeridos(t *testing.T) {
	uc := newThemeUseCase()

	_, err := uc.Create(context.Background(), dto.ArticleThemeRequest{Code: " ", Description: "x"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "code")
	assert.Contains(t, ve.Fields, "name")
}

func TestArticleTheme_CRUD(t *testing.T) {
	uc := newThemeUseCase()
	ctx := auth.WithActor(context.Background(), "diseño")

	verano, err := uc.Create(ctx, dto.ArticleThemeRequest{Code: "VER24", Name: "Verano 2024"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ArticleThemeRequest{Code: "INV24", Name: "Invierno 2024"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.ArticleThemeRequest{Code: "VER24", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := uc.Read(ctx, dto.PageRequest{Keyword: "verano"})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "VER24", found.Items[0].Code)

	upd, err := uc.Update(ctx, verano.ID, dto.ArticleThemeRequest{Code: "VER24", Name: "Verano Tropical"})
	require.NoError(t, err)
	assert.Equal(t, "Verano Tropical", upd.Name)
	assert.Equal(t, "diseño", upd.UpdatedBy)

	require.NoError(t, uc.Delete(ctx, verano.ID))
	got, err := uc.GetByID(ctx, verano.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)

	all, err := uc.Read(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, all.Page.Total)

	assert.ErrorIs(t, uc.Delete(ctx, verano.ID), domain.ErrNotFound)
}
