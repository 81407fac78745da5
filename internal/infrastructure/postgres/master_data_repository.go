package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// Consultas de solo lectura sobre los datos maestros (bodegas, artículos, productos).
// Las tablas las alimenta el sistema de catálogo; aquí solo se leen.

var (
	_ repository.StorageLookup = (*StorageRepo)(nil)
	_ repository.ItemLookup    = (*ItemRepo)(nil)
	_ repository.ProductLookup = (*ProductRepo)(nil)
)

// StorageRepo consulta bodegas.
type StorageRepo struct{ q Querier }

// NewStorageRepository construye el adaptador de bodegas.
func NewStorageRepository(q Querier) *StorageRepo { return &StorageRepo{q: q} }

func (r *StorageRepo) GetByID(ctx context.Context, id string) (*entity.Storage, error) {
	return r.get(ctx, "id", id)
}

func (r *StorageRepo) GetByCode(ctx context.Context, code string) (*entity.Storage, error) {
	return r.get(ctx, "code", code)
}

func (r *StorageRepo) get(ctx context.Context, column, value string) (*entity.Storage, error) {
	query := `
		SELECT id, code, name, description, allow_negative_stock
		FROM storages WHERE ` + column + ` = $1`
	var s entity.Storage
	err := r.q.QueryRow(ctx, query, value).Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.AllowNegativeStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage: %w", err)
	}
	return &s, nil
}

// ItemRepo consulta artículos.
type ItemRepo struct{ q Querier }

// NewItemRepository construye el adaptador de artículos.
func NewItemRepository(q Querier) *ItemRepo { return &ItemRepo{q: q} }

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.get(ctx, "id", id)
}

func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	return r.get(ctx, "code", code)
}

func (r *ItemRepo) get(ctx context.Context, column, value string) (*entity.Item, error) {
	query := `
		SELECT id, code, name, article_realization_order, domestic_sale
		FROM items WHERE ` + column + ` = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, value).Scan(&it.ID, &it.Code, &it.Name, &it.ArticleRealizationOrder, &it.DomesticSale)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ProductRepo consulta productos.
type ProductRepo struct{ q Querier }

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(q Querier) *ProductRepo { return &ProductRepo{q: q} }

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, "id", id)
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.get(ctx, "code", code)
}

func (r *ProductRepo) get(ctx context.Context, column, value string) (*entity.Product, error) {
	query := `
		SELECT id, code, name, price
		FROM products WHERE ` + column + ` = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, value).Scan(&p.ID, &p.Code, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
