package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// MasterDataUseCase resuelve bodegas, artículos y productos por código (solo lectura).
type MasterDataUseCase struct {
	storages repository.StorageLookup
	items    repository.ItemLookup
	products repository.ProductLookup
}

// NewMasterDataUseCase construye el caso de uso.
func NewMasterDataUseCase(storages repository.StorageLookup, items repository.ItemLookup, products repository.ProductLookup) *MasterDataUseCase {
	return &MasterDataUseCase{storages: storages, items: items, products: products}
}

// StorageByCode devuelve la bodega o domain.ErrNotFound.
func (uc *MasterDataUseCase) StorageByCode(ctx context.Context, code string) (*entity.Storage, error) {
	st, err := uc.storages.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("bodega %q: %w", code, domain.ErrNotFound)
	}
	return st, nil
}

// ItemByCode devuelve el artículo o domain.ErrNotFound.
func (uc *MasterDataUseCase) ItemByCode(ctx context.Context, code string) (*entity.Item, error) {
	it, err := uc.items.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("artículo %q: %w", code, domain.ErrNotFound)
	}
	return it, nil
}

// ProductByCode devuelve el producto o domain.ErrNotFound.
func (uc *MasterDataUseCase) ProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	p, err := uc.products.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %q: %w", code, domain.ErrNotFound)
	}
	return p, nil
}
