package memory

import (
	"context"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// StorageLookup consulta bodegas del store.
type StorageLookup struct{ s *Store }

// ItemLookup consulta artículos del store.
type ItemLookup struct{ s *Store }

// ProductLookup consulta productos del store.
type ProductLookup struct{ s *Store }

var (
	_ repository.StorageLookup = (*StorageLookup)(nil)
	_ repository.ItemLookup    = (*ItemLookup)(nil)
	_ repository.ProductLookup = (*ProductLookup)(nil)
)

// NewStorageLookup crea el servicio de consulta de bodegas.
func NewStorageLookup(s *Store) *StorageLookup { return &StorageLookup{s: s} }

// NewItemLookup crea el servicio de consulta de artículos.
func NewItemLookup(s *Store) *ItemLookup { return &ItemLookup{s: s} }

// NewProductLookup crea el servicio de consulta de productos.
func NewProductLookup(s *Store) *ProductLookup { return &ProductLookup{s: s} }

func (l *StorageLookup) GetByID(ctx context.Context, id string) (*entity.Storage, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	if st, ok := l.s.storages[id]; ok {
		c := *st
		return &c, nil
	}
	return nil, nil
}

func (l *StorageLookup) GetByCode(ctx context.Context, code string) (*entity.Storage, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	for _, st := range l.s.storages {
		if st.Code == code {
			c := *st
			return &c, nil
		}
	}
	return nil, nil
}

func (l *ItemLookup) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	if it, ok := l.s.items[id]; ok {
		c := *it
		return &c, nil
	}
	return nil, nil
}

func (l *ItemLookup) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	for _, it := range l.s.items {
		if it.Code == code {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (l *ProductLookup) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	if p, ok := l.s.products[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (l *ProductLookup) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	for _, p := range l.s.products {
		if p.Code == code {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}
