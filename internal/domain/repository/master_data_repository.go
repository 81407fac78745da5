package repository

import (
	"context"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// Servicios de consulta de datos maestros (solo lectura). Devuelven (nil, nil) si no existe.

// StorageLookup resuelve bodegas.
type StorageLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Storage, error)
	GetByCode(ctx context.Context, code string) (*entity.Storage, error)
}

// ItemLookup resuelve artículos.
type ItemLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
}

// ProductLookup resuelve productos.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
}
