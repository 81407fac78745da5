package repository

import (
	"context"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia de posiciones de inventario (DIP).
// Las lecturas por par (bodega, artículo|producto) ignoran las posiciones borradas.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	// CreateIfAbsent inserta la posición solo si no existe otra viva para el mismo par.
	// Devuelve false si ya existía (la posición no se inserta).
	CreateIfAbsent(ctx context.Context, inv *entity.Inventory) (bool, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	// GetByID devuelve la posición aunque esté borrada lógicamente.
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	// GetForUpdate igual que GetByID pero bloquea la posición hasta el fin de la unidad de trabajo.
	GetForUpdate(ctx context.Context, id string) (*entity.Inventory, error)
	GetByStorageAndItem(ctx context.Context, storageID, itemID string) (*entity.Inventory, error)
	GetByStorageAndProduct(ctx context.Context, storageID, productID string) (*entity.Inventory, error)
	// List busca por código/nombre de artículo y nombre de bodega.
	List(ctx context.Context, opts ListOptions) ([]*entity.Inventory, int, error)
	// ListByStorage busca por código, nombre, orden de realización y precio nacional del artículo.
	ListByStorage(ctx context.Context, storageID string, opts ListOptions) ([]*entity.Inventory, int, error)
	ListByItem(ctx context.Context, itemID string) ([]*entity.Inventory, error)

	// CurrentQuantities vista de cantidad actual: posiciones vivas de la bodega con quantity > 0,
	// primera fila por (bodega, código de artículo).
	CurrentQuantities(ctx context.Context, storageID, keyword string) ([]entity.StockQuantityRow, error)
}
