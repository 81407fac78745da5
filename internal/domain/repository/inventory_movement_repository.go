package repository

import (
	"context"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia del libro de movimientos.
// Solo inserción: no hay actualización ni borrado.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error)
	// List busca por referencia y observación.
	List(ctx context.Context, opts ListOptions) ([]*entity.InventoryMovement, int, error)
	ListByInventory(ctx context.Context, inventoryID string, opts ListOptions) ([]*entity.InventoryMovement, int, error)

	// LastInbound vista de antigüedad: la entrada (IN) más reciente por (bodega, código de artículo).
	LastInbound(ctx context.Context, storageID, keyword string) ([]entity.StockAgeRow, error)
}
