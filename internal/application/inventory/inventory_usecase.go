package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// InventoryUseCase casos de uso CRUD de posiciones de inventario.
type InventoryUseCase struct {
	repo      repository.InventoryRepository
	validator *positionValidator
	now       func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	storages repository.StorageLookup,
	items repository.ItemLookup,
	products repository.ProductLookup,
) *InventoryUseCase {
	return &InventoryUseCase{
		repo:      repo,
		validator: newPositionValidator(storages, items, products),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *InventoryUseCase) WithClock(now func() time.Time) *InventoryUseCase {
	uc.now = now
	return uc
}

// Create valida y crea una posición. Devuelve ErrDuplicate si ya hay una viva para el mismo par.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.validator.build(ctx, in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.findLive(ctx, inv)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	inv.ID = uuid.New().String()
	inv.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Update valida la entrada completa y reemplaza par, cantidad y snapshots de la posición.
// Devuelve (nil, nil) si la posición no existe o está borrada.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil || current.Deleted {
		return nil, nil
	}
	next, err := uc.validator.build(ctx, in)
	if err != nil {
		return nil, err
	}
	other, err := uc.findLive(ctx, next)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != current.ID {
		return nil, domain.ErrDuplicate
	}

	current.StorageID, current.Storage = next.StorageID, next.Storage
	current.ItemID, current.Item = next.ItemID, next.Item
	current.ProductID, current.Product = next.ProductID, next.Product
	current.Quantity = next.Quantity
	current.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return toInventoryResponse(current), nil
}

// Delete borrado lógico: marca _deleted y estampa. No revalida bodega ni artículo.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil || inv.Deleted {
		return domain.ErrNotFound
	}
	inv.Deleted = true
	inv.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
	if err := uc.repo.Update(ctx, inv); err != nil {
		return fmt.Errorf("borrar posición %s: %w", id, err)
	}
	return nil
}

// GetByID obtiene una posición por ID, incluidas las borradas. (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Read lista posiciones vivas con paginación y búsqueda por palabra clave.
func (uc *InventoryUseCase) Read(ctx context.Context, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	list, total, err := uc.repo.List(ctx, page.ListOptions())
	if err != nil {
		return nil, err
	}
	return &dto.InventoryListResponse{
		Items: toInventoryResponses(list),
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

// ReadByStorage lista las posiciones vivas de una bodega, más recientes primero salvo orden explícito.
func (uc *InventoryUseCase) ReadByStorage(ctx context.Context, storageID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	if page.Order == "" {
		desc := false
		page.Order = repository.OrderByCreatedDate
		page.Asc = &desc
	}
	list, total, err := uc.repo.ListByStorage(ctx, storageID, page.ListOptions())
	if err != nil {
		return nil, err
	}
	return &dto.InventoryListResponse{
		Items: toInventoryResponses(list),
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

// GetByStorageAndItem devuelve la posición viva del par sin crearla. (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByStorageAndItem(ctx context.Context, storageID, itemID string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByStorageAndItem(ctx, storageID, itemID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// GetByItem devuelve las posiciones vivas de un artículo en todas las bodegas.
func (uc *InventoryUseCase) GetByItem(ctx context.Context, itemID string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

func (uc *InventoryUseCase) findLive(ctx context.Context, inv *entity.Inventory) (*entity.Inventory, error) {
	if inv.IsProduct() {
		return uc.repo.GetByStorageAndProduct(ctx, inv.StorageID, inv.ProductID)
	}
	return uc.repo.GetByStorageAndItem(ctx, inv.StorageID, inv.ItemID)
}
