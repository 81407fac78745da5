package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// InventoryMovementUseCase administra el libro de movimientos: alta directa y consultas.
// El libro es de solo inserción; no expone actualización ni borrado.
type InventoryMovementUseCase struct {
	movRepo repository.InventoryMovementRepository
	invRepo repository.InventoryRepository
	now     func() time.Time
}

// NewInventoryMovementUseCase construye el caso de uso.
func NewInventoryMovementUseCase(
	movRepo repository.InventoryMovementRepository,
	invRepo repository.InventoryRepository,
) *InventoryMovementUseCase {
	return &InventoryMovementUseCase{movRepo: movRepo, invRepo: invRepo, now: time.Now}
}

// Create registra una entrada del libro tal como llega (no modifica la posición).
// Valida inventoryId, type y que after == before + quantity.
func (uc *InventoryMovementUseCase) Create(ctx context.Context, in dto.InventoryMovementRequest) (*dto.InventoryMovementResponse, error) {
	errs := domain.FieldErrors{}
	var inv *entity.Inventory
	if in.InventoryID == "" {
		errs.Add("inventoryId", "inventoryId es requerido")
	} else {
		var err error
		inv, err = uc.invRepo.GetByID(ctx, in.InventoryID)
		if err != nil {
			return nil, err
		}
		if inv == nil || inv.Deleted {
			errs.Add("inventoryId", "inventoryId no encontrado")
		}
	}
	if !entity.IsValidMovementType(in.Type) {
		errs.Add("type", "type debe ser IN u OUT")
	}
	if in.After != in.Before+in.Quantity {
		errs.Add("after", "after debe ser igual a before + quantity")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	now := uc.now()
	m := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		InventoryID: inv.ID,
		Date:        now,
		Reference:   in.Reference,
		Type:        in.Type,
		StorageID:   inv.StorageID,
		ItemID:      inv.ItemID,
		ProductID:   inv.ProductID,
		Before:      in.Before,
		Quantity:    in.Quantity,
		After:       in.After,
		Remark:      in.Remark,
		CreatedBy:   auth.Actor(ctx),
		CreatedAt:   now,
	}
	if err := uc.movRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// GetByID obtiene una entrada del libro. (nil, nil) si no existe.
func (uc *InventoryMovementUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryMovementResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// Read lista el libro con búsqueda por referencia y observación.
func (uc *InventoryMovementUseCase) Read(ctx context.Context, page dto.PageRequest) (*dto.InventoryMovementListResponse, error) {
	list, total, err := uc.movRepo.List(ctx, page.ListOptions())
	if err != nil {
		return nil, err
	}
	return &dto.InventoryMovementListResponse{
		Items: toMovementResponses(list),
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

// ListByInventory historial de una posición, más reciente primero salvo orden explícito.
func (uc *InventoryMovementUseCase) ListByInventory(ctx context.Context, inventoryID string, page dto.PageRequest) (*dto.InventoryMovementListResponse, error) {
	if page.Order == "" {
		desc := false
		page.Order = repository.OrderByDate
		page.Asc = &desc
	}
	list, total, err := uc.movRepo.ListByInventory(ctx, inventoryID, page.ListOptions())
	if err != nil {
		return nil, err
	}
	return &dto.InventoryMovementListResponse{
		Items: toMovementResponses(list),
		Page:  dto.NewPageResponse(page, total),
	}, nil
}
