package inventory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// MovementOptions opciones del motor de movimientos.
type MovementOptions struct {
	// LegacyClampLedger reproduce la aritmética histórica del libro cuando se aplica el piso en cero
	// (ver inventory.ApplyMovementLegacy).
	LegacyClampLedger bool
	// Now reloj inyectable; por defecto time.Now.
	Now func() time.Time
}

// MovementUseCase motor de movimientos de stock: resuelve (o crea) la posición,
// calcula before/after, actualiza la posición e inserta la entrada del libro en la
// misma unidad de trabajo (TxRunner) con la posición bloqueada.
type MovementUseCase struct {
	repo      repository.InventoryRepository
	txRunner  TxRunner
	validator *positionValidator
	log       *logger.Logger
	apply     func(before, qty int64, allowNegative bool) inventory.Balance
	now       func() time.Time
	creating  singleflight.Group
}

// NewMovementUseCase construye el motor inyectando los servicios de datos maestros.
func NewMovementUseCase(
	repo repository.InventoryRepository,
	txRunner TxRunner,
	storages repository.StorageLookup,
	items repository.ItemLookup,
	products repository.ProductLookup,
	log *logger.Logger,
	opts MovementOptions,
) *MovementUseCase {
	uc := &MovementUseCase{
		repo:      repo,
		txRunner:  txRunner,
		validator: newPositionValidator(storages, items, products),
		log:       log,
		apply:     inventory.ApplyMovement,
		now:       opts.Now,
	}
	if opts.LegacyClampLedger {
		uc.apply = inventory.ApplyMovementLegacy
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	return uc
}

// In registra una entrada de |quantity| unidades del artículo y devuelve el ID del movimiento.
func (uc *MovementUseCase) In(ctx context.Context, storageID, refNo, itemID string, quantity int64, remark string) (string, error) {
	return uc.Move(ctx, storageID, refNo, entity.MovementTypeIN, itemID, inventory.Signed(entity.MovementTypeIN, quantity), remark)
}

// Out registra una salida de |quantity| unidades del artículo y devuelve el ID del movimiento.
func (uc *MovementUseCase) Out(ctx context.Context, storageID, refNo, itemID string, quantity int64, remark string) (string, error) {
	return uc.Move(ctx, storageID, refNo, entity.MovementTypeOUT, itemID, inventory.Signed(entity.MovementTypeOUT, quantity), remark)
}

// InProduct equivalente de In para posiciones indexadas por producto.
func (uc *MovementUseCase) InProduct(ctx context.Context, storageID, refNo, productID string, quantity int64, remark string) (string, error) {
	return uc.MoveProduct(ctx, storageID, refNo, entity.MovementTypeIN, productID, inventory.Signed(entity.MovementTypeIN, quantity), remark)
}

// OutProduct equivalente de Out para posiciones indexadas por producto.
func (uc *MovementUseCase) OutProduct(ctx context.Context, storageID, refNo, productID string, quantity int64, remark string) (string, error) {
	return uc.MoveProduct(ctx, storageID, refNo, entity.MovementTypeOUT, productID, inventory.Signed(entity.MovementTypeOUT, quantity), remark)
}

// Move aplica el delta con signo quantity a la posición (storageID, itemID).
// quantity = 0 es válido: deja la posición igual y registra una entrada con before == after.
func (uc *MovementUseCase) Move(ctx context.Context, storageID, refNo, movementType, itemID string, quantity int64, remark string) (string, error) {
	if err := validateMove(movementType, quantity); err != nil {
		return "", err
	}
	inv, err := uc.GetInventory(ctx, storageID, itemID)
	if err != nil {
		return "", err
	}
	return uc.apply0(ctx, inv.ID, refNo, movementType, quantity, remark, true)
}

// MoveProduct aplica el delta con signo quantity a la posición (storageID, productID).
// El piso en cero no aplica a productos: la posición guarda siempre before + quantity.
func (uc *MovementUseCase) MoveProduct(ctx context.Context, storageID, refNo, movementType, productID string, quantity int64, remark string) (string, error) {
	if err := validateMove(movementType, quantity); err != nil {
		return "", err
	}
	inv, err := uc.GetProductInventory(ctx, storageID, productID)
	if err != nil {
		return "", err
	}
	return uc.apply0(ctx, inv.ID, refNo, movementType, quantity, remark, false)
}

// MoveFromRequest adapta el request HTTP/CLI: exige exactamente uno de ItemID / ProductID.
func (uc *MovementUseCase) MoveFromRequest(ctx context.Context, movementType string, in dto.MovementRequest) (string, error) {
	errs := domain.FieldErrors{}
	if in.StorageID == "" {
		errs.Add("storageId", "storageId es requerido")
	}
	if (in.ItemID == "") == (in.ProductID == "") {
		errs.Add("itemId", "se requiere itemId o productId (solo uno)")
	}
	if in.Quantity == math.MinInt64 {
		errs.Add("quantity", "quantity fuera de rango")
	}
	if err := errs.Err(); err != nil {
		return "", err
	}
	qty := inventory.Signed(movementType, in.Quantity)
	if in.ProductID != "" {
		return uc.MoveProduct(ctx, in.StorageID, in.Reference, movementType, in.ProductID, qty, in.Remark)
	}
	return uc.Move(ctx, in.StorageID, in.Reference, movementType, in.ItemID, qty, in.Remark)
}

// GetInventory devuelve la posición viva (storageID, itemID), creándola con cantidad 0 si no existe.
func (uc *MovementUseCase) GetInventory(ctx context.Context, storageID, itemID string) (*entity.Inventory, error) {
	return uc.getOrCreate(ctx, dto.InventoryRequest{StorageID: storageID, ItemID: itemID}, func(ctx context.Context) (*entity.Inventory, error) {
		return uc.repo.GetByStorageAndItem(ctx, storageID, itemID)
	})
}

// GetProductInventory devuelve la posición viva (storageID, productID), creándola si no existe.
func (uc *MovementUseCase) GetProductInventory(ctx context.Context, storageID, productID string) (*entity.Inventory, error) {
	return uc.getOrCreate(ctx, dto.InventoryRequest{StorageID: storageID, ProductID: productID}, func(ctx context.Context) (*entity.Inventory, error) {
		return uc.repo.GetByStorageAndProduct(ctx, storageID, productID)
	})
}

// getOrCreate: las llamadas concurrentes para el mismo par se colapsan en una sola creación
// (singleflight) y el repositorio inserta de forma condicional, así que nunca quedan dos
// posiciones vivas para el mismo par.
func (uc *MovementUseCase) getOrCreate(
	ctx context.Context,
	in dto.InventoryRequest,
	find func(context.Context) (*entity.Inventory, error),
) (*entity.Inventory, error) {
	if in.StorageID == "" || (in.ItemID == "" && in.ProductID == "") {
		errs := domain.FieldErrors{}
		if in.StorageID == "" {
			errs.Add("storageId", "storageId es requerido")
		}
		if in.ItemID == "" && in.ProductID == "" {
			errs.Add("itemId", "itemId es requerido")
		}
		return nil, errs.Err()
	}
	inv, err := find(ctx)
	if err != nil || inv != nil {
		return inv, err
	}

	key := in.StorageID + "|" + in.ItemID + "|" + in.ProductID
	// La creación es compartida por todos los que esperan la misma clave: no se cancela con el
	// primer llamador y queda firmada por él (cada movimiento vuelve a firmar la posición).
	shared := context.WithoutCancel(ctx)
	v, err, _ := uc.creating.Do(key, func() (any, error) {
		ctx := shared
		zero := int64(0)
		in.Quantity = &zero
		fresh, err := uc.validator.build(ctx, in)
		if err != nil {
			return nil, err
		}
		fresh.ID = uuid.New().String()
		fresh.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
		created, err := uc.repo.CreateIfAbsent(ctx, fresh)
		if err != nil {
			return nil, err
		}
		if created {
			uc.log.Debug().
				Str("inventory_id", fresh.ID).
				Str("storage_id", fresh.StorageID).
				Msg("posición de inventario creada")
		}
		inv, err := find(ctx)
		if err != nil {
			return nil, err
		}
		if inv == nil {
			return nil, fmt.Errorf("posición (%s) no disponible tras crearla: %w", key, domain.ErrConflict)
		}
		return inv, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.Inventory), nil
}

// apply0 bloquea la posición, calcula el balance y persiste posición + libro en la misma unidad de trabajo.
// floor indica si se respeta la política de stock negativo de la bodega.
func (uc *MovementUseCase) apply0(ctx context.Context, inventoryID, refNo, movementType string, quantity int64, remark string, floor bool) (string, error) {
	var movementID string
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		inv, err := invRepo.GetForUpdate(ctx, inventoryID)
		if err != nil {
			return err
		}
		if inv == nil || inv.Deleted {
			return domain.ErrNotFound
		}

		bal := uc.apply(inv.Quantity, quantity, !floor || inv.Storage.AllowNegativeStock)
		if bal.Clamped {
			uc.log.Warn().
				Str("inventory_id", inv.ID).
				Str("storage", inv.Storage.Code).
				Int64("before", inv.Quantity).
				Int64("quantity", quantity).
				Msg("bodega sin stock negativo: posición ajustada a cero")
		}

		now := uc.now()
		actor := auth.Actor(ctx)
		movement := &entity.InventoryMovement{
			ID:          uuid.New().String(),
			InventoryID: inv.ID,
			Date:        now,
			Reference:   refNo,
			Type:        movementType,
			StorageID:   inv.StorageID,
			ItemID:      inv.ItemID,
			ProductID:   inv.ProductID,
			Before:      bal.Before,
			Quantity:    quantity,
			After:       bal.After,
			Remark:      remark,
			CreatedBy:   actor,
			CreatedAt:   now,
		}

		inv.Quantity = bal.Stored
		inv.Stamp.Touch(actor, entity.AgentManager, now)
		if err := invRepo.Update(ctx, inv); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, movement); err != nil {
			return err
		}
		movementID = movement.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// validateMove exige un tipo IN/OUT y un delta representable en valor absoluto.
func validateMove(t string, quantity int64) error {
	errs := domain.FieldErrors{}
	if !entity.IsValidMovementType(t) {
		errs.Add("type", "type debe ser IN u OUT")
	}
	if quantity == math.MinInt64 {
		errs.Add("quantity", "quantity fuera de rango")
	}
	return errs.Err()
}
