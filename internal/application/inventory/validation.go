package inventory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// positionValidator resuelve bodega y artículo/producto de una posición y acumula
// todos los errores de campo en un único domain.ValidationError.
type positionValidator struct {
	storages repository.StorageLookup
	items    repository.ItemLookup
	products repository.ProductLookup
}

func newPositionValidator(
	storages repository.StorageLookup,
	items repository.ItemLookup,
	products repository.ProductLookup,
) *positionValidator {
	return &positionValidator{storages: storages, items: items, products: products}
}

// build valida la entrada y devuelve la posición con los snapshots resueltos (sin ID ni stamp).
func (v *positionValidator) build(ctx context.Context, in dto.InventoryRequest) (*entity.Inventory, error) {
	var (
		storage *entity.Storage
		item    *entity.Item
		product *entity.Product
	)
	byProduct := in.ItemID == "" && in.ProductID != ""

	// Las consultas a datos maestros son independientes: se lanzan en paralelo.
	g, gctx := errgroup.WithContext(ctx)
	if in.StorageID != "" {
		g.Go(func() (err error) {
			storage, err = v.storages.GetByID(gctx, in.StorageID)
			return err
		})
	}
	switch {
	case byProduct:
		g.Go(func() (err error) {
			product, err = v.products.GetByID(gctx, in.ProductID)
			return err
		})
	case in.ItemID != "":
		g.Go(func() (err error) {
			item, err = v.items.GetByID(gctx, in.ItemID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	errs := domain.FieldErrors{}
	inv := &entity.Inventory{}

	switch {
	case in.StorageID == "":
		errs.Add("storageId", "storageId es requerido")
	case storage == nil:
		errs.Add("storageId", "storageId no encontrado")
	default:
		inv.StorageID = storage.ID
		inv.Storage = storage.Snapshot()
	}

	if byProduct {
		if product == nil {
			errs.Add("productId", "producto no encontrado")
		} else {
			inv.ProductID = product.ID
			inv.Product = product.Snapshot()
		}
	} else {
		switch {
		case in.ItemID == "" && in.ProductID == "":
			errs.Add("itemId", "itemId es requerido")
		case item == nil:
			errs.Add("itemId", "itemId no encontrado")
		default:
			inv.ItemID = item.ID
			inv.Item = item.Snapshot()
		}
	}

	switch {
	case in.Quantity == nil:
		errs.Add("quantity", "quantity es requerido")
	case *in.Quantity < 0:
		errs.Add("quantity", "quantity debe ser mayor o igual a 0")
	default:
		inv.Quantity = *in.Quantity
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return inv, nil
}
