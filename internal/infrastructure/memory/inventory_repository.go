package memory

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// InventoryRepo implementa repository.InventoryRepository en memoria.
// Dentro de una unidad de trabajo registra en undo cómo revertir cada escritura.
type InventoryRepo struct {
	s    *Store
	undo *undoLog
}

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// NewInventoryRepo crea el repositorio de posiciones.
func NewInventoryRepo(s *Store) *InventoryRepo {
	return &InventoryRepo{s: s}
}

func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventories[inv.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.liveLocked(inv) != nil {
		return domain.ErrDuplicate
	}
	r.insertLocked(inv)
	return nil
}

func (r *InventoryRepo) CreateIfAbsent(ctx context.Context, inv *entity.Inventory) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.liveLocked(inv) != nil {
		return false, nil
	}
	r.insertLocked(inv)
	return true, nil
}

func (r *InventoryRepo) insertLocked(inv *entity.Inventory) {
	id := inv.ID
	r.s.inventories[id] = cloneInventory(inv)
	r.s.inventoryOrder = append(r.s.inventoryOrder, id)
	r.undo.push(func() {
		delete(r.s.inventories, id)
		r.s.inventoryOrder = removeID(r.s.inventoryOrder, id)
	})
}

func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.inventories[inv.ID]
	if !ok {
		return fmt.Errorf("actualizar posición %s: %w", inv.ID, domain.ErrNotFound)
	}
	if !inv.Deleted {
		if other := r.liveLocked(inv); other != nil && other.ID != inv.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.inventories[inv.ID] = cloneInventory(inv)
	r.undo.push(func() { r.s.inventories[prev.ID] = prev })
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneInventory(r.s.inventories[id]), nil
}

// GetForUpdate no necesita bloqueo propio: el TxRunner ya serializa las unidades de trabajo.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.Inventory, error) {
	return r.GetByID(ctx, id)
}

func (r *InventoryRepo) GetByStorageAndItem(ctx context.Context, storageID, itemID string) (*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneInventory(r.liveLocked(&entity.Inventory{StorageID: storageID, ItemID: itemID})), nil
}

func (r *InventoryRepo) GetByStorageAndProduct(ctx context.Context, storageID, productID string) (*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneInventory(r.liveLocked(&entity.Inventory{StorageID: storageID, ProductID: productID})), nil
}

// liveLocked busca la posición viva del mismo par que key. Requiere mu tomado.
func (r *InventoryRepo) liveLocked(key *entity.Inventory) *entity.Inventory {
	for _, id := range r.s.inventoryOrder {
		inv := r.s.inventories[id]
		if inv.Deleted || inv.StorageID != key.StorageID {
			continue
		}
		if key.IsProduct() {
			if inv.ProductID == key.ProductID && inv.ItemID == "" {
				return inv
			}
			continue
		}
		if inv.ItemID == key.ItemID {
			return inv
		}
	}
	return nil
}

func (r *InventoryRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Inventory, int, error) {
	match := keywordMatcher(opts.Keyword)
	return r.list(opts, func(inv *entity.Inventory) bool {
		code, name := itemFields(inv)
		return match(code, name, inv.Storage.Name)
	})
}

func (r *InventoryRepo) ListByStorage(ctx context.Context, storageID string, opts repository.ListOptions) ([]*entity.Inventory, int, error) {
	match := keywordMatcher(opts.Keyword)
	return r.list(opts, func(inv *entity.Inventory) bool {
		if inv.StorageID != storageID {
			return false
		}
		code, name := itemFields(inv)
		order, sale := "", ""
		if inv.Item != nil {
			order, sale = inv.Item.ArticleRealizationOrder, inv.Item.DomesticSale.String()
		}
		return match(code, name, order, sale)
	})
}

func (r *InventoryRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Inventory
	for _, id := range r.s.inventoryOrder {
		inv := r.s.inventories[id]
		if !inv.Deleted && inv.ItemID == itemID {
			out = append(out, cloneInventory(inv))
		}
	}
	return out, nil
}

func (r *InventoryRepo) list(opts repository.ListOptions, keep func(*entity.Inventory) bool) ([]*entity.Inventory, int, error) {
	r.s.mu.RLock()
	var all []*entity.Inventory
	for _, id := range r.s.inventoryOrder {
		inv := r.s.inventories[id]
		if !inv.Deleted && keep(inv) {
			all = append(all, cloneInventory(inv))
		}
	}
	r.s.mu.RUnlock()

	total := len(all)
	return page(all, inventoryOrder(opts.OrderBy), opts.Asc, opts.Offset, opts.Limit), total, nil
}

func inventoryOrder(key string) func(a, b *entity.Inventory) int {
	switch key {
	case repository.OrderByCreatedDate:
		return func(a, b *entity.Inventory) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case repository.OrderByUpdatedDate:
		return func(a, b *entity.Inventory) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case repository.OrderByQuantity:
		return func(a, b *entity.Inventory) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case repository.OrderByCode:
		return func(a, b *entity.Inventory) int {
			ac, _ := itemFields(a)
			bc, _ := itemFields(b)
			return strings.Compare(ac, bc)
		}
	case repository.OrderByName:
		return func(a, b *entity.Inventory) int {
			_, an := itemFields(a)
			_, bn := itemFields(b)
			return strings.Compare(an, bn)
		}
	default:
		return func(a, b *entity.Inventory) int { return strings.Compare(a.ID, b.ID) }
	}
}

// CurrentQuantities recorre las posiciones en orden de inserción y conserva la primera
// por (bodega, código de artículo), como el $group con $first.
func (r *InventoryRepo) CurrentQuantities(ctx context.Context, storageID, keyword string) ([]entity.StockQuantityRow, error) {
	match := keywordMatcher(keyword)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []entity.StockQuantityRow
	for _, id := range r.s.inventoryOrder {
		inv := r.s.inventories[id]
		if inv.Deleted || inv.StorageID != storageID || inv.Quantity <= 0 || inv.Item == nil {
			continue
		}
		if !match(inv.Item.Code, inv.Item.Name, inv.Item.ArticleRealizationOrder) {
			continue
		}
		key := inv.StorageID + "|" + inv.Item.Code
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entity.StockQuantityRow{
			StorageID:   inv.StorageID,
			StorageCode: inv.Storage.Code,
			StorageName: inv.Storage.Name,
			ItemCode:    inv.Item.Code,
			ItemName:    inv.Item.Name,
			Quantity:    inv.Quantity,
		})
	}
	return out, nil
}

func itemFields(inv *entity.Inventory) (code, name string) {
	switch {
	case inv.Item != nil:
		return inv.Item.Code, inv.Item.Name
	case inv.Product != nil:
		return inv.Product.Code, inv.Product.Name
	}
	return "", ""
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
