package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// InventoryMovementRepo implementa repository.InventoryMovementRepository en memoria.
type InventoryMovementRepo struct {
	s    *Store
	undo *undoLog
}

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// NewInventoryMovementRepo crea el repositorio del libro de movimientos.
func NewInventoryMovementRepo(s *Store) *InventoryMovementRepo {
	return &InventoryMovementRepo{s: s}
}

func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[m.ID]; ok {
		return domain.ErrDuplicate
	}
	id := m.ID
	r.s.movements[id] = cloneMovement(m)
	r.s.movementOrder = append(r.s.movementOrder, id)
	r.undo.push(func() {
		delete(r.s.movements, id)
		r.s.movementOrder = removeID(r.s.movementOrder, id)
	})
	return nil
}

func (r *InventoryMovementRepo) GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneMovement(r.s.movements[id]), nil
}

func (r *InventoryMovementRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.InventoryMovement, int, error) {
	match := keywordMatcher(opts.Keyword)
	return r.list(opts, func(m *entity.InventoryMovement) bool {
		return match(m.Reference, m.Remark)
	})
}

func (r *InventoryMovementRepo) ListByInventory(ctx context.Context, inventoryID string, opts repository.ListOptions) ([]*entity.InventoryMovement, int, error) {
	match := keywordMatcher(opts.Keyword)
	return r.list(opts, func(m *entity.InventoryMovement) bool {
		return m.InventoryID == inventoryID && match(m.Reference, m.Remark)
	})
}

func (r *InventoryMovementRepo) list(opts repository.ListOptions, keep func(*entity.InventoryMovement) bool) ([]*entity.InventoryMovement, int, error) {
	r.s.mu.RLock()
	var all []*entity.InventoryMovement
	for _, id := range r.s.movementOrder {
		if m := r.s.movements[id]; keep(m) {
			all = append(all, cloneMovement(m))
		}
	}
	r.s.mu.RUnlock()

	less := func(a, b *entity.InventoryMovement) int { return strings.Compare(a.ID, b.ID) }
	switch opts.OrderBy {
	case repository.OrderByDate, repository.OrderByCreatedDate:
		less = func(a, b *entity.InventoryMovement) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
	total := len(all)
	return page(all, less, opts.Asc, opts.Offset, opts.Limit), total, nil
}

// LastInbound entradas IN de la bodega ordenadas por fecha descendente; la primera por
// (bodega, código de artículo) es la más reciente.
func (r *InventoryMovementRepo) LastInbound(ctx context.Context, storageID, keyword string) ([]entity.StockAgeRow, error) {
	match := keywordMatcher(keyword)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ins []*entity.InventoryMovement
	for _, id := range r.s.movementOrder {
		m := r.s.movements[id]
		if m.Type == entity.MovementTypeIN && m.StorageID == storageID {
			ins = append(ins, m)
		}
	}
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].CreatedAt.After(ins[j].CreatedAt) })

	seen := make(map[string]bool)
	var out []entity.StockAgeRow
	for _, m := range ins {
		inv := r.s.inventories[m.InventoryID]
		if inv == nil || inv.Item == nil {
			continue
		}
		if !match(inv.Item.Code, inv.Item.Name, inv.Item.ArticleRealizationOrder) {
			continue
		}
		key := m.StorageID + "|" + inv.Item.Code
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entity.StockAgeRow{
			StorageID:     m.StorageID,
			StorageCode:   inv.Storage.Code,
			StorageName:   inv.Storage.Name,
			ItemCode:      inv.Item.Code,
			ItemName:      inv.Item.Name,
			LastInboundAt: m.CreatedAt,
		})
	}
	return out, nil
}
