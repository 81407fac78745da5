// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORE_DRIVER=memory; no persiste entre reinicios.
package memory

import (
	"regexp"
	"sort"
	"sync"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// Store contenedor compartido por todos los repositorios en memoria.
// mu protege los mapas; txMu serializa las unidades de trabajo del TxRunner.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	storages map[string]*entity.Storage
	items    map[string]*entity.Item
	products map[string]*entity.Product

	inventories    map[string]*entity.Inventory
	inventoryOrder []string
	movements      map[string]*entity.InventoryMovement
	movementOrder  []string
	themes         map[string]*entity.ArticleTheme
	themeOrder     []string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		storages:    make(map[string]*entity.Storage),
		items:       make(map[string]*entity.Item),
		products:    make(map[string]*entity.Product),
		inventories: make(map[string]*entity.Inventory),
		movements:   make(map[string]*entity.InventoryMovement),
		themes:      make(map[string]*entity.ArticleTheme),
	}
}

// ── Datos maestros (carga) ──────────────────────────────────────────────────

// PutStorage agrega o reemplaza una bodega.
func (s *Store) PutStorage(st *entity.Storage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *st
	s.storages[st.ID] = &c
}

// PutItem agrega o reemplaza un artículo.
func (s *Store) PutItem(it *entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *it
	s.items[it.ID] = &c
}

// PutProduct agrega o reemplaza un producto.
func (s *Store) PutProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *p
	s.products[p.ID] = &c
}

// ── helpers ─────────────────────────────────────────────────────────────────

func cloneInventory(inv *entity.Inventory) *entity.Inventory {
	if inv == nil {
		return nil
	}
	c := *inv
	if inv.Item != nil {
		it := *inv.Item
		c.Item = &it
	}
	if inv.Product != nil {
		p := *inv.Product
		c.Product = &p
	}
	return &c
}

func cloneMovement(m *entity.InventoryMovement) *entity.InventoryMovement {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func cloneTheme(t *entity.ArticleTheme) *entity.ArticleTheme {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// keywordMatcher compila la palabra clave como texto literal sin distinguir mayúsculas,
// igual que el adaptador PostgreSQL. Palabra vacía = sin filtro.
func keywordMatcher(keyword string) func(fields ...string) bool {
	if keyword == "" {
		return func(...string) bool { return true }
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	return func(fields ...string) bool {
		for _, f := range fields {
			if re.MatchString(f) {
				return true
			}
		}
		return false
	}
}

// page aplica orden estable, offset y limit sobre una lista ya filtrada.
func page[T any](list []T, less func(a, b T) int, asc bool, offset, limit int) []T {
	sort.SliceStable(list, func(i, j int) bool {
		c := less(list[i], list[j])
		if asc {
			return c < 0
		}
		return c > 0
	})
	switch {
	case offset < 0:
		offset = 0
	case offset > len(list):
		offset = len(list)
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
