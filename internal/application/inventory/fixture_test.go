package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// fixture arma los casos de uso sobre el store en memoria con datos maestros fijos.
type fixture struct {
	store    *memory.Store
	invRepo  *memory.InventoryRepo
	movRepo  *memory.InventoryMovementRepo
	storages *memory.StorageLookup
	items    *memory.ItemLookup
	products *memory.ProductLookup
	clock    *fakeClock
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	s := memory.NewStore()
	s.PutStorage(&entity.Storage{ID: "st-01", Code: "GDG.01", Name: "Bodega Principal", AllowNegativeStock: true})
	s.PutStorage(&entity.Storage{ID: "st-05", Code: "GDG.05", Name: "Tienda Centro", AllowNegativeStock: false})
	s.PutItem(&entity.Item{ID: "it-a", Code: "A", Name: "Camisa Lino", ArticleRealizationOrder: "RO-100", DomesticSale: decimal.NewFromInt(89000)})
	s.PutItem(&entity.Item{ID: "it-b", Code: "B", Name: "Pantalón Dril", ArticleRealizationOrder: "RO-200", DomesticSale: decimal.NewFromInt(120000)})
	s.PutProduct(&entity.Product{ID: "pr-1", Code: "P1", Name: "Kit Verano", Price: decimal.NewFromInt(150000)})

	return &fixture{
		store:    s,
		invRepo:  memory.NewInventoryRepo(s),
		movRepo:  memory.NewInventoryMovementRepo(s),
		storages: memory.NewStorageLookup(s),
		items:    memory.NewItemLookup(s),
		products: memory.NewProductLookup(s),
		clock:    &fakeClock{t: baseTime},
	}
}

func (f *fixture) engine(legacy bool) *inventory.MovementUseCase {
	return inventory.NewMovementUseCase(
		f.invRepo, memory.NewTxRunner(f.store),
		f.storages, f.items, f.products,
		logger.Nop(),
		inventory.MovementOptions{LegacyClampLedger: legacy, Now: f.clock.Now},
	)
}

func (f *fixture) positions() *inventory.InventoryUseCase {
	return inventory.NewInventoryUseCase(f.invRepo, f.storages, f.items, f.products).WithClock(f.clock.Now)
}

func (f *fixture) ledger() *inventory.InventoryMovementUseCase {
	return inventory.NewInventoryMovementUseCase(f.movRepo, f.invRepo)
}

func actorCtx() context.Context {
	return auth.WithActor(context.Background(), "ana.rios")
}

func ptr[T any](v T) *T { return &v }
