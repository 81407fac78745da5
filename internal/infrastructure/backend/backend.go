// Package backend arma los adaptadores de persistencia según STORE_DRIVER.
package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/erp-inventario/pkg/config"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// Backend repositorios y TxRunner de un mismo almacenamiento.
type Backend struct {
	Inventories repository.InventoryRepository
	Movements   repository.InventoryMovementRepository
	Themes      repository.ArticleThemeRepository
	Storages    repository.StorageLookup
	Items       repository.ItemLookup
	Products    repository.ProductLookup
	TxRunner    inventory.TxRunner

	close func()
}

// Close libera el pool (no-op en memoria).
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open conecta con el driver configurado. En postgres aplica migraciones si DB_MIGRATE=true;
// en memoria carga el catálogo STORE_SEED_CSV si está definido.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return openMemory(cfg.Store, log)
	case config.StoreDriverPostgres, "":
		return openPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Backend, error) {
	if cfg.Migrate {
		if err := postgres.Migrate(cfg.ConnectionString()); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Inventories: postgres.NewInventoryRepository(pool),
		Movements:   postgres.NewInventoryMovementRepository(pool),
		Themes:      postgres.NewArticleThemeRepository(pool),
		Storages:    postgres.NewStorageRepository(pool),
		Items:       postgres.NewItemRepository(pool),
		Products:    postgres.NewProductRepository(pool),
		TxRunner:    postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}

func openMemory(cfg config.StoreConfig, log *logger.Logger) (*Backend, error) {
	s := memory.NewStore()
	if cfg.SeedCSV != "" {
		cat, err := seed.LoadFile(cfg.SeedCSV)
		if err != nil {
			return nil, err
		}
		cat.Apply(s)
		log.Info().
			Str("file", cfg.SeedCSV).
			Int("storages", len(cat.Storages)).
			Int("items", len(cat.Items)).
			Int("products", len(cat.Products)).
			Msg("catálogo cargado en memoria")
	} else {
		log.Warn().Msg("driver memory sin STORE_SEED_CSV: no hay bodegas ni artículos")
	}
	return FromMemory(s), nil
}

// FromMemory envuelve un store en memoria ya poblado.
func FromMemory(s *memory.Store) *Backend {
	return &Backend{
		Inventories: memory.NewInventoryRepo(s),
		Movements:   memory.NewInventoryMovementRepo(s),
		Themes:      memory.NewArticleThemeRepo(s),
		Storages:    memory.NewStorageLookup(s),
		Items:       memory.NewItemLookup(s),
		Products:    memory.NewProductLookup(s),
		TxRunner:    memory.NewTxRunner(s),
	}
}
