package backend

import (
	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/application/usecase"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/erp-inventario/pkg/config"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// UseCases casos de uso listos para HTTP y CLI.
type UseCases struct {
	Inventory    *inventory.InventoryUseCase
	Movement     *inventory.MovementUseCase
	Ledger       *inventory.InventoryMovementUseCase
	StockReport  *inventory.StockReportUseCase
	ArticleTheme *usecase.ArticleThemeUseCase
	MasterData   *usecase.MasterDataUseCase
}

// NewUseCases construye los casos de uso sobre b.
func NewUseCases(b *Backend, cfg config.InventoryConfig, log *logger.Logger) *UseCases {
	return &UseCases{
		Inventory: inventory.NewInventoryUseCase(b.Inventories, b.Storages, b.Items, b.Products),
		Movement: inventory.NewMovementUseCase(
			b.Inventories, b.TxRunner, b.Storages, b.Items, b.Products, log,
			inventory.MovementOptions{LegacyClampLedger: cfg.LegacyClampLedger},
		),
		Ledger:       inventory.NewInventoryMovementUseCase(b.Movements, b.Inventories),
		StockReport:  inventory.NewStockReportUseCase(b.Inventories, b.Movements, b.Storages, pdf.NewStockReportGenerator(), log),
		ArticleTheme: usecase.NewArticleThemeUseCase(b.Themes),
		MasterData:   usecase.NewMasterDataUseCase(b.Storages, b.Items, b.Products),
	}
}
