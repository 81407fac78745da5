package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/application/usecase"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC    *inventory.InventoryUseCase
	MovementUC     *inventory.MovementUseCase
	LedgerUC       *inventory.InventoryMovementUseCase
	StockReportUC  *inventory.StockReportUseCase
	ArticleThemeUC *usecase.ArticleThemeUseCase
	JWTSecret      string
	Logger         *logger.Logger
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token; las escrituras
// exigen rol admin o bodeguero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	write := RequireRole(RoleAdmin, RoleBodeguero)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.MovementUC, deps.Logger)
	ledgerHandler := NewMovementHandler(deps.LedgerUC, deps.Logger)
	stockHandler := NewStockHandler(deps.StockReportUC, deps.Logger)

	// Inventories
	inv := api.Group("/inventories")
	inv.Post("/movements/in", write, inventoryHandler.MoveIn)
	inv.Post("/movements/out", write, inventoryHandler.MoveOut)
	inv.Get("/stock/:storageId/pdf", stockHandler.OverallStockPDF)
	inv.Get("/stock/:storageId", stockHandler.OverallStock)
	inv.Get("/storage/:storageId", inventoryHandler.ListByStorage)
	inv.Get("/item/:itemId", inventoryHandler.ListByItem)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", write, inventoryHandler.Create)
	inv.Get("/:id/movements", ledgerHandler.ListByInventory)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", write, inventoryHandler.Update)
	inv.Delete("/:id", write, inventoryHandler.Delete)

	// Ledger
	movements := api.Group("/inventory-movements")
	movements.Get("/", ledgerHandler.List)
	movements.Post("/", write, ledgerHandler.Create)
	movements.Get("/:id", ledgerHandler.GetByID)

	// Article themes
	themes := api.Group("/article-themes")
	themeHandler := NewArticleThemeHandler(deps.ArticleThemeUC, deps.Logger)
	themes.Get("/", themeHandler.List)
	themes.Post("/", write, themeHandler.Create)
	themes.Get("/:id", themeHandler.GetByID)
	themes.Put("/:id", write, themeHandler.Update)
	themes.Delete("/:id", write, themeHandler.Delete)
}
