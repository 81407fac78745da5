package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/application/usecase"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/erp-inventario/internal/interfaces/http"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	s := memory.NewStore()
	s.PutStorage(&entity.Storage{ID: "st-01", Code: "GDG.01", Name: "Bodega Principal", AllowNegativeStock: true})
	s.PutStorage(&entity.Storage{ID: "st-05", Code: "GDG.05", Name: "Tienda Centro"})
	s.PutItem(&entity.Item{ID: "it-a", Code: "A", Name: "Camisa Lino", ArticleRealizationOrder: "RO-100", DomesticSale: decimal.NewFromInt(89000)})

	invRepo := memory.NewInventoryRepo(s)
	movRepo := memory.NewInventoryMovementRepo(s)
	storages := memory.NewStorageLookup(s)
	items := memory.NewItemLookup(s)
	products := memory.NewProductLookup(s)
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC:    inventory.NewInventoryUseCase(invRepo, storages, items, products),
		MovementUC:     inventory.NewMovementUseCase(invRepo, memory.NewTxRunner(s), storages, items, products, log, inventory.MovementOptions{}),
		LedgerUC:       inventory.NewInventoryMovementUseCase(movRepo, invRepo),
		StockReportUC:  inventory.NewStockReportUseCase(invRepo, movRepo, storages, pdf.NewStockReportGenerator(), log),
		ArticleThemeUC: usecase.NewArticleThemeUseCase(memory.NewArticleThemeRepo(s)),
		JWTSecret:      testJWTSecret,
		Logger:         log,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos y consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EntradaYConsultaDeStock(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/api/inventories/movements/in", "bodeguero",
		dto.MovementRequest{StorageID: "st-01", Reference: "OC-001", ItemID: "it-a", Quantity: 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]string](t, resp)
	assert.NotEmpty(t, created["movementId"])

	resp = call(t, app, http.MethodGet, "/api/inventories/storage/st-01", "consulta", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.InventoryListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, int64(10), list.Items[0].Quantity)
	assert.Equal(t, "ana.rios", list.Items[0].CreatedBy, "el actor sale del token")

	resp = call(t, app, http.MethodGet, "/api/inventories/"+list.Items[0].ID+"/movements", "consulta", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ledger := decode[dto.InventoryMovementListResponse](t, resp)
	require.Len(t, ledger.Items, 1)
	assert.Equal(t, created["movementId"], ledger.Items[0].ID)
	assert.Equal(t, int64(0), ledger.Items[0].Before)
	assert.Equal(t, int64(10), ledger.Items[0].After)

	resp = call(t, app, http.MethodGet, "/api/inventories/stock/st-01?keyword=camisa", "consulta", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stock := decode[[]dto.OverallStockResponse](t, resp)
	require.Len(t, stock, 1)
	assert.Equal(t, "A", stock[0].ItemCode)
	assert.Equal(t, int64(10), stock[0].Quantity)
	require.NotNil(t, stock[0].DaysSinceLastInbound)
	assert.Equal(t, int64(0), *stock[0].DaysSinceLastInbound)
}

func TestAPI_SalidaEnBodegaSinSobreventaNoBajaDeCero(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/api/inventories/movements/out", "admin",
		dto.MovementRequest{StorageID: "st-05", Reference: "VT-9", ItemID: "it-a", Quantity: 4})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/inventories/item/it-a", "consulta", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	positions := decode[[]dto.InventoryResponse](t, resp)
	require.Len(t, positions, 1)
	assert.Equal(t, int64(0), positions[0].Quantity)
}

func TestAPI_MovimientoSinArticuloNiProducto(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/api/inventories/movements/in", "admin",
		dto.MovementRequest{StorageID: "st-01", Quantity: 1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "itemId")
}

func TestAPI_RolConsultaNoPuedeEscribir(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/api/inventories/movements/in", "consulta",
		dto.MovementRequest{StorageID: "st-01", ItemID: "it-a", Quantity: 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_PosicionInexistente(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodGet, "/api/inventories/no-existe", "consulta", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/inventories/no-existe", "admin", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	qty := int64(3)
	resp = call(t, app, http.MethodPut, "/api/inventories/no-existe", "admin",
		dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: &qty})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_CrearPosicionDuplicada(t *testing.T) {
	app := buildAPI(t)
	qty := int64(5)
	in := dto.InventoryRequest{StorageID: "st-01", ItemID: "it-a", Quantity: &qty}

	resp := call(t, app, http.MethodPost, "/api/inventories", "admin", in)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/inventories", "admin", in)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", body.Code)
}

func TestAPI_ExportarStockPDF(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodPost, "/api/inventories/movements/in", "admin",
		dto.MovementRequest{StorageID: "st-01", Reference: "OC-002", ItemID: "it-a", Quantity: 2})
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/inventories/stock/st-01/pdf", "consulta", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), `attachment; filename="stock-GDG.01-`))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestAPI_ExportarPDFBodegaInexistente(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/inventories/stock/st-99/pdf", "consulta", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Temas de artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_TemasDeArticulo(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/api/article-themes", "admin", dto.ArticleThemeRequest{})
	invalid := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, invalid.Fields, "code")
	assert.Contains(t, invalid.Fields, "name")

	resp = call(t, app, http.MethodPost, "/api/article-themes", "admin", dto.ArticleThemeRequest{Code: "VER24", Name: "Verano 2024"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	theme := decode[dto.ArticleThemeResponse](t, resp)

	resp = call(t, app, http.MethodPost, "/api/article-themes", "admin", dto.ArticleThemeRequest{Code: "VER24", Name: "Otro"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/article-themes?keyword=verano", "consulta", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ArticleThemeListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Page.Total)

	resp = call(t, app, http.MethodDelete, "/api/article-themes/"+theme.ID, "admin", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/article-themes/"+theme.ID, "consulta", nil)
	got := decode[dto.ArticleThemeResponse](t, resp)
	assert.True(t, got.Deleted, "el borrado es lógico")
}
