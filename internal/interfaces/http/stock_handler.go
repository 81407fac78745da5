package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// StockHandler reporte combinado de stock por bodega (protegido).
type StockHandler struct {
	uc  *inventory.StockReportUseCase
	log *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockReportUseCase, log *logger.Logger) *StockHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &StockHandler{uc: uc, log: log}
}

// OverallStock godoc
// @Summary      Stock actual y antigüedad de la última entrada
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        storageId  path   string  true   "ID de la bodega"
// @Param        keyword    query  string  false  "Código, nombre u orden de realización"
// @Success      200        {array}  dto.OverallStockResponse
// @Router       /api/inventories/stock/{storageId} [get]
func (h *StockHandler) OverallStock(c *fiber.Ctx) error {
	out, err := h.uc.GetOverallStock(c.UserContext(), c.Params("storageId"), inventory.StockFilter{Keyword: c.Query("keyword")})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// OverallStockPDF godoc
// @Summary      Exportar reporte de stock en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        storageId  path   string  true   "ID de la bodega"
// @Param        keyword    query  string  false  "Código, nombre u orden de realización"
// @Success      200        {file}  binary
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/inventories/stock/{storageId}/pdf [get]
func (h *StockHandler) OverallStockPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ExportOverallStockPDF(c.UserContext(), c.Params("storageId"), inventory.StockFilter{Keyword: c.Query("keyword")})
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
