package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// MovementHandler expone el libro de movimientos (protegido).
type MovementHandler struct {
	uc  *inventory.InventoryMovementUseCase
	log *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.InventoryMovementUseCase, log *logger.Logger) *MovementHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar entrada directa en el libro
// @Description  No modifica la posición; exige after = before + quantity.
// @Tags         inventory-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryMovementRequest  true  "Entrada del libro"
// @Success      201   {object}  dto.InventoryMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventory-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.InventoryMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         inventory-movements
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  false  "Referencia u observación"
// @Success      200      {object}  dto.InventoryMovementListResponse
// @Router       /api/inventory-movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Read(c.UserContext(), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListByInventory godoc
// @Summary      Historial de una posición (más reciente primero)
// @Tags         inventory-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la posición"
// @Success      200  {object}  dto.InventoryMovementListResponse
// @Router       /api/inventories/{id}/movements [get]
func (h *MovementHandler) ListByInventory(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ListByInventory(c.UserContext(), c.Params("id"), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
