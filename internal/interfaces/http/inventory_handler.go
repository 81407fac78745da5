package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/application/inventory"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// InventoryHandler expone posiciones de inventario y movimientos de stock (protegido).
type InventoryHandler struct {
	positions *inventory.InventoryUseCase
	movements *inventory.MovementUseCase
	log       *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(positions *inventory.InventoryUseCase, movements *inventory.MovementUseCase, log *logger.Logger) *InventoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryHandler{positions: positions, movements: movements, log: log}
}

// Create godoc
// @Summary      Crear posición de inventario
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryRequest  true  "Bodega, artículo o producto y cantidad"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.positions.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener posición por ID
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la posición"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.positions.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "posición no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar posición
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la posición"
// @Param        body  body  dto.InventoryRequest  true  "Datos de la posición"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.InventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.positions.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "posición no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de posición
// @Tags         inventories
// @Security     Bearer
// @Param        id   path  string  true  "ID de la posición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.positions.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar posiciones
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página"       default(1)
// @Param        size     query  int     false  "Tamaño"       default(20)
// @Param        order    query  string  false  "Campo de orden"
// @Param        asc      query  bool    false  "Ascendente"
// @Param        keyword  query  string  false  "Palabra clave (código o nombre)"
// @Success      200      {object}  dto.InventoryListResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.positions.Read(c.UserContext(), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListByStorage godoc
// @Summary      Listar posiciones de una bodega
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        storageId  path   string  true   "ID de la bodega"
// @Param        keyword    query  string  false  "Palabra clave"
// @Success      200        {object}  dto.InventoryListResponse
// @Router       /api/inventories/storage/{storageId} [get]
func (h *InventoryHandler) ListByStorage(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.positions.ReadByStorage(c.UserContext(), c.Params("storageId"), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListByItem godoc
// @Summary      Posiciones vivas de un artículo en todas las bodegas
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200     {array}  dto.InventoryResponse
// @Router       /api/inventories/item/{itemId} [get]
func (h *InventoryHandler) ListByItem(c *fiber.Ctx) error {
	out, err := h.positions.GetByItem(c.UserContext(), c.Params("itemId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MoveIn godoc
// @Summary      Registrar entrada de stock
// @Description  Crea la posición si no existe, suma |quantity| y registra el movimiento en el libro.
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Bodega, artículo o producto, referencia y cantidad"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventories/movements/in [post]
func (h *InventoryHandler) MoveIn(c *fiber.Ctx) error {
	return h.move(c, entity.MovementTypeIN)
}

// MoveOut godoc
// @Summary      Registrar salida de stock
// @Description  Resta |quantity|; en bodegas sin sobreventa la posición no baja de cero.
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Bodega, artículo o producto, referencia y cantidad"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventories/movements/out [post]
func (h *InventoryHandler) MoveOut(c *fiber.Ctx) error {
	return h.move(c, entity.MovementTypeOUT)
}

func (h *InventoryHandler) move(c *fiber.Ctx, movementType string) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.movements.MoveFromRequest(c.UserContext(), movementType, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"movementId": id})
}
