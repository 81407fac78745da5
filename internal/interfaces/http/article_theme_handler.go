package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/application/usecase"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// ArticleThemeHandler CRUD de temas de artículo (protegido).
type ArticleThemeHandler struct {
	uc  *usecase.ArticleThemeUseCase
	log *logger.Logger
}

// NewArticleThemeHandler construye el handler.
func NewArticleThemeHandler(uc *usecase.ArticleThemeUseCase, log *logger.Logger) *ArticleThemeHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ArticleThemeHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear tema de artículo
// @Tags         article-themes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ArticleThemeRequest  true  "Código, nombre y descripción"
// @Success      201   {object}  dto.ArticleThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/article-themes [post]
func (h *ArticleThemeHandler) Create(c *fiber.Ctx) error {
	var in dto.ArticleThemeRequest
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
// @Summary      Obtener tema por ID
// @Tags         article-themes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tema"
// @Success      200  {object}  dto.ArticleThemeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/article-themes/{id} [get]
func (h *ArticleThemeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "tema no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tema
// @Tags         article-themes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del tema"
// @Param        body  body  dto.ArticleThemeRequest  true  "Datos del tema"
// @Success      200   {object}  dto.ArticleThemeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/article-themes/{id} [put]
func (h *ArticleThemeHandler) Update(c *fiber.Ctx) error {
	var in dto.ArticleThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "tema no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de tema
// @Tags         article-themes
// @Security     Bearer
// @Param        id   path  string  true  "ID del tema"
// @Success      204
// @Router       /api/article-themes/{id} [delete]
func (h *ArticleThemeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar temas
// @Tags         article-themes
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  false  "Código o nombre"
// @Success      200      {object}  dto.ArticleThemeListResponse
// @Router       /api/article-themes [get]
func (h *ArticleThemeHandler) List(c *fiber.Ctx) error {
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
