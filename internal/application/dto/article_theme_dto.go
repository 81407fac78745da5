package dto

import "time"

// ArticleThemeRequest entrada para crear/actualizar un tema de artículo.
type ArticleThemeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ArticleThemeResponse salida de un tema de artículo.
type ArticleThemeResponse struct {
	ID          string    `json:"_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Deleted     bool      `json:"_deleted"`
	CreatedAt   time.Time `json:"_createdDate"`
	UpdatedBy   string    `json:"_updatedBy"`
	UpdatedAt   time.Time `json:"_updatedDate"`
}

// ArticleThemeListResponse lista paginada de temas.
type ArticleThemeListResponse struct {
	Items []ArticleThemeResponse `json:"data"`
	Page  PageResponse           `json:"page"`
}
