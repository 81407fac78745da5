package dto

import (
	"math"

	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// Valores por defecto de paginación.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage evita que (Page-1)*Size desborde int.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest paginación, orden y palabra clave para listados.
type PageRequest struct {
	Page    int    `query:"page"`
	Size    int    `query:"size"`
	Order   string `query:"order"`
	Asc     *bool  `query:"asc"`
	Keyword string `query:"keyword"`
}

// DefaultPage aplica valores por defecto: page 1 (máx. MaxPage), size 20 (máx. 100), order _id ascendente.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Order == "" {
		p.Order = repository.OrderByID
	}
	if p.Asc == nil {
		asc := true
		p.Asc = &asc
	}
}

// ListOptions traduce la página al formato del repositorio.
func (p PageRequest) ListOptions() repository.ListOptions {
	p.DefaultPage()
	return repository.ListOptions{
		Offset:  (p.Page - 1) * p.Size,
		Limit:   p.Size,
		OrderBy: p.Order,
		Asc:     *p.Asc,
		Keyword: p.Keyword,
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// NewPageResponse construye los metadatos a partir de la página ya normalizada.
func NewPageResponse(p PageRequest, total int) PageResponse {
	p.DefaultPage()
	return PageResponse{Page: p.Page, Size: p.Size, Total: total}
}

// ErrorResponse cuerpo de error HTTP. Fields solo se informa en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
