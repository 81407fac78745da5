package repository

import (
	"context"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// ArticleThemeRepository define el puerto de persistencia para ArticleTheme (DIP).
type ArticleThemeRepository interface {
	Create(ctx context.Context, theme *entity.ArticleTheme) error
	Update(ctx context.Context, theme *entity.ArticleTheme) error
	GetByID(ctx context.Context, id string) (*entity.ArticleTheme, error)
	// List devuelve temas vivos; Keyword busca en código y nombre.
	List(ctx context.Context, opts ListOptions) ([]*entity.ArticleTheme, int, error)
}
