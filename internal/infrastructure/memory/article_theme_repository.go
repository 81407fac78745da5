package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// ArticleThemeRepo implementa repository.ArticleThemeRepository en memoria.
type ArticleThemeRepo struct{ s *Store }

var _ repository.ArticleThemeRepository = (*ArticleThemeRepo)(nil)

// NewArticleThemeRepo crea el repositorio de temas.
func NewArticleThemeRepo(s *Store) *ArticleThemeRepo { return &ArticleThemeRepo{s: s} }

func (r *ArticleThemeRepo) Create(ctx context.Context, t *entity.ArticleTheme) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range r.s.themeOrder {
		if cur := r.s.themes[id]; !cur.Deleted && cur.Code == t.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.themes[t.ID] = cloneTheme(t)
	r.s.themeOrder = append(r.s.themeOrder, t.ID)
	return nil
}

func (r *ArticleThemeRepo) Update(ctx context.Context, t *entity.ArticleTheme) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.themes[t.ID]; !ok {
		return fmt.Errorf("actualizar tema %s: %w", t.ID, domain.ErrNotFound)
	}
	if !t.Deleted {
		for _, id := range r.s.themeOrder {
			if cur := r.s.themes[id]; id != t.ID && !cur.Deleted && cur.Code == t.Code {
				return domain.ErrDuplicate
			}
		}
	}
	r.s.themes[t.ID] = cloneTheme(t)
	return nil
}

func (r *ArticleThemeRepo) GetByID(ctx context.Context, id string) (*entity.ArticleTheme, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneTheme(r.s.themes[id]), nil
}

func (r *ArticleThemeRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.ArticleTheme, int, error) {
	match := keywordMatcher(opts.Keyword)
	r.s.mu.RLock()
	var all []*entity.ArticleTheme
	for _, id := range r.s.themeOrder {
		if t := r.s.themes[id]; !t.Deleted && match(t.Code, t.Name) {
			all = append(all, cloneTheme(t))
		}
	}
	r.s.mu.RUnlock()

	less := func(a, b *entity.ArticleTheme) int { return strings.Compare(a.ID, b.ID) }
	switch opts.OrderBy {
	case repository.OrderByCode:
		less = func(a, b *entity.ArticleTheme) int { return strings.Compare(a.Code, b.Code) }
	case repository.OrderByName:
		less = func(a, b *entity.ArticleTheme) int { return strings.Compare(a.Name, b.Name) }
	case repository.OrderByCreatedDate:
		less = func(a, b *entity.ArticleTheme) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case repository.OrderByUpdatedDate:
		less = func(a, b *entity.ArticleTheme) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	}
	total := len(all)
	return page(all, less, opts.Asc, opts.Offset, opts.Limit), total, nil
}
