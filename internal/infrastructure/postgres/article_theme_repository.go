package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

var _ repository.ArticleThemeRepository = (*ArticleThemeRepo)(nil)

const articleThemeColumns = `id, code, name, description,
	created_by, created_agent, created_at, updated_by, updated_agent, updated_at, deleted`

var articleThemeOrderColumns = map[string]string{
	repository.OrderByID:          "id",
	repository.OrderByCode:        "code",
	repository.OrderByName:        "name",
	repository.OrderByCreatedDate: "created_at",
	repository.OrderByUpdatedDate: "updated_at",
}

// ArticleThemeRepo implementación de ArticleThemeRepository sobre PostgreSQL.
type ArticleThemeRepo struct {
	q Querier
}

// NewArticleThemeRepository construye el adaptador de temas.
func NewArticleThemeRepository(q Querier) *ArticleThemeRepo {
	return &ArticleThemeRepo{q: q}
}

// Create persiste un tema. El código es único entre temas vivos.
func (r *ArticleThemeRepo) Create(ctx context.Context, t *entity.ArticleTheme) error {
	sql, args, err := psql.Insert("article_themes").
		Columns("id", "code", "name", "description",
			"created_by", "created_agent", "created_at", "updated_by", "updated_agent", "updated_at", "deleted").
		Values(t.ID, t.Code, t.Name, t.Description,
			t.CreatedBy, t.CreatedAgent, t.CreatedAt, t.UpdatedBy, t.UpdatedAgent, t.UpdatedAt, t.Deleted).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert article theme: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article theme: %w", err)
	}
	return nil
}

// Update actualiza un tema existente.
func (r *ArticleThemeRepo) Update(ctx context.Context, t *entity.ArticleTheme) error {
	sql, args, err := psql.Update("article_themes").
		SetMap(map[string]any{
			"code":          t.Code,
			"name":          t.Name,
			"description":   t.Description,
			"updated_by":    t.UpdatedBy,
			"updated_agent": t.UpdatedAgent,
			"updated_at":    t.UpdatedAt,
			"deleted":       t.Deleted,
		}).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update article theme: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update article theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update article theme %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// GetByID obtiene un tema por ID (incluye borrados).
func (r *ArticleThemeRepo) GetByID(ctx context.Context, id string) (*entity.ArticleTheme, error) {
	sql, args, err := psql.Select(articleThemeColumns).From("article_themes").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get article theme: %w", err)
	}
	t, err := scanArticleTheme(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article theme: %w", err)
	}
	return t, nil
}

// List temas vivos; keyword sobre código y nombre.
func (r *ArticleThemeRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.ArticleTheme, int, error) {
	where := squirrel.And{squirrel.Eq{"deleted": false}}
	if kw := keywordFilter(opts.Keyword, "code", "name"); kw != nil {
		where = append(where, kw)
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("article_themes").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count article themes: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count article themes: %w", err)
	}

	sql, args, err := pageSelect(psql.Select(articleThemeColumns).From("article_themes").Where(where),
		opts, articleThemeOrderColumns).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list article themes: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list article themes: %w", err)
	}
	defer rows.Close()

	var list []*entity.ArticleTheme
	for rows.Next() {
		t, err := scanArticleTheme(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article theme: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func scanArticleTheme(row pgx.Row) (*entity.ArticleTheme, error) {
	var t entity.ArticleTheme
	err := row.Scan(&t.ID, &t.Code, &t.Name, &t.Description,
		&t.CreatedBy, &t.CreatedAgent, &t.CreatedAt,
		&t.UpdatedBy, &t.UpdatedAgent, &t.UpdatedAt, &t.Deleted)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
