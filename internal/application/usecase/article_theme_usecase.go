package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
	"github.com/jhoicas/erp-inventario/internal/domain/repository"
)

// ArticleThemeUseCase casos de uso CRUD para temas de artículo.
type ArticleThemeUseCase struct {
	repo repository.ArticleThemeRepository
	now  func() time.Time
}

// NewArticleThemeUseCase construye el caso de uso.
func NewArticleThemeUseCase(repo repository.ArticleThemeRepository) *ArticleThemeUseCase {
	return &ArticleThemeUseCase{repo: repo, now: time.Now}
}

// Create crea un tema. code y name son obligatorios.
func (uc *ArticleThemeUseCase) Create(ctx context.Context, in dto.ArticleThemeRequest) (*dto.ArticleThemeResponse, error) {
	if err := validateTheme(in); err != nil {
		return nil, err
	}
	theme := &entity.ArticleTheme{
		ID:          uuid.New().String(),
		Code:        strings.TrimSpace(in.Code),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	theme.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
	if err := uc.repo.Create(ctx, theme); err != nil {
		return nil, err
	}
	return toArticleThemeResponse(theme), nil
}

// GetByID obtiene un tema por ID (incluye borrados).
func (uc *ArticleThemeUseCase) GetByID(ctx context.Context, id string) (*dto.ArticleThemeResponse, error) {
	theme, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toArticleThemeResponse(theme), nil
}

// Update actualiza un tema vivo.
func (uc *ArticleThemeUseCase) Update(ctx context.Context, id string, in dto.ArticleThemeRequest) (*dto.ArticleThemeResponse, error) {
	if err := validateTheme(in); err != nil {
		return nil, err
	}
	theme, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil || theme.Deleted {
		return nil, nil
	}
	theme.Code = strings.TrimSpace(in.Code)
	theme.Name = strings.TrimSpace(in.Name)
	theme.Description = in.Description
	theme.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
	if err := uc.repo.Update(ctx, theme); err != nil {
		return nil, err
	}
	return toArticleThemeResponse(theme), nil
}

// Delete borrado lógico.
func (uc *ArticleThemeUseCase) Delete(ctx context.Context, id string) error {
	theme, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if theme == nil || theme.Deleted {
		return domain.ErrNotFound
	}
	theme.Deleted = true
	theme.Stamp.Touch(auth.Actor(ctx), entity.AgentManager, uc.now())
	return uc.repo.Update(ctx, theme)
}

// Read lista temas vivos; keyword busca en código y nombre.
func (uc *ArticleThemeUseCase) Read(ctx context.Context, page dto.PageRequest) (*dto.ArticleThemeListResponse, error) {
	list, total, err := uc.repo.List(ctx, page.ListOptions())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleThemeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toArticleThemeResponse(t))
	}
	return &dto.ArticleThemeListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page, total),
	}, nil
}

func validateTheme(in dto.ArticleThemeRequest) error {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(in.Code) == "" {
		errs.Add("code", "code es requerido")
	}
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "name es requerido")
	}
	return errs.Err()
}

func toArticleThemeResponse(t *entity.ArticleTheme) *dto.ArticleThemeResponse {
	if t == nil {
		return nil
	}
	return &dto.ArticleThemeResponse{
		ID:          t.ID,
		Code:        t.Code,
		Name:        t.Name,
		Description: t.Description,
		Deleted:     t.Deleted,
		CreatedAt:   t.CreatedAt,
		UpdatedBy:   t.UpdatedBy,
		UpdatedAt:   t.UpdatedAt,
	}
}
