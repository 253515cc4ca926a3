package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly, featuredOnly bool) ([]*domain.Project, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Project, error)
	Create(ctx context.Context, tx *gorm.DB, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, tx *gorm.DB, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{db: db, log: repoLog}
}

func (r *projectRepo) List(ctx context.Context, tx *gorm.DB, activeOnly, featuredOnly bool) ([]*domain.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Project{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	var results []*domain.Project
	if err := q.Order("display_order, title").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Project
	err := transaction.WithContext(ctx).Where("slug = ?", slug).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *projectRepo) Create(ctx context.Context, tx *gorm.DB, p *domain.Project) (*domain.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepo) Update(ctx context.Context, tx *gorm.DB, p *domain.Project) (*domain.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error
}
