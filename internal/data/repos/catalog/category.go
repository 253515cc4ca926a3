package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ServiceCategoryRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.ServiceCategory, error)
	Create(ctx context.Context, tx *gorm.DB, c *domain.ServiceCategory) (*domain.ServiceCategory, error)
	Update(ctx context.Context, tx *gorm.DB, c *domain.ServiceCategory) (*domain.ServiceCategory, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type serviceCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceCategoryRepo(db *gorm.DB, baseLog *logger.Logger) ServiceCategoryRepo {
	repoLog := baseLog.With("repo", "ServiceCategoryRepo")
	return &serviceCategoryRepo{db: db, log: repoLog}
}

func (r *serviceCategoryRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.ServiceCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.ServiceCategory{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.ServiceCategory
	if err := q.Order("display_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceCategoryRepo) Create(ctx context.Context, tx *gorm.DB, c *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *serviceCategoryRepo) Update(ctx context.Context, tx *gorm.DB, c *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *serviceCategoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.ServiceCategory{}, "id = ?", id).Error
}

type ProjectCategoryRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.ProjectCategory, error)
	Create(ctx context.Context, tx *gorm.DB, c *domain.ProjectCategory) (*domain.ProjectCategory, error)
	Update(ctx context.Context, tx *gorm.DB, c *domain.ProjectCategory) (*domain.ProjectCategory, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type projectCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectCategoryRepo(db *gorm.DB, baseLog *logger.Logger) ProjectCategoryRepo {
	repoLog := baseLog.With("repo", "ProjectCategoryRepo")
	return &projectCategoryRepo{db: db, log: repoLog}
}

func (r *projectCategoryRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.ProjectCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.ProjectCategory{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.ProjectCategory
	if err := q.Order("display_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectCategoryRepo) Create(ctx context.Context, tx *gorm.DB, c *domain.ProjectCategory) (*domain.ProjectCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *projectCategoryRepo) Update(ctx context.Context, tx *gorm.DB, c *domain.ProjectCategory) (*domain.ProjectCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *projectCategoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.ProjectCategory{}, "id = ?", id).Error
}
