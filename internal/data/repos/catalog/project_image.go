package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProjectImageRepo interface {
	// List scopes by project when projectID is non-nil.
	List(ctx context.Context, tx *gorm.DB, projectID *uuid.UUID) ([]*domain.ProjectImage, error)
	Create(ctx context.Context, tx *gorm.DB, img *domain.ProjectImage) (*domain.ProjectImage, error)
	Update(ctx context.Context, tx *gorm.DB, img *domain.ProjectImage) (*domain.ProjectImage, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type projectImageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectImageRepo(db *gorm.DB, baseLog *logger.Logger) ProjectImageRepo {
	repoLog := baseLog.With("repo", "ProjectImageRepo")
	return &projectImageRepo{db: db, log: repoLog}
}

func (r *projectImageRepo) List(ctx context.Context, tx *gorm.DB, projectID *uuid.UUID) ([]*domain.ProjectImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.ProjectImage{})
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var results []*domain.ProjectImage
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectImageRepo) Create(ctx context.Context, tx *gorm.DB, img *domain.ProjectImage) (*domain.ProjectImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(img).Error; err != nil {
		return nil, err
	}
	return img, nil
}

func (r *projectImageRepo) Update(ctx context.Context, tx *gorm.DB, img *domain.ProjectImage) (*domain.ProjectImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(img).Error; err != nil {
		return nil, err
	}
	return img, nil
}

func (r *projectImageRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.ProjectImage{}, "id = ?", id).Error
}
