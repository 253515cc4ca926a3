package pages

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type PageSectionRepo interface {
	// List scopes by page when pageID is non-nil.
	List(ctx context.Context, tx *gorm.DB, pageID *uuid.UUID, activeOnly bool) ([]*domain.PageSection, error)
	Create(ctx context.Context, tx *gorm.DB, s *domain.PageSection) (*domain.PageSection, error)
	Update(ctx context.Context, tx *gorm.DB, s *domain.PageSection) (*domain.PageSection, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type pageSectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPageSectionRepo(db *gorm.DB, baseLog *logger.Logger) PageSectionRepo {
	repoLog := baseLog.With("repo", "PageSectionRepo")
	return &pageSectionRepo{db: db, log: repoLog}
}

func (r *pageSectionRepo) List(ctx context.Context, tx *gorm.DB, pageID *uuid.UUID, activeOnly bool) ([]*domain.PageSection, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.PageSection{})
	if pageID != nil {
		q = q.Where("page_id = ?", *pageID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.PageSection
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *pageSectionRepo) Create(ctx context.Context, tx *gorm.DB, s *domain.PageSection) (*domain.PageSection, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pageSectionRepo) Update(ctx context.Context, tx *gorm.DB, s *domain.PageSection) (*domain.PageSection, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pageSectionRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.PageSection{}, "id = ?", id).Error
}
