package pages

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type PageRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Page, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Page, error)
	Create(ctx context.Context, tx *gorm.DB, p *domain.Page) (*domain.Page, error)
	Update(ctx context.Context, tx *gorm.DB, p *domain.Page) (*domain.Page, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type pageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPageRepo(db *gorm.DB, baseLog *logger.Logger) PageRepo {
	repoLog := baseLog.With("repo", "PageRepo")
	return &pageRepo{db: db, log: repoLog}
}

func (r *pageRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Page, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Page{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Page
	if err := q.Order("title").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *pageRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Page, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Page
	err := transaction.WithContext(ctx).Where("slug = ?", slug).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *pageRepo) Create(ctx context.Context, tx *gorm.DB, p *domain.Page) (*domain.Page, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pageRepo) Update(ctx context.Context, tx *gorm.DB, p *domain.Page) (*domain.Page, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pageRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Page{}, "id = ?", id).Error
}
