package pages

import (
	"context"
	"errors"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type SEORepo interface {
	// First returns the effective SEO row, or (nil, nil) when none exists.
	First(ctx context.Context, tx *gorm.DB) (*domain.SEO, error)
	Create(ctx context.Context, tx *gorm.DB, s *domain.SEO) (*domain.SEO, error)
	Update(ctx context.Context, tx *gorm.DB, s *domain.SEO) (*domain.SEO, error)
}

type seoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSEORepo(db *gorm.DB, baseLog *logger.Logger) SEORepo {
	repoLog := baseLog.With("repo", "SEORepo")
	return &seoRepo{db: db, log: repoLog}
}

func (r *seoRepo) First(ctx context.Context, tx *gorm.DB) (*domain.SEO, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.SEO
	err := transaction.WithContext(ctx).
		Order("created_at").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *seoRepo) Create(ctx context.Context, tx *gorm.DB, s *domain.SEO) (*domain.SEO, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *seoRepo) Update(ctx context.Context, tx *gorm.DB, s *domain.SEO) (*domain.SEO, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
