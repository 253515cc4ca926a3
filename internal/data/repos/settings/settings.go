package settings

import (
	"context"
	"errors"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type SiteSettingsRepo interface {
	// First returns the effective settings row, or (nil, nil) when none exists.
	First(ctx context.Context, tx *gorm.DB) (*domain.SiteSettings, error)
	Create(ctx context.Context, tx *gorm.DB, s *domain.SiteSettings) (*domain.SiteSettings, error)
	Update(ctx context.Context, tx *gorm.DB, s *domain.SiteSettings) (*domain.SiteSettings, error)
}

type siteSettingsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSiteSettingsRepo(db *gorm.DB, baseLog *logger.Logger) SiteSettingsRepo {
	repoLog := baseLog.With("repo", "SiteSettingsRepo")
	return &siteSettingsRepo{db: db, log: repoLog}
}

func (r *siteSettingsRepo) First(ctx context.Context, tx *gorm.DB) (*domain.SiteSettings, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.SiteSettings
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

func (r *siteSettingsRepo) Create(ctx context.Context, tx *gorm.DB, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *siteSettingsRepo) Update(ctx context.Context, tx *gorm.DB, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
