package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type SocialLinkRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.SocialLink, error)
	Create(ctx context.Context, tx *gorm.DB, link *domain.SocialLink) (*domain.SocialLink, error)
	Update(ctx context.Context, tx *gorm.DB, link *domain.SocialLink) (*domain.SocialLink, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type socialLinkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSocialLinkRepo(db *gorm.DB, baseLog *logger.Logger) SocialLinkRepo {
	repoLog := baseLog.With("repo", "SocialLinkRepo")
	return &socialLinkRepo{db: db, log: repoLog}
}

func (r *socialLinkRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.SocialLink, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.SocialLink{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.SocialLink
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *socialLinkRepo) Create(ctx context.Context, tx *gorm.DB, link *domain.SocialLink) (*domain.SocialLink, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *socialLinkRepo) Update(ctx context.Context, tx *gorm.DB, link *domain.SocialLink) (*domain.SocialLink, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *socialLinkRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.SocialLink{}, "id = ?", id).Error
}
