package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type FooterLinkRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool, group string) ([]*domain.FooterLink, error)
	Create(ctx context.Context, tx *gorm.DB, link *domain.FooterLink) (*domain.FooterLink, error)
	Update(ctx context.Context, tx *gorm.DB, link *domain.FooterLink) (*domain.FooterLink, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type footerLinkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFooterLinkRepo(db *gorm.DB, baseLog *logger.Logger) FooterLinkRepo {
	repoLog := baseLog.With("repo", "FooterLinkRepo")
	return &footerLinkRepo{db: db, log: repoLog}
}

func (r *footerLinkRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool, group string) ([]*domain.FooterLink, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.FooterLink{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if group != "" {
		q = q.Where("link_group = ?", group)
	}
	var results []*domain.FooterLink
	if err := q.Order("link_group, display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *footerLinkRepo) Create(ctx context.Context, tx *gorm.DB, link *domain.FooterLink) (*domain.FooterLink, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *footerLinkRepo) Update(ctx context.Context, tx *gorm.DB, link *domain.FooterLink) (*domain.FooterLink, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *footerLinkRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.FooterLink{}, "id = ?", id).Error
}
