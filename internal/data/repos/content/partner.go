package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type PartnerRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Partner, error)
	Create(ctx context.Context, tx *gorm.DB, p *domain.Partner) (*domain.Partner, error)
	Update(ctx context.Context, tx *gorm.DB, p *domain.Partner) (*domain.Partner, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type partnerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPartnerRepo(db *gorm.DB, baseLog *logger.Logger) PartnerRepo {
	repoLog := baseLog.With("repo", "PartnerRepo")
	return &partnerRepo{db: db, log: repoLog}
}

func (r *partnerRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Partner, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Partner{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Partner
	if err := q.Order("display_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *partnerRepo) Create(ctx context.Context, tx *gorm.DB, p *domain.Partner) (*domain.Partner, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnerRepo) Update(ctx context.Context, tx *gorm.DB, p *domain.Partner) (*domain.Partner, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnerRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Partner{}, "id = ?", id).Error
}
