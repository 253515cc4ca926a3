package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type AwardRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Award, error)
	Create(ctx context.Context, tx *gorm.DB, a *domain.Award) (*domain.Award, error)
	Update(ctx context.Context, tx *gorm.DB, a *domain.Award) (*domain.Award, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type awardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAwardRepo(db *gorm.DB, baseLog *logger.Logger) AwardRepo {
	repoLog := baseLog.With("repo", "AwardRepo")
	return &awardRepo{db: db, log: repoLog}
}

func (r *awardRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Award, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Award{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Award
	if err := q.Order("display_order, year, title").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *awardRepo) Create(ctx context.Context, tx *gorm.DB, a *domain.Award) (*domain.Award, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *awardRepo) Update(ctx context.Context, tx *gorm.DB, a *domain.Award) (*domain.Award, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *awardRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Award{}, "id = ?", id).Error
}
