package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type CoreValueRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.CoreValue, error)
	Create(ctx context.Context, tx *gorm.DB, v *domain.CoreValue) (*domain.CoreValue, error)
	Update(ctx context.Context, tx *gorm.DB, v *domain.CoreValue) (*domain.CoreValue, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type coreValueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCoreValueRepo(db *gorm.DB, baseLog *logger.Logger) CoreValueRepo {
	repoLog := baseLog.With("repo", "CoreValueRepo")
	return &coreValueRepo{db: db, log: repoLog}
}

func (r *coreValueRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.CoreValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.CoreValue{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.CoreValue
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *coreValueRepo) Create(ctx context.Context, tx *gorm.DB, v *domain.CoreValue) (*domain.CoreValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

func (r *coreValueRepo) Update(ctx context.Context, tx *gorm.DB, v *domain.CoreValue) (*domain.CoreValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

func (r *coreValueRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.CoreValue{}, "id = ?", id).Error
}
