package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type OfficeHourRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.OfficeHour, error)
	Create(ctx context.Context, tx *gorm.DB, oh *domain.OfficeHour) (*domain.OfficeHour, error)
	Update(ctx context.Context, tx *gorm.DB, oh *domain.OfficeHour) (*domain.OfficeHour, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type officeHourRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOfficeHourRepo(db *gorm.DB, baseLog *logger.Logger) OfficeHourRepo {
	repoLog := baseLog.With("repo", "OfficeHourRepo")
	return &officeHourRepo{db: db, log: repoLog}
}

func (r *officeHourRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.OfficeHour, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.OfficeHour{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.OfficeHour
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *officeHourRepo) Create(ctx context.Context, tx *gorm.DB, oh *domain.OfficeHour) (*domain.OfficeHour, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(oh).Error; err != nil {
		return nil, err
	}
	return oh, nil
}

func (r *officeHourRepo) Update(ctx context.Context, tx *gorm.DB, oh *domain.OfficeHour) (*domain.OfficeHour, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(oh).Error; err != nil {
		return nil, err
	}
	return oh, nil
}

func (r *officeHourRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.OfficeHour{}, "id = ?", id).Error
}
