package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type WhyChooseRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.WhyChooseItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error)
	Update(ctx context.Context, tx *gorm.DB, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type whyChooseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWhyChooseRepo(db *gorm.DB, baseLog *logger.Logger) WhyChooseRepo {
	repoLog := baseLog.With("repo", "WhyChooseRepo")
	return &whyChooseRepo{db: db, log: repoLog}
}

func (r *whyChooseRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.WhyChooseItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.WhyChooseItem{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.WhyChooseItem
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *whyChooseRepo) Create(ctx context.Context, tx *gorm.DB, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *whyChooseRepo) Update(ctx context.Context, tx *gorm.DB, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *whyChooseRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.WhyChooseItem{}, "id = ?", id).Error
}
