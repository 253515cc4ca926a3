package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type TimelineEventRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.TimelineEvent, error)
	Create(ctx context.Context, tx *gorm.DB, ev *domain.TimelineEvent) (*domain.TimelineEvent, error)
	Update(ctx context.Context, tx *gorm.DB, ev *domain.TimelineEvent) (*domain.TimelineEvent, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type timelineEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTimelineEventRepo(db *gorm.DB, baseLog *logger.Logger) TimelineEventRepo {
	repoLog := baseLog.With("repo", "TimelineEventRepo")
	return &timelineEventRepo{db: db, log: repoLog}
}

func (r *timelineEventRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.TimelineEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.TimelineEvent{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.TimelineEvent
	if err := q.Order("display_order, year").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *timelineEventRepo) Create(ctx context.Context, tx *gorm.DB, ev *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

func (r *timelineEventRepo) Update(ctx context.Context, tx *gorm.DB, ev *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

func (r *timelineEventRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.TimelineEvent{}, "id = ?", id).Error
}
