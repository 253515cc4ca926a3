package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type LeadershipRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Leadership, error)
	Create(ctx context.Context, tx *gorm.DB, l *domain.Leadership) (*domain.Leadership, error)
	Update(ctx context.Context, tx *gorm.DB, l *domain.Leadership) (*domain.Leadership, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type leadershipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLeadershipRepo(db *gorm.DB, baseLog *logger.Logger) LeadershipRepo {
	repoLog := baseLog.With("repo", "LeadershipRepo")
	return &leadershipRepo{db: db, log: repoLog}
}

func (r *leadershipRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Leadership, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Leadership{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Leadership
	if err := q.Order("display_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *leadershipRepo) Create(ctx context.Context, tx *gorm.DB, l *domain.Leadership) (*domain.Leadership, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leadershipRepo) Update(ctx context.Context, tx *gorm.DB, l *domain.Leadership) (*domain.Leadership, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leadershipRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Leadership{}, "id = ?", id).Error
}
