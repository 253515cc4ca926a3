package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type QuickStatRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.QuickStat, error)
	Create(ctx context.Context, tx *gorm.DB, stat *domain.QuickStat) (*domain.QuickStat, error)
	Update(ctx context.Context, tx *gorm.DB, stat *domain.QuickStat) (*domain.QuickStat, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type quickStatRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuickStatRepo(db *gorm.DB, baseLog *logger.Logger) QuickStatRepo {
	repoLog := baseLog.With("repo", "QuickStatRepo")
	return &quickStatRepo{db: db, log: repoLog}
}

func (r *quickStatRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.QuickStat, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.QuickStat{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.QuickStat
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quickStatRepo) Create(ctx context.Context, tx *gorm.DB, stat *domain.QuickStat) (*domain.QuickStat, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(stat).Error; err != nil {
		return nil, err
	}
	return stat, nil
}

func (r *quickStatRepo) Update(ctx context.Context, tx *gorm.DB, stat *domain.QuickStat) (*domain.QuickStat, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(stat).Error; err != nil {
		return nil, err
	}
	return stat, nil
}

func (r *quickStatRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.QuickStat{}, "id = ?", id).Error
}
