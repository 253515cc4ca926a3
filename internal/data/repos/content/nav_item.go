package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type NavItemRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.NavItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *domain.NavItem) (*domain.NavItem, error)
	Update(ctx context.Context, tx *gorm.DB, item *domain.NavItem) (*domain.NavItem, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type navItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNavItemRepo(db *gorm.DB, baseLog *logger.Logger) NavItemRepo {
	repoLog := baseLog.With("repo", "NavItemRepo")
	return &navItemRepo{db: db, log: repoLog}
}

func (r *navItemRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.NavItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.NavItem{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.NavItem
	if err := q.Order("display_order, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *navItemRepo) Create(ctx context.Context, tx *gorm.DB, item *domain.NavItem) (*domain.NavItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *navItemRepo) Update(ctx context.Context, tx *gorm.DB, item *domain.NavItem) (*domain.NavItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *navItemRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.NavItem{}, "id = ?", id).Error
}
