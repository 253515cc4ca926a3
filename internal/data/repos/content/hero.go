package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type HeroRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Hero, error)
	Create(ctx context.Context, tx *gorm.DB, hero *domain.Hero) (*domain.Hero, error)
	Update(ctx context.Context, tx *gorm.DB, hero *domain.Hero) (*domain.Hero, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type heroRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHeroRepo(db *gorm.DB, baseLog *logger.Logger) HeroRepo {
	repoLog := baseLog.With("repo", "HeroRepo")
	return &heroRepo{db: db, log: repoLog}
}

func (r *heroRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Hero, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Hero{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Hero
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *heroRepo) Create(ctx context.Context, tx *gorm.DB, hero *domain.Hero) (*domain.Hero, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(hero).Error; err != nil {
		return nil, err
	}
	return hero, nil
}

func (r *heroRepo) Update(ctx context.Context, tx *gorm.DB, hero *domain.Hero) (*domain.Hero, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(hero).Error; err != nil {
		return nil, err
	}
	return hero, nil
}

func (r *heroRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Hero{}, "id = ?", id).Error
}
