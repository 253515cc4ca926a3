package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type SectorRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Sector, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Sector, error)
	Create(ctx context.Context, tx *gorm.DB, s *domain.Sector) (*domain.Sector, error)
	Update(ctx context.Context, tx *gorm.DB, s *domain.Sector) (*domain.Sector, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type sectorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSectorRepo(db *gorm.DB, baseLog *logger.Logger) SectorRepo {
	repoLog := baseLog.With("repo", "SectorRepo")
	return &sectorRepo{db: db, log: repoLog}
}

func (r *sectorRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Sector, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Sector{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Sector
	if err := q.Order("display_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *sectorRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Sector, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Sector
	err := transaction.WithContext(ctx).Where("slug = ?", slug).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *sectorRepo) Create(ctx context.Context, tx *gorm.DB, s *domain.Sector) (*domain.Sector, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sectorRepo) Update(ctx context.Context, tx *gorm.DB, s *domain.Sector) (*domain.Sector, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sectorRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Sector{}, "id = ?", id).Error
}
