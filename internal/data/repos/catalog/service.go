package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ServiceRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Service, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Service, error)
	Create(ctx context.Context, tx *gorm.DB, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, tx *gorm.DB, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	repoLog := baseLog.With("repo", "ServiceRepo")
	return &serviceRepo{db: db, log: repoLog}
}

func (r *serviceRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.Service{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.Service
	if err := q.Order("display_order, title").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Service
	err := transaction.WithContext(ctx).Where("slug = ?", slug).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *serviceRepo) Create(ctx context.Context, tx *gorm.DB, svc *domain.Service) (*domain.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *serviceRepo) Update(ctx context.Context, tx *gorm.DB, svc *domain.Service) (*domain.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *serviceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.Service{}, "id = ?", id).Error
}
