package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProcessStepRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.ServiceProcessStep, error)
	Create(ctx context.Context, tx *gorm.DB, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error)
	Update(ctx context.Context, tx *gorm.DB, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type processStepRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProcessStepRepo(db *gorm.DB, baseLog *logger.Logger) ProcessStepRepo {
	repoLog := baseLog.With("repo", "ProcessStepRepo")
	return &processStepRepo{db: db, log: repoLog}
}

func (r *processStepRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.ServiceProcessStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.ServiceProcessStep{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.ServiceProcessStep
	if err := q.Order("step_number, created_at").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *processStepRepo) Create(ctx context.Context, tx *gorm.DB, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(step).Error; err != nil {
		return nil, err
	}
	return step, nil
}

func (r *processStepRepo) Update(ctx context.Context, tx *gorm.DB, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(step).Error; err != nil {
		return nil, err
	}
	return step, nil
}

func (r *processStepRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.ServiceProcessStep{}, "id = ?", id).Error
}
