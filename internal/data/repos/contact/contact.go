package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ContactSubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sub *domain.ContactSubmission) (*domain.ContactSubmission, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.ContactSubmission, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.ContactSubmission, error)
}

type contactSubmissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) ContactSubmissionRepo {
	repoLog := baseLog.With("repo", "ContactSubmissionRepo")
	return &contactSubmissionRepo{db: db, log: repoLog}
}

func (r *contactSubmissionRepo) Create(ctx context.Context, tx *gorm.DB, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *contactSubmissionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.ContactSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.ContactSubmission
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contactSubmissionRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.ContactSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.ContactSubmission
	if err := transaction.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
