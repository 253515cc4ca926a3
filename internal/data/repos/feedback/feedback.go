package feedback

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// ListFilter narrows the admin review queue. Nil pointers mean "any".
type ListFilter struct {
	IsReviewed *bool
	IsApproved *bool
}

type ClientFeedbackRepo interface {
	Create(ctx context.Context, tx *gorm.DB, fb *domain.ClientFeedback) (*domain.ClientFeedback, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.ClientFeedback, error)
	List(ctx context.Context, tx *gorm.DB, filter ListFilter) ([]*domain.ClientFeedback, error)
	// MarkReviewed sets is_reviewed on the given rows and reports how many
	// rows changed. It never touches is_approved.
	MarkReviewed(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error)
	// Approve sets both is_approved and is_reviewed on a single row.
	Approve(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	UpdateAdminNotes(ctx context.Context, tx *gorm.DB, id uuid.UUID, notes string) error
}

type clientFeedbackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClientFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) ClientFeedbackRepo {
	repoLog := baseLog.With("repo", "ClientFeedbackRepo")
	return &clientFeedbackRepo{db: db, log: repoLog}
}

func (r *clientFeedbackRepo) Create(ctx context.Context, tx *gorm.DB, fb *domain.ClientFeedback) (*domain.ClientFeedback, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

func (r *clientFeedbackRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.ClientFeedback, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.ClientFeedback
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

func (r *clientFeedbackRepo) List(ctx context.Context, tx *gorm.DB, filter ListFilter) ([]*domain.ClientFeedback, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).Model(&domain.ClientFeedback{})
	if filter.IsReviewed != nil {
		q = q.Where("is_reviewed = ?", *filter.IsReviewed)
	}
	if filter.IsApproved != nil {
		q = q.Where("is_approved = ?", *filter.IsApproved)
	}

	var results []*domain.ClientFeedback
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *clientFeedbackRepo) MarkReviewed(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return 0, nil
	}
	res := transaction.WithContext(ctx).
		Model(&domain.ClientFeedback{}).
		Where("id IN ?", ids).
		Update("is_reviewed", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *clientFeedbackRepo) Approve(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.ClientFeedback{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_approved": true,
			"is_reviewed": true,
		}).Error
}

func (r *clientFeedbackRepo) UpdateAdminNotes(ctx context.Context, tx *gorm.DB, id uuid.UUID, notes string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.ClientFeedback{}).
		Where("id = ?", id).
		Update("admin_notes", notes).Error
}
