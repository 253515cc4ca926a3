package testimonial

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type TestimonialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, t *domain.Testimonial) (*domain.Testimonial, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Testimonial, error)
	// List returns all testimonials; publicOnly narrows to active, approved rows.
	List(ctx context.Context, tx *gorm.DB, publicOnly bool) ([]*domain.Testimonial, error)
	Update(ctx context.Context, tx *gorm.DB, t *domain.Testimonial) (*domain.Testimonial, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type testimonialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTestimonialRepo(db *gorm.DB, baseLog *logger.Logger) TestimonialRepo {
	repoLog := baseLog.With("repo", "TestimonialRepo")
	return &testimonialRepo{db: db, log: repoLog}
}

func (r *testimonialRepo) Create(ctx context.Context, tx *gorm.DB, t *domain.Testimonial) (*domain.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *testimonialRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Testimonial
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

func (r *testimonialRepo) List(ctx context.Context, tx *gorm.DB, publicOnly bool) ([]*domain.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).Model(&domain.Testimonial{})
	if publicOnly {
		q = q.Where("is_active = ? AND is_approved = ?", true, true)
	}

	var results []*domain.Testimonial
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *testimonialRepo) Update(ctx context.Context, tx *gorm.DB, t *domain.Testimonial) (*domain.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *testimonialRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Delete(&domain.Testimonial{}, "id = ?", id).Error
}
