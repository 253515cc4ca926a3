package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/data/repos/testimonial"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

type TestimonialService interface {
	// ListPublic returns only active, approved testimonials.
	ListPublic(ctx context.Context) ([]*domain.Testimonial, error)
	ListAll(ctx context.Context) ([]*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	log             *logger.Logger
	testimonialRepo testimonial.TestimonialRepo
}

func NewTestimonialService(log *logger.Logger, testimonialRepo testimonial.TestimonialRepo) TestimonialService {
	serviceLog := log.With("service", "TestimonialService")
	return &testimonialService{log: serviceLog, testimonialRepo: testimonialRepo}
}

func (ts *testimonialService) ListPublic(ctx context.Context) ([]*domain.Testimonial, error) {
	return ts.testimonialRepo.List(ctx, nil, true)
}

func (ts *testimonialService) ListAll(ctx context.Context) ([]*domain.Testimonial, error) {
	return ts.testimonialRepo.List(ctx, nil, false)
}

func (ts *testimonialService) Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	if err := validateTestimonial(t); err != nil {
		return nil, err
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	return ts.testimonialRepo.Create(ctx, nil, t)
}

func (ts *testimonialService) Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	if err := validateTestimonial(t); err != nil {
		return nil, err
	}
	return ts.testimonialRepo.Update(ctx, nil, t)
}

func (ts *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	return ts.testimonialRepo.Delete(ctx, nil, id)
}

func validateTestimonial(t *domain.Testimonial) error {
	verr := newValidationError()
	if strings.TrimSpace(t.AuthorName) == "" {
		verr.add("author_name", "required")
	}
	if strings.TrimSpace(t.Content) == "" {
		verr.add("content", "required")
	}
	if t.Rating < 0 || t.Rating > 5 {
		verr.add("rating", "must be between 1 and 5, or 0 for the default")
	}
	return verr.orNil()
}
