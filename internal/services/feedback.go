package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/data/repos/feedback"
	"github.com/saizgar/website-backend/internal/data/repos/testimonial"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

type SubmitFeedbackInput struct {
	AuthorName  string `json:"author_name"`
	AuthorTitle string `json:"author_title"`
	AuthorEmail string `json:"author_email"`
	Company     string `json:"company"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
	ProjectName string `json:"project_name"`
}

type PromotionFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// PromotionResult reports a bulk promotion: rows converted into testimonials,
// rows skipped because they were already approved, and per-row failures.
type PromotionResult struct {
	Converted int                `json:"converted"`
	Skipped   int                `json:"skipped"`
	Failures  []PromotionFailure `json:"failures,omitempty"`
}

type FeedbackService interface {
	Submit(ctx context.Context, in SubmitFeedbackInput) (*domain.ClientFeedback, error)
	List(ctx context.Context, filter feedback.ListFilter) ([]*domain.ClientFeedback, error)
	// Promote copies each still-unapproved selected row into a new Testimonial
	// and marks the source approved and reviewed. Rows are processed
	// independently: one failure neither aborts the batch nor marks its source.
	Promote(ctx context.Context, ids []uuid.UUID) (*PromotionResult, error)
	// MarkReviewed flips is_reviewed on the selected rows. It never touches
	// is_approved and never creates a Testimonial.
	MarkReviewed(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type feedbackService struct {
	log             *logger.Logger
	feedbackRepo    feedback.ClientFeedbackRepo
	testimonialRepo testimonial.TestimonialRepo
}

func NewFeedbackService(
	log *logger.Logger,
	feedbackRepo feedback.ClientFeedbackRepo,
	testimonialRepo testimonial.TestimonialRepo,
) FeedbackService {
	serviceLog := log.With("service", "FeedbackService")
	return &feedbackService{
		log:             serviceLog,
		feedbackRepo:    feedbackRepo,
		testimonialRepo: testimonialRepo,
	}
}

func (fs *feedbackService) Submit(ctx context.Context, in SubmitFeedbackInput) (*domain.ClientFeedback, error) {
	if err := validateFeedbackInput(in); err != nil {
		return nil, err
	}

	rating := in.Rating
	if rating == 0 {
		rating = 5
	}

	fb := &domain.ClientFeedback{
		AuthorName:  strings.TrimSpace(in.AuthorName),
		AuthorTitle: strings.TrimSpace(in.AuthorTitle),
		AuthorEmail: strings.TrimSpace(in.AuthorEmail),
		Company:     strings.TrimSpace(in.Company),
		Content:     in.Content,
		Rating:      rating,
		ProjectName: strings.TrimSpace(in.ProjectName),
	}
	return fs.feedbackRepo.Create(ctx, nil, fb)
}

func validateFeedbackInput(in SubmitFeedbackInput) error {
	verr := newValidationError()
	if strings.TrimSpace(in.AuthorName) == "" {
		verr.add("author_name", "required")
	}
	email := strings.TrimSpace(in.AuthorEmail)
	switch {
	case email == "":
		verr.add("author_email", "required")
	case !validEmailAddress(email):
		verr.add("author_email", "invalid email address")
	}
	if strings.TrimSpace(in.Content) == "" {
		verr.add("content", "required")
	}
	if in.Rating < 0 || in.Rating > 5 {
		verr.add("rating", "must be between 1 and 5, or 0 for the default")
	}
	return verr.orNil()
}

func (fs *feedbackService) List(ctx context.Context, filter feedback.ListFilter) ([]*domain.ClientFeedback, error) {
	return fs.feedbackRepo.List(ctx, nil, filter)
}

func (fs *feedbackService) Promote(ctx context.Context, ids []uuid.UUID) (*PromotionResult, error) {
	selected, err := fs.feedbackRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, fmt.Errorf("load selected feedback: %w", err)
	}

	result := &PromotionResult{}
	for _, fb := range selected {
		if fb.IsApproved {
			result.Skipped++
			continue
		}

		// The testimonial is created first; the source is only flagged once the
		// copy exists. A flag failure leaves the source re-promotable, which is
		// preferable to an approved-but-unconverted row.
		copyRow := &domain.Testimonial{
			AuthorName:        fb.AuthorName,
			AuthorTitle:       fb.AuthorTitle,
			Content:           fb.Content,
			Company:           fb.Company,
			Rating:            fb.Rating,
			IsActive:          true,
			IsApproved:        true,
			SubmittedByClient: true,
		}
		if _, err := fs.testimonialRepo.Create(ctx, nil, copyRow); err != nil {
			fs.log.Warn("Failed to create testimonial from feedback", "feedback_id", fb.ID, "error", err)
			result.Failures = append(result.Failures, PromotionFailure{ID: fb.ID, Reason: err.Error()})
			continue
		}

		if err := fs.feedbackRepo.Approve(ctx, nil, fb.ID); err != nil {
			fs.log.Warn("Failed to flag feedback approved after conversion", "feedback_id", fb.ID, "error", err)
			result.Failures = append(result.Failures, PromotionFailure{ID: fb.ID, Reason: err.Error()})
			continue
		}

		result.Converted++
	}

	fs.log.Info("Feedback promotion finished",
		"selected", len(ids),
		"converted", result.Converted,
		"skipped", result.Skipped,
		"failed", len(result.Failures),
	)
	return result, nil
}

func (fs *feedbackService) MarkReviewed(ctx context.Context, ids []uuid.UUID) (int64, error) {
	updated, err := fs.feedbackRepo.MarkReviewed(ctx, nil, ids)
	if err != nil {
		return 0, fmt.Errorf("mark feedback reviewed: %w", err)
	}
	return updated, nil
}
