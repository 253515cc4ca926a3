package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saizgar/website-backend/internal/data/repos/feedback"
	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

type fakeFeedbackRepo struct {
	rows         []*domain.ClientFeedback
	approved     []uuid.UUID
	approveErrs  map[uuid.UUID]error
	markedIDs    []uuid.UUID
	markReviewed int64
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, tx *gorm.DB, fb *domain.ClientFeedback) (*domain.ClientFeedback, error) {
	fb.ID = uuid.New()
	f.rows = append(f.rows, fb)
	return fb, nil
}

func (f *fakeFeedbackRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.ClientFeedback, error) {
	var out []*domain.ClientFeedback
	for _, row := range f.rows {
		for _, id := range ids {
			if row.ID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) List(ctx context.Context, tx *gorm.DB, filter feedback.ListFilter) ([]*domain.ClientFeedback, error) {
	return f.rows, nil
}

func (f *fakeFeedbackRepo) MarkReviewed(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error) {
	f.markedIDs = append(f.markedIDs, ids...)
	for _, row := range f.rows {
		for _, id := range ids {
			if row.ID == id && !row.IsReviewed {
				row.IsReviewed = true
				f.markReviewed++
			}
		}
	}
	return f.markReviewed, nil
}

func (f *fakeFeedbackRepo) Approve(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if err := f.approveErrs[id]; err != nil {
		return err
	}
	for _, row := range f.rows {
		if row.ID == id {
			row.IsApproved = true
			row.IsReviewed = true
		}
	}
	f.approved = append(f.approved, id)
	return nil
}

func (f *fakeFeedbackRepo) UpdateAdminNotes(ctx context.Context, tx *gorm.DB, id uuid.UUID, notes string) error {
	return nil
}

type fakeTestimonialRepo struct {
	created    []*domain.Testimonial
	failAuthor string
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, tx *gorm.DB, t *domain.Testimonial) (*domain.Testimonial, error) {
	if f.failAuthor != "" && t.AuthorName == f.failAuthor {
		return nil, errors.New("insert failed")
	}
	t.ID = uuid.New()
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeTestimonialRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Testimonial, error) {
	return f.created, nil
}

func (f *fakeTestimonialRepo) List(ctx context.Context, tx *gorm.DB, publicOnly bool) ([]*domain.Testimonial, error) {
	return f.created, nil
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, tx *gorm.DB, t *domain.Testimonial) (*domain.Testimonial, error) {
	return t, nil
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return nil
}

func seedFeedback(repo *fakeFeedbackRepo, name string, approved bool) *domain.ClientFeedback {
	fb := &domain.ClientFeedback{
		ID:          uuid.New(),
		AuthorName:  name,
		AuthorTitle: "Director",
		AuthorEmail: name + "@example.com",
		Company:     "Example Ltd",
		Content:     "Great work by the team.",
		Rating:      4,
		IsApproved:  approved,
		IsReviewed:  approved,
	}
	repo.rows = append(repo.rows, fb)
	return fb
}

func TestPromoteConvertsAndFlagsSource(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	tRepo := &fakeTestimonialRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, tRepo)

	fb := seedFeedback(fbRepo, "amira", false)

	result, err := svc.Promote(context.Background(), []uuid.UUID{fb.ID})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if result.Converted != 1 || result.Skipped != 0 || len(result.Failures) != 0 {
		t.Fatalf("result: %+v", result)
	}

	if len(tRepo.created) != 1 {
		t.Fatalf("expected 1 testimonial, got %d", len(tRepo.created))
	}
	created := tRepo.created[0]
	if created.AuthorName != fb.AuthorName ||
		created.AuthorTitle != fb.AuthorTitle ||
		created.Content != fb.Content ||
		created.Company != fb.Company ||
		created.Rating != fb.Rating {
		t.Errorf("testimonial fields not copied: %+v", created)
	}
	if !created.IsActive || !created.IsApproved || !created.SubmittedByClient {
		t.Errorf("testimonial flags: %+v", created)
	}
	if !fb.IsApproved || !fb.IsReviewed {
		t.Errorf("source not flagged: %+v", fb)
	}
}

func TestPromoteSkipsAlreadyApproved(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	tRepo := &fakeTestimonialRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, tRepo)

	done := seedFeedback(fbRepo, "done", true)
	fresh := seedFeedback(fbRepo, "fresh", false)

	result, err := svc.Promote(context.Background(), []uuid.UUID{done.ID, fresh.ID})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if result.Converted != 1 || result.Skipped != 1 {
		t.Fatalf("result: %+v", result)
	}
	if len(tRepo.created) != 1 || tRepo.created[0].AuthorName != "fresh" {
		t.Fatalf("expected only the unapproved row converted: %+v", tRepo.created)
	}
}

func TestPromoteCreateFailureLeavesSourceUnflagged(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	tRepo := &fakeTestimonialRepo{failAuthor: "broken"}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, tRepo)

	broken := seedFeedback(fbRepo, "broken", false)
	ok := seedFeedback(fbRepo, "ok", false)

	result, err := svc.Promote(context.Background(), []uuid.UUID{broken.ID, ok.ID})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if result.Converted != 1 || len(result.Failures) != 1 {
		t.Fatalf("result: %+v", result)
	}
	if result.Failures[0].ID != broken.ID {
		t.Fatalf("failure id: %v", result.Failures[0])
	}

	// The failed row stays promotable.
	if broken.IsApproved || broken.IsReviewed {
		t.Errorf("failed row was flagged: %+v", broken)
	}
	if !ok.IsApproved {
		t.Errorf("healthy row not flagged: %+v", ok)
	}
}

func TestPromoteApproveFailureRecorded(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{approveErrs: map[uuid.UUID]error{}}
	tRepo := &fakeTestimonialRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, tRepo)

	fb := seedFeedback(fbRepo, "amira", false)
	fbRepo.approveErrs[fb.ID] = errors.New("deadlock detected")

	result, err := svc.Promote(context.Background(), []uuid.UUID{fb.ID})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if result.Converted != 0 || len(result.Failures) != 1 {
		t.Fatalf("result: %+v", result)
	}
	// The copy exists; only the flag write failed.
	if len(tRepo.created) != 1 {
		t.Fatalf("expected testimonial despite flag failure, got %d", len(tRepo.created))
	}
}

func TestPromoteIgnoresUnknownIDs(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, &fakeTestimonialRepo{})

	result, err := svc.Promote(context.Background(), []uuid.UUID{uuid.New()})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if result.Converted != 0 || result.Skipped != 0 || len(result.Failures) != 0 {
		t.Fatalf("result: %+v", result)
	}
}

func TestMarkReviewedNeverApproves(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	tRepo := &fakeTestimonialRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, tRepo)

	fb := seedFeedback(fbRepo, "amira", false)

	updated, err := svc.MarkReviewed(context.Background(), []uuid.UUID{fb.ID})
	if err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	if updated != 1 {
		t.Fatalf("updated: got %d, want 1", updated)
	}
	if !fb.IsReviewed {
		t.Errorf("row not marked reviewed: %+v", fb)
	}
	if fb.IsApproved {
		t.Errorf("MarkReviewed flipped is_approved: %+v", fb)
	}
	if len(tRepo.created) != 0 {
		t.Errorf("MarkReviewed created %d testimonials", len(tRepo.created))
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, &fakeTestimonialRepo{})

	_, err := svc.Submit(context.Background(), SubmitFeedbackInput{AuthorEmail: "bad"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	for _, field := range []string{"author_name", "author_email", "content"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected field %q in %v", field, verr.Fields)
		}
	}
	if len(fbRepo.rows) != 0 {
		t.Fatalf("invalid input persisted %d rows", len(fbRepo.rows))
	}
}

func TestSubmitFeedbackDefaultsRating(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, &fakeTestimonialRepo{})

	fb, err := svc.Submit(context.Background(), SubmitFeedbackInput{
		AuthorName:  "Amira",
		AuthorEmail: "amira@example.com",
		Content:     "Excellent delivery.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if fb.Rating != 5 {
		t.Fatalf("rating: got %d, want default 5", fb.Rating)
	}
}

func TestSubmitFeedbackRejectsOutOfRangeRating(t *testing.T) {
	fbRepo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(testutil.Logger(t), fbRepo, &fakeTestimonialRepo{})

	for _, rating := range []int{-1, 6} {
		_, err := svc.Submit(context.Background(), SubmitFeedbackInput{
			AuthorName:  "Amira",
			AuthorEmail: "amira@example.com",
			Content:     "Excellent delivery.",
			Rating:      rating,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("rating %d: expected ValidationError, got %T: %v", rating, err, err)
		}
		if _, ok := verr.Fields["rating"]; !ok {
			t.Errorf("rating %d: expected field in %v", rating, verr.Fields)
		}
	}
	if len(fbRepo.rows) != 0 {
		t.Fatalf("out-of-range ratings persisted %d rows", len(fbRepo.rows))
	}
}
