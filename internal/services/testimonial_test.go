package services

import (
	"context"
	"errors"
	"testing"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

func TestTestimonialCreateDefaultsRating(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	svc := NewTestimonialService(testutil.Logger(t), repo)

	created, err := svc.Create(context.Background(), &domain.Testimonial{
		AuthorName: "Bilal Khan",
		Content:    "Delivered on schedule.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Rating != 5 {
		t.Fatalf("rating: got %d, want default 5", created.Rating)
	}
}

func TestTestimonialCreateRejectsOutOfRangeRating(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	svc := NewTestimonialService(testutil.Logger(t), repo)

	for _, rating := range []int{-2, 6} {
		_, err := svc.Create(context.Background(), &domain.Testimonial{
			AuthorName: "Bilal Khan",
			Content:    "Delivered on schedule.",
			Rating:     rating,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("rating %d: expected ValidationError, got %T: %v", rating, err, err)
		}
		if _, ok := verr.Fields["rating"]; !ok {
			t.Errorf("rating %d: expected field in %v", rating, verr.Fields)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("out-of-range ratings persisted %d rows", len(repo.created))
	}
}
