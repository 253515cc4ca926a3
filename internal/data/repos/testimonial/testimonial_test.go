package testimonial

import (
	"context"
	"testing"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

func TestTestimonialRepoPublicFilter(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewTestimonialRepo(db, testutil.Logger(t))

	public, err := repo.Create(ctx, tx, &domain.Testimonial{
		AuthorName: "Amira Khan",
		Content:    "Outstanding structural work.",
		Rating:     5,
		IsActive:   true,
		IsApproved: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hidden, err := repo.Create(ctx, tx, &domain.Testimonial{
		AuthorName: "Bilal Ahmed",
		Content:    "Pending review.",
		Rating:     4,
		IsActive:   true,
		IsApproved: false,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx, tx, true)
	if err != nil {
		t.Fatalf("List(publicOnly): %v", err)
	}
	for _, row := range rows {
		if row.ID == hidden.ID {
			t.Fatalf("public list exposed unapproved testimonial %s", row.ID)
		}
	}
	foundPublic := false
	for _, row := range rows {
		if row.ID == public.ID {
			foundPublic = true
		}
	}
	if !foundPublic {
		t.Fatalf("public list missing approved testimonial %s", public.ID)
	}

	all, err := repo.List(ctx, tx, false)
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(all) < 2 {
		t.Fatalf("List(all): len=%d, want >= 2", len(all))
	}

	// Soft delete removes the row from both listings.
	if err := repo.Delete(ctx, tx, public.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows, err = repo.List(ctx, tx, false)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	for _, row := range rows {
		if row.ID == public.ID {
			t.Fatalf("deleted testimonial %s still listed", row.ID)
		}
	}
}
