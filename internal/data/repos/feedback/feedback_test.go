package feedback

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

func TestClientFeedbackRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewClientFeedbackRepo(db, testutil.Logger(t))

	first, err := repo.Create(ctx, tx, &domain.ClientFeedback{
		AuthorName:  "Amira Khan",
		AuthorEmail: "amira@example.com",
		Content:     "Delivered the bridge assessment ahead of schedule.",
		Rating:      5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create(ctx, tx, &domain.ClientFeedback{
		AuthorName:  "Bilal Ahmed",
		AuthorEmail: "bilal@example.com",
		Content:     "Responsive and thorough structural review.",
		Rating:      4,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{first.ID, second.ID})
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}

	// MarkReviewed flips only is_reviewed.
	updated, err := repo.MarkReviewed(ctx, tx, []uuid.UUID{first.ID})
	if err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}
	if updated != 1 {
		t.Fatalf("MarkReviewed: updated=%d, want 1", updated)
	}
	rows, err = repo.GetByIDs(ctx, tx, []uuid.UUID{first.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if !rows[0].IsReviewed || rows[0].IsApproved {
		t.Fatalf("after MarkReviewed: reviewed=%t approved=%t", rows[0].IsReviewed, rows[0].IsApproved)
	}

	// Approve flips both flags.
	if err := repo.Approve(ctx, tx, second.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	rows, err = repo.GetByIDs(ctx, tx, []uuid.UUID{second.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if !rows[0].IsReviewed || !rows[0].IsApproved {
		t.Fatalf("after Approve: reviewed=%t approved=%t", rows[0].IsReviewed, rows[0].IsApproved)
	}

	// Filtered listing.
	truthy := true
	falsy := false
	pending, err := repo.List(ctx, tx, ListFilter{IsApproved: &falsy})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, row := range pending {
		if row.IsApproved {
			t.Fatalf("List(IsApproved=false) returned approved row %s", row.ID)
		}
	}
	approved, err := repo.List(ctx, tx, ListFilter{IsApproved: &truthy})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, row := range approved {
		if row.ID == second.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("List(IsApproved=true) missing approved row %s", second.ID)
	}

	if err := repo.UpdateAdminNotes(ctx, tx, first.ID, "follow up by phone"); err != nil {
		t.Fatalf("UpdateAdminNotes: %v", err)
	}
	rows, _ = repo.GetByIDs(ctx, tx, []uuid.UUID{first.ID})
	if rows[0].AdminNotes != "follow up by phone" {
		t.Fatalf("AdminNotes: %q", rows[0].AdminNotes)
	}

	if empty, err := repo.GetByIDs(ctx, tx, nil); err != nil || len(empty) != 0 {
		t.Fatalf("GetByIDs(nil): err=%v len=%d", err, len(empty))
	}
	if n, err := repo.MarkReviewed(ctx, tx, nil); err != nil || n != 0 {
		t.Fatalf("MarkReviewed(nil): err=%v n=%d", err, n)
	}
}
