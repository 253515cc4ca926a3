package contact

import (
	"context"
	"testing"
	"time"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

func TestContactSubmissionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewContactSubmissionRepo(db, testutil.Logger(t))

	now := time.Now().UTC()
	older, err := repo.Create(ctx, tx, &domain.ContactSubmission{
		Name:        "Jordan Example",
		Email:       "jordan@example.com",
		Message:     "Requesting a geotechnical survey.",
		SubmittedAt: now.Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	newer, err := repo.Create(ctx, tx, &domain.ContactSubmission{
		Name:        "Sana Tariq",
		Email:       "sana@example.com",
		Message:     "Need a quote for HVAC design.",
		Newsletter:  true,
		SubmittedAt: now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("List: len=%d, want >= 2", len(rows))
	}
	// Newest first.
	var posOlder, posNewer = -1, -1
	for i, row := range rows {
		switch row.ID {
		case older.ID:
			posOlder = i
		case newer.ID:
			posNewer = i
		}
	}
	if posOlder == -1 || posNewer == -1 {
		t.Fatalf("List missing created rows: older=%d newer=%d", posOlder, posNewer)
	}
	if posNewer > posOlder {
		t.Fatalf("List order: newer at %d, older at %d", posNewer, posOlder)
	}
}
