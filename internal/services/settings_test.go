package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

func TestSettingsUpsertCreatesThenUpdates(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(testutil.Logger(t), repo)

	created, err := svc.Upsert(context.Background(), &domain.SiteSettings{
		SiteName:     "Saizgar Engineering",
		ContactEmail: "office@saizgar.com",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	repo.row.ID = uuid.New()
	firstID := repo.row.ID

	updated, err := svc.Upsert(context.Background(), &domain.SiteSettings{
		SiteName:     "Saizgar Engineering Pvt Ltd",
		ContactEmail: "info@saizgar.com",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if updated.ID != firstID {
		t.Fatalf("Upsert created a second row: %s vs %s", updated.ID, firstID)
	}
	if updated.SiteName != "Saizgar Engineering Pvt Ltd" {
		t.Fatalf("SiteName: %q", updated.SiteName)
	}
	_ = created
}

func TestSettingsUpsertValidation(t *testing.T) {
	svc := NewSettingsService(testutil.Logger(t), &fakeSettingsRepo{})

	_, err := svc.Upsert(context.Background(), &domain.SiteSettings{ContactEmail: "not-an-email"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if _, ok := verr.Fields["site_name"]; !ok {
		t.Errorf("expected site_name in %v", verr.Fields)
	}
	if _, ok := verr.Fields["contact_email"]; !ok {
		t.Errorf("expected contact_email in %v", verr.Fields)
	}
}
