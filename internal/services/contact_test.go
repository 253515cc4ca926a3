package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/sendgrid"
)

type fakeContactRepo struct {
	created   []*domain.ContactSubmission
	createErr error
}

func (f *fakeContactRepo) Create(ctx context.Context, tx *gorm.DB, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	sub.ID = uuid.New()
	f.created = append(f.created, sub)
	return sub, nil
}

func (f *fakeContactRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.ContactSubmission, error) {
	return f.created, nil
}

func (f *fakeContactRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.ContactSubmission, error) {
	return f.created, nil
}

type fakeSettingsRepo struct {
	row      *domain.SiteSettings
	firstErr error
}

func (f *fakeSettingsRepo) First(ctx context.Context, tx *gorm.DB) (*domain.SiteSettings, error) {
	if f.firstErr != nil {
		return nil, f.firstErr
	}
	return f.row, nil
}

func (f *fakeSettingsRepo) Create(ctx context.Context, tx *gorm.DB, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	f.row = s
	return s, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, tx *gorm.DB, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	f.row = s
	return s, nil
}

type fakeMailer struct {
	sent    []sendgrid.SendEmailRequest
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, req sendgrid.SendEmailRequest) (*sendgrid.SendEmailResult, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, req)
	return &sendgrid.SendEmailResult{StatusCode: 202}, nil
}

func validContactInput() SubmitContactInput {
	return SubmitContactInput{
		Name:       "Jordan Example",
		Email:      "jordan@example.com",
		Phone:      "+92 300 1234567",
		Company:    "Example Ltd",
		Service:    "Structural Design",
		Message:    "Please send a quote.",
		Newsletter: true,
	}
}

func TestContactSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeMailer{}
	svc := NewContactService(testutil.Logger(t), repo, &fakeSettingsRepo{
		row: &domain.SiteSettings{SiteName: "Saizgar", ContactEmail: "office@saizgar.com"},
	}, mailer, "noreply@saizgar.com")

	sub, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub == nil || sub.ID == uuid.Nil {
		t.Fatalf("Submit: expected persisted submission, got %+v", sub)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted submission, got %d", len(repo.created))
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if len(msg.To) != 1 || msg.To[0].Email != "office@saizgar.com" {
		t.Fatalf("notification destination: %+v", msg.To)
	}
	if msg.Subject != "New Contact Submission: Jordan Example" {
		t.Fatalf("notification subject: %q", msg.Subject)
	}
	for _, want := range []string{
		"Name: Jordan Example",
		"Email: jordan@example.com",
		"Phone: +92 300 1234567",
		"Company: Example Ltd",
		"Service: Structural Design",
		"Message: Please send a quote.",
		"Newsletter: true",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("notification body missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestContactSubmitValidation(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeMailer{}
	svc := NewContactService(testutil.Logger(t), repo, &fakeSettingsRepo{}, mailer, "noreply@saizgar.com")

	_, err := svc.Submit(context.Background(), SubmitContactInput{Email: "not-an-email"})
	if err == nil {
		t.Fatal("Submit: expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submit: expected ValidationError, got %T: %v", err, err)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected field %q in %v", field, verr.Fields)
		}
	}

	if len(repo.created) != 0 {
		t.Fatalf("invalid input persisted %d submissions", len(repo.created))
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("invalid input sent %d notifications", len(mailer.sent))
	}
}

func TestContactSubmitSurvivesMailFailure(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(testutil.Logger(t), repo, &fakeSettingsRepo{}, &fakeMailer{
		sendErr: errors.New("sendgrid http 503: unavailable"),
	}, "noreply@saizgar.com")

	sub, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub == nil || len(repo.created) != 1 {
		t.Fatal("submission should persist even when the notification fails")
	}
}

func TestContactSubmitNilMailer(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(testutil.Logger(t), repo, &fakeSettingsRepo{}, nil, "noreply@saizgar.com")

	if _, err := svc.Submit(context.Background(), validContactInput()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted submission, got %d", len(repo.created))
	}
}

func TestContactDestinationFallsBackToDefault(t *testing.T) {
	cases := []struct {
		name     string
		settings *fakeSettingsRepo
	}{
		{"no settings row", &fakeSettingsRepo{}},
		{"blank contact email", &fakeSettingsRepo{row: &domain.SiteSettings{SiteName: "Saizgar"}}},
		{"settings read failure", &fakeSettingsRepo{firstErr: errors.New("connection refused")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			svc := NewContactService(testutil.Logger(t), &fakeContactRepo{}, tc.settings, mailer, "noreply@saizgar.com")

			if _, err := svc.Submit(context.Background(), validContactInput()); err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if len(mailer.sent) != 1 {
				t.Fatalf("expected 1 notification, got %d", len(mailer.sent))
			}
			if got := mailer.sent[0].To[0].Email; got != "noreply@saizgar.com" {
				t.Fatalf("destination: got %q, want default address", got)
			}
		})
	}
}
