package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/saizgar/website-backend/internal/data/repos/contact"
	"github.com/saizgar/website-backend/internal/data/repos/settings"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"github.com/saizgar/website-backend/internal/platform/sendgrid"
)

type SubmitContactInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Service    string `json:"service"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
}

type ContactService interface {
	// Submit validates and persists a contact form submission, then attempts a
	// best-effort email notification. The returned submission is authoritative:
	// a notification failure never surfaces to the caller.
	Submit(ctx context.Context, in SubmitContactInput) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]*domain.ContactSubmission, error)
}

type contactService struct {
	log          *logger.Logger
	contactRepo  contact.ContactSubmissionRepo
	settingsRepo settings.SiteSettingsRepo
	mailer       sendgrid.Client
	// defaultAddress is the process-wide outgoing address. It doubles as the
	// notification destination when no site contact email is configured.
	defaultAddress string
}

func NewContactService(
	log *logger.Logger,
	contactRepo contact.ContactSubmissionRepo,
	settingsRepo settings.SiteSettingsRepo,
	mailer sendgrid.Client,
	defaultAddress string,
) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		log:            serviceLog,
		contactRepo:    contactRepo,
		settingsRepo:   settingsRepo,
		mailer:         mailer,
		defaultAddress: strings.TrimSpace(defaultAddress),
	}
}

func (cs *contactService) Submit(ctx context.Context, in SubmitContactInput) (*domain.ContactSubmission, error) {
	if err := validateContactInput(in); err != nil {
		return nil, err
	}

	sub := &domain.ContactSubmission{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Company:     strings.TrimSpace(in.Company),
		Service:     strings.TrimSpace(in.Service),
		Message:     in.Message,
		Newsletter:  in.Newsletter,
		SubmittedAt: time.Now().UTC(),
	}

	created, err := cs.contactRepo.Create(ctx, nil, sub)
	if err != nil {
		cs.log.Error("Failed to persist contact submission", "error", err)
		return nil, fmt.Errorf("persist contact submission: %w", err)
	}

	// Persistence is committed; everything below is best-effort and must not
	// change the outcome of Submit.
	cs.notify(ctx, created)

	return created, nil
}

func validateContactInput(in SubmitContactInput) error {
	verr := newValidationError()
	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "required")
	}
	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		verr.add("email", "required")
	case !validEmailAddress(email):
		verr.add("email", "invalid email address")
	}
	if strings.TrimSpace(in.Message) == "" {
		verr.add("message", "required")
	}
	return verr.orNil()
}

// notify resolves the destination address and dispatches a plain-text summary.
// Every failure path is absorbed with a warning.
func (cs *contactService) notify(ctx context.Context, sub *domain.ContactSubmission) {
	if cs.mailer == nil {
		cs.log.Warn("Mailer not configured, skipping contact notification", "submission_id", sub.ID)
		return
	}

	destination := cs.resolveDestination(ctx)
	if destination == "" {
		cs.log.Warn("No notification destination configured, skipping contact notification", "submission_id", sub.ID)
		return
	}

	subject := fmt.Sprintf("New Contact Submission: %s", sub.Name)
	body := fmt.Sprintf(
		"New contact form submission:\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Company: %s\n"+
			"Service: %s\n"+
			"Message: %s\n"+
			"Newsletter: %t\n\n"+
			"Submitted at: %s",
		sub.Name, sub.Email, sub.Phone, sub.Company, sub.Service, sub.Message,
		sub.Newsletter, sub.SubmittedAt.Format(time.RFC3339),
	)

	_, err := cs.mailer.Send(ctx, sendgrid.SendEmailRequest{
		From:    sendgrid.EmailAddress{Email: cs.defaultAddress},
		To:      []sendgrid.EmailAddress{{Email: destination}},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		cs.log.Warn("Failed to send contact notification", "submission_id", sub.ID, "error", err)
	}
}

// resolveDestination reads the configured contact email off the first
// SiteSettings row, falling back to the process default address. A settings
// read failure is non-fatal and falls through to the default.
func (cs *contactService) resolveDestination(ctx context.Context) string {
	siteSettings, err := cs.settingsRepo.First(ctx, nil)
	if err != nil {
		cs.log.Warn("Failed to read site settings for notification destination", "error", err)
		siteSettings = nil
	}
	if siteSettings != nil {
		if addr := strings.TrimSpace(siteSettings.ContactEmail); addr != "" {
			return addr
		}
	}
	return cs.defaultAddress
}

func (cs *contactService) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return cs.contactRepo.List(ctx, nil)
}
