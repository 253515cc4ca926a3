package services

import (
	"context"
	"strings"

	"github.com/saizgar/website-backend/internal/data/repos/settings"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

type SettingsService interface {
	// Get returns the effective settings row, or (nil, nil) when none exists.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	// Upsert updates the first settings row, creating it when absent. The
	// singleton is by convention: only the first row is ever consulted.
	Upsert(ctx context.Context, in *domain.SiteSettings) (*domain.SiteSettings, error)
}

type settingsService struct {
	log          *logger.Logger
	settingsRepo settings.SiteSettingsRepo
}

func NewSettingsService(log *logger.Logger, settingsRepo settings.SiteSettingsRepo) SettingsService {
	serviceLog := log.With("service", "SettingsService")
	return &settingsService{log: serviceLog, settingsRepo: settingsRepo}
}

func (ss *settingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return ss.settingsRepo.First(ctx, nil)
}

func (ss *settingsService) Upsert(ctx context.Context, in *domain.SiteSettings) (*domain.SiteSettings, error) {
	verr := newValidationError()
	if strings.TrimSpace(in.SiteName) == "" {
		verr.add("site_name", "required")
	}
	if addr := strings.TrimSpace(in.ContactEmail); addr != "" && !validEmailAddress(addr) {
		verr.add("contact_email", "invalid email address")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	existing, err := ss.settingsRepo.First(ctx, nil)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return ss.settingsRepo.Create(ctx, nil, in)
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	return ss.settingsRepo.Update(ctx, nil, in)
}
