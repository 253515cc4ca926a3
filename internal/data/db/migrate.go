package db

import (
	"fmt"

	"github.com/saizgar/website-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Site chrome
		&domain.SiteSettings{},
		&domain.NavItem{},
		&domain.FooterLink{},
		&domain.SocialLink{},
		&domain.QuickStat{},
		&domain.OfficeHour{},
		&domain.Hero{},
		&domain.ServiceProcessStep{},
		&domain.WhyChooseItem{},
		&domain.Partner{},
		&domain.CoreValue{},
		&domain.TimelineEvent{},

		// Editable pages
		&domain.SEO{},
		&domain.Page{},
		&domain.PageSection{},

		// Catalog
		&domain.ServiceCategory{},
		&domain.Service{},
		&domain.ProjectCategory{},
		&domain.Project{},
		&domain.Sector{},
		&domain.Leadership{},
		&domain.TeamMember{},
		&domain.ProjectImage{},
		&domain.Award{},

		// Testimonials + review queue
		&domain.Testimonial{},
		&domain.ClientFeedback{},

		// Contact intake
		&domain.ContactSubmission{},
	)
}

func EnsureIndexes(db *gorm.DB) error {
	// uuid-ossp is already enabled in NewPostgresService, but safe to re-run
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("enable uuid-ossp: %w", err)
	}
	// Admin listing walks submissions newest-first.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_contact_submission_submitted_at
		ON contact_submission (submitted_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_contact_submission_submitted_at: %w", err)
	}
	// Review queue filters on the approval flags.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_client_feedback_review_state
		ON client_feedback (is_reviewed, is_approved, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_client_feedback_review_state: %w", err)
	}
	// Public testimonial listing.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_testimonial_public
		ON testimonial (is_active, is_approved)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_testimonial_public: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureIndexes(s.db); err != nil {
		s.log.Error("Index migration failed", "error", err)
		return err
	}
	return nil
}
