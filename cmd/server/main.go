package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/saizgar/website-backend/internal/data/db"
	"github.com/saizgar/website-backend/internal/data/repos/catalog"
	"github.com/saizgar/website-backend/internal/data/repos/contact"
	"github.com/saizgar/website-backend/internal/data/repos/content"
	"github.com/saizgar/website-backend/internal/data/repos/feedback"
	"github.com/saizgar/website-backend/internal/data/repos/pages"
	"github.com/saizgar/website-backend/internal/data/repos/settings"
	"github.com/saizgar/website-backend/internal/data/repos/testimonial"
	"github.com/saizgar/website-backend/internal/handlers"
	"github.com/saizgar/website-backend/internal/middleware"
	"github.com/saizgar/website-backend/internal/platform/envutil"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"github.com/saizgar/website-backend/internal/platform/sendgrid"
	"github.com/saizgar/website-backend/internal/server"
	"github.com/saizgar/website-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.Str("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := envutil.Str("PORT", "8080")
	adminToken := envutil.Str("ADMIN_API_TOKEN", "")
	defaultFromEmail := envutil.Str("SENDGRID_FROM_EMAIL", "")
	corsOrigins := splitOrigins(envutil.Str("CORS_ORIGINS", ""))
	autoMigrate := envutil.Bool("AUTO_MIGRATE", true)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if autoMigrate {
		if err = postgresService.AutoMigrateAll(); err != nil {
			log.Warn("Postgres auto migration failed", "error", err)
		}
	} else {
		log.Info("AUTO_MIGRATE disabled, skipping schema migration")
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	settingsRepo := settings.NewSiteSettingsRepo(thePG, log)
	contactRepo := contact.NewContactSubmissionRepo(thePG, log)
	feedbackRepo := feedback.NewClientFeedbackRepo(thePG, log)
	testimonialRepo := testimonial.NewTestimonialRepo(thePG, log)
	navItemRepo := content.NewNavItemRepo(thePG, log)
	footerLinkRepo := content.NewFooterLinkRepo(thePG, log)
	socialLinkRepo := content.NewSocialLinkRepo(thePG, log)
	quickStatRepo := content.NewQuickStatRepo(thePG, log)
	officeHourRepo := content.NewOfficeHourRepo(thePG, log)
	heroRepo := content.NewHeroRepo(thePG, log)
	processStepRepo := content.NewProcessStepRepo(thePG, log)
	whyChooseRepo := content.NewWhyChooseRepo(thePG, log)
	partnerRepo := content.NewPartnerRepo(thePG, log)
	coreValueRepo := content.NewCoreValueRepo(thePG, log)
	timelineEventRepo := content.NewTimelineEventRepo(thePG, log)
	seoRepo := pages.NewSEORepo(thePG, log)
	pageRepo := pages.NewPageRepo(thePG, log)
	pageSectionRepo := pages.NewPageSectionRepo(thePG, log)
	serviceRepo := catalog.NewServiceRepo(thePG, log)
	serviceCategoryRepo := catalog.NewServiceCategoryRepo(thePG, log)
	projectRepo := catalog.NewProjectRepo(thePG, log)
	projectCategoryRepo := catalog.NewProjectCategoryRepo(thePG, log)
	sectorRepo := catalog.NewSectorRepo(thePG, log)
	leadershipRepo := catalog.NewLeadershipRepo(thePG, log)
	teamMemberRepo := catalog.NewTeamMemberRepo(thePG, log)
	projectImageRepo := catalog.NewProjectImageRepo(thePG, log)
	awardRepo := catalog.NewAwardRepo(thePG, log)

	// Mailer. A missing API key downgrades contact notifications to log
	// warnings; submissions still persist.
	var mailer sendgrid.Client
	mailer, err = sendgrid.NewFromEnv(log)
	if err != nil {
		log.Warn("SendGrid init failed, contact notifications disabled", "error", err)
		mailer = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	settingsService := services.NewSettingsService(log, settingsRepo)
	contactService := services.NewContactService(log, contactRepo, settingsRepo, mailer, defaultFromEmail)
	feedbackService := services.NewFeedbackService(log, feedbackRepo, testimonialRepo)
	testimonialService := services.NewTestimonialService(log, testimonialRepo)
	contentService := services.NewContentService(log, navItemRepo, footerLinkRepo, socialLinkRepo, quickStatRepo, officeHourRepo, heroRepo, processStepRepo, whyChooseRepo, partnerRepo, coreValueRepo, timelineEventRepo)
	catalogService := services.NewCatalogService(log, serviceRepo, serviceCategoryRepo, projectRepo, projectCategoryRepo, sectorRepo, leadershipRepo, teamMemberRepo, projectImageRepo, awardRepo)
	pagesService := services.NewPagesService(log, seoRepo, pageRepo, pageSectionRepo)

	// Handlers
	log.Info("Setting up Handlers from main...")
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	contactHandler := handlers.NewContactHandler(contactService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	contentHandler := handlers.NewContentHandler(contentService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	pagesHandler := handlers.NewPagesHandler(pagesService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, adminToken)
	if adminToken == "" {
		log.Warn("ADMIN_API_TOKEN not set, admin routes will reject all requests")
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:                log,
		AuthMiddleware:     authMiddleware,
		CORSOrigins:        corsOrigins,
		SettingsHandler:    settingsHandler,
		ContentHandler:     contentHandler,
		CatalogHandler:     catalogHandler,
		PagesHandler:       pagesHandler,
		ContactHandler:     contactHandler,
		FeedbackHandler:    feedbackHandler,
		TestimonialHandler: testimonialHandler,
	})

	log.Info("Starting HTTP server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("HTTP server exited", "error", err)
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			origins = append(origins, v)
		}
	}
	return origins
}
