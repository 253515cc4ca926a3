package server

import (
	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/handlers"
	"github.com/saizgar/website-backend/internal/middleware"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log                *logger.Logger
	AuthMiddleware     *middleware.AuthMiddleware
	CORSOrigins        []string
	SettingsHandler    *handlers.SettingsHandler
	ContentHandler     *handlers.ContentHandler
	CatalogHandler     *handlers.CatalogHandler
	PagesHandler       *handlers.PagesHandler
	ContactHandler     *handlers.ContactHandler
	FeedbackHandler    *handlers.FeedbackHandler
	TestimonialHandler *handlers.TestimonialHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Public    ||
	// ===============
	api := router.Group("/api")
	{
		api.GET("/site-settings", cfg.SettingsHandler.Get)
		api.GET("/seo", cfg.PagesHandler.GetSEO)

		api.GET("/nav-items", cfg.ContentHandler.ListNavItems)
		api.GET("/footer-links", cfg.ContentHandler.ListFooterLinks)
		api.GET("/social-links", cfg.ContentHandler.ListSocialLinks)
		api.GET("/quick-stats", cfg.ContentHandler.ListQuickStats)
		api.GET("/office-hours", cfg.ContentHandler.ListOfficeHours)
		api.GET("/heroes", cfg.ContentHandler.ListHeroes)
		api.GET("/process-steps", cfg.ContentHandler.ListProcessSteps)
		api.GET("/why-choose", cfg.ContentHandler.ListWhyChooseItems)
		api.GET("/partners", cfg.ContentHandler.ListPartners)
		api.GET("/core-values", cfg.ContentHandler.ListCoreValues)
		api.GET("/timeline-events", cfg.ContentHandler.ListTimelineEvents)

		api.GET("/pages", cfg.PagesHandler.ListPages)
		api.GET("/pages/:slug", cfg.PagesHandler.GetPageBySlug)
		api.GET("/page-sections", cfg.PagesHandler.ListPageSections)

		api.GET("/services", cfg.CatalogHandler.ListServices)
		api.GET("/services/:slug", cfg.CatalogHandler.GetServiceBySlug)
		api.GET("/service-categories", cfg.CatalogHandler.ListServiceCategories)
		api.GET("/projects", cfg.CatalogHandler.ListProjects)
		api.GET("/projects/:slug", cfg.CatalogHandler.GetProjectBySlug)
		api.GET("/project-categories", cfg.CatalogHandler.ListProjectCategories)
		api.GET("/sectors", cfg.CatalogHandler.ListSectors)
		api.GET("/sectors/:slug", cfg.CatalogHandler.GetSectorBySlug)
		api.GET("/leadership", cfg.CatalogHandler.ListLeadership)
		api.GET("/team", cfg.CatalogHandler.ListTeamMembers)
		api.GET("/project-images", cfg.CatalogHandler.ListProjectImages)
		api.GET("/awards", cfg.CatalogHandler.ListAwards)

		api.GET("/testimonials", cfg.TestimonialHandler.ListPublic)

		api.POST("/contact-submissions", cfg.ContactHandler.Submit)
		api.POST("/client-feedback", cfg.FeedbackHandler.Submit)
	}

	// ===============
	// || Admin     ||
	// ===============
	admin := router.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.PUT("/site-settings", cfg.SettingsHandler.Upsert)
		admin.PUT("/seo", cfg.PagesHandler.UpsertSEO)

		admin.GET("/nav-items", cfg.ContentHandler.ListAllNavItems)
		admin.POST("/nav-items", cfg.ContentHandler.CreateNavItem)
		admin.PUT("/nav-items/:id", cfg.ContentHandler.UpdateNavItem)
		admin.DELETE("/nav-items/:id", cfg.ContentHandler.DeleteNavItem)

		admin.GET("/footer-links", cfg.ContentHandler.ListAllFooterLinks)
		admin.POST("/footer-links", cfg.ContentHandler.CreateFooterLink)
		admin.PUT("/footer-links/:id", cfg.ContentHandler.UpdateFooterLink)
		admin.DELETE("/footer-links/:id", cfg.ContentHandler.DeleteFooterLink)

		admin.GET("/social-links", cfg.ContentHandler.ListAllSocialLinks)
		admin.POST("/social-links", cfg.ContentHandler.CreateSocialLink)
		admin.PUT("/social-links/:id", cfg.ContentHandler.UpdateSocialLink)
		admin.DELETE("/social-links/:id", cfg.ContentHandler.DeleteSocialLink)

		admin.GET("/quick-stats", cfg.ContentHandler.ListAllQuickStats)
		admin.POST("/quick-stats", cfg.ContentHandler.CreateQuickStat)
		admin.PUT("/quick-stats/:id", cfg.ContentHandler.UpdateQuickStat)
		admin.DELETE("/quick-stats/:id", cfg.ContentHandler.DeleteQuickStat)

		admin.GET("/office-hours", cfg.ContentHandler.ListAllOfficeHours)
		admin.POST("/office-hours", cfg.ContentHandler.CreateOfficeHour)
		admin.PUT("/office-hours/:id", cfg.ContentHandler.UpdateOfficeHour)
		admin.DELETE("/office-hours/:id", cfg.ContentHandler.DeleteOfficeHour)

		admin.GET("/heroes", cfg.ContentHandler.ListAllHeroes)
		admin.POST("/heroes", cfg.ContentHandler.CreateHero)
		admin.PUT("/heroes/:id", cfg.ContentHandler.UpdateHero)
		admin.DELETE("/heroes/:id", cfg.ContentHandler.DeleteHero)

		admin.GET("/process-steps", cfg.ContentHandler.ListAllProcessSteps)
		admin.POST("/process-steps", cfg.ContentHandler.CreateProcessStep)
		admin.PUT("/process-steps/:id", cfg.ContentHandler.UpdateProcessStep)
		admin.DELETE("/process-steps/:id", cfg.ContentHandler.DeleteProcessStep)

		admin.GET("/why-choose", cfg.ContentHandler.ListAllWhyChooseItems)
		admin.POST("/why-choose", cfg.ContentHandler.CreateWhyChooseItem)
		admin.PUT("/why-choose/:id", cfg.ContentHandler.UpdateWhyChooseItem)
		admin.DELETE("/why-choose/:id", cfg.ContentHandler.DeleteWhyChooseItem)

		admin.GET("/partners", cfg.ContentHandler.ListAllPartners)
		admin.POST("/partners", cfg.ContentHandler.CreatePartner)
		admin.PUT("/partners/:id", cfg.ContentHandler.UpdatePartner)
		admin.DELETE("/partners/:id", cfg.ContentHandler.DeletePartner)

		admin.GET("/core-values", cfg.ContentHandler.ListAllCoreValues)
		admin.POST("/core-values", cfg.ContentHandler.CreateCoreValue)
		admin.PUT("/core-values/:id", cfg.ContentHandler.UpdateCoreValue)
		admin.DELETE("/core-values/:id", cfg.ContentHandler.DeleteCoreValue)

		admin.GET("/timeline-events", cfg.ContentHandler.ListAllTimelineEvents)
		admin.POST("/timeline-events", cfg.ContentHandler.CreateTimelineEvent)
		admin.PUT("/timeline-events/:id", cfg.ContentHandler.UpdateTimelineEvent)
		admin.DELETE("/timeline-events/:id", cfg.ContentHandler.DeleteTimelineEvent)

		admin.GET("/pages", cfg.PagesHandler.ListAllPages)
		admin.POST("/pages", cfg.PagesHandler.CreatePage)
		admin.PUT("/pages/:id", cfg.PagesHandler.UpdatePage)
		admin.DELETE("/pages/:id", cfg.PagesHandler.DeletePage)

		admin.GET("/page-sections", cfg.PagesHandler.ListAllPageSections)
		admin.POST("/page-sections", cfg.PagesHandler.CreatePageSection)
		admin.PUT("/page-sections/:id", cfg.PagesHandler.UpdatePageSection)
		admin.DELETE("/page-sections/:id", cfg.PagesHandler.DeletePageSection)

		admin.GET("/services", cfg.CatalogHandler.ListAllServices)
		admin.POST("/services", cfg.CatalogHandler.CreateService)
		admin.PUT("/services/:id", cfg.CatalogHandler.UpdateService)
		admin.DELETE("/services/:id", cfg.CatalogHandler.DeleteService)

		admin.GET("/service-categories", cfg.CatalogHandler.ListAllServiceCategories)
		admin.POST("/service-categories", cfg.CatalogHandler.CreateServiceCategory)
		admin.PUT("/service-categories/:id", cfg.CatalogHandler.UpdateServiceCategory)
		admin.DELETE("/service-categories/:id", cfg.CatalogHandler.DeleteServiceCategory)

		admin.GET("/projects", cfg.CatalogHandler.ListAllProjects)
		admin.POST("/projects", cfg.CatalogHandler.CreateProject)
		admin.PUT("/projects/:id", cfg.CatalogHandler.UpdateProject)
		admin.DELETE("/projects/:id", cfg.CatalogHandler.DeleteProject)

		admin.GET("/project-categories", cfg.CatalogHandler.ListAllProjectCategories)
		admin.POST("/project-categories", cfg.CatalogHandler.CreateProjectCategory)
		admin.PUT("/project-categories/:id", cfg.CatalogHandler.UpdateProjectCategory)
		admin.DELETE("/project-categories/:id", cfg.CatalogHandler.DeleteProjectCategory)

		admin.GET("/sectors", cfg.CatalogHandler.ListAllSectors)
		admin.POST("/sectors", cfg.CatalogHandler.CreateSector)
		admin.PUT("/sectors/:id", cfg.CatalogHandler.UpdateSector)
		admin.DELETE("/sectors/:id", cfg.CatalogHandler.DeleteSector)

		admin.GET("/leadership", cfg.CatalogHandler.ListAllLeadership)
		admin.POST("/leadership", cfg.CatalogHandler.CreateLeadership)
		admin.PUT("/leadership/:id", cfg.CatalogHandler.UpdateLeadership)
		admin.DELETE("/leadership/:id", cfg.CatalogHandler.DeleteLeadership)

		admin.GET("/team", cfg.CatalogHandler.ListAllTeamMembers)
		admin.POST("/team", cfg.CatalogHandler.CreateTeamMember)
		admin.PUT("/team/:id", cfg.CatalogHandler.UpdateTeamMember)
		admin.DELETE("/team/:id", cfg.CatalogHandler.DeleteTeamMember)

		admin.GET("/project-images", cfg.CatalogHandler.ListProjectImages)
		admin.POST("/project-images", cfg.CatalogHandler.CreateProjectImage)
		admin.PUT("/project-images/:id", cfg.CatalogHandler.UpdateProjectImage)
		admin.DELETE("/project-images/:id", cfg.CatalogHandler.DeleteProjectImage)

		admin.GET("/awards", cfg.CatalogHandler.ListAllAwards)
		admin.POST("/awards", cfg.CatalogHandler.CreateAward)
		admin.PUT("/awards/:id", cfg.CatalogHandler.UpdateAward)
		admin.DELETE("/awards/:id", cfg.CatalogHandler.DeleteAward)

		admin.GET("/testimonials", cfg.TestimonialHandler.ListAll)
		admin.POST("/testimonials", cfg.TestimonialHandler.Create)
		admin.PUT("/testimonials/:id", cfg.TestimonialHandler.Update)
		admin.DELETE("/testimonials/:id", cfg.TestimonialHandler.Delete)

		admin.GET("/contact-submissions", cfg.ContactHandler.List)

		admin.GET("/client-feedback", cfg.FeedbackHandler.List)
		admin.POST("/client-feedback/promote", cfg.FeedbackHandler.Promote)
		admin.POST("/client-feedback/mark-reviewed", cfg.FeedbackHandler.MarkReviewed)
	}

	return router
}
