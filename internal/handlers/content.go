package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

// ContentHandler serves the site-chrome endpoints. Public lists return only
// active rows; the admin variants return everything.
type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GET /api/nav-items
func (ch *ContentHandler) ListNavItems(c *gin.Context) {
	rows, err := ch.contentService.ListNavItems(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"nav_items": rows})
}

// GET /api/admin/nav-items
func (ch *ContentHandler) ListAllNavItems(c *gin.Context) {
	rows, err := ch.contentService.ListNavItems(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"nav_items": rows})
}

// POST /api/admin/nav-items
func (ch *ContentHandler) CreateNavItem(c *gin.Context) {
	var req domain.NavItem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateNavItem(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"nav_item": created})
}

// PUT /api/admin/nav-items/:id
func (ch *ContentHandler) UpdateNavItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.NavItem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateNavItem(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"nav_item": updated})
}

// DELETE /api/admin/nav-items/:id
func (ch *ContentHandler) DeleteNavItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteNavItem(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/footer-links?group=
func (ch *ContentHandler) ListFooterLinks(c *gin.Context) {
	rows, err := ch.contentService.ListFooterLinks(c.Request.Context(), true, c.Query("group"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"footer_links": rows})
}

// GET /api/admin/footer-links?group=
func (ch *ContentHandler) ListAllFooterLinks(c *gin.Context) {
	rows, err := ch.contentService.ListFooterLinks(c.Request.Context(), false, c.Query("group"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"footer_links": rows})
}

// POST /api/admin/footer-links
func (ch *ContentHandler) CreateFooterLink(c *gin.Context) {
	var req domain.FooterLink
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateFooterLink(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"footer_link": created})
}

// PUT /api/admin/footer-links/:id
func (ch *ContentHandler) UpdateFooterLink(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.FooterLink
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateFooterLink(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"footer_link": updated})
}

// DELETE /api/admin/footer-links/:id
func (ch *ContentHandler) DeleteFooterLink(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteFooterLink(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/social-links
func (ch *ContentHandler) ListSocialLinks(c *gin.Context) {
	rows, err := ch.contentService.ListSocialLinks(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"social_links": rows})
}

// GET /api/admin/social-links
func (ch *ContentHandler) ListAllSocialLinks(c *gin.Context) {
	rows, err := ch.contentService.ListSocialLinks(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"social_links": rows})
}

// POST /api/admin/social-links
func (ch *ContentHandler) CreateSocialLink(c *gin.Context) {
	var req domain.SocialLink
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateSocialLink(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"social_link": created})
}

// PUT /api/admin/social-links/:id
func (ch *ContentHandler) UpdateSocialLink(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.SocialLink
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateSocialLink(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"social_link": updated})
}

// DELETE /api/admin/social-links/:id
func (ch *ContentHandler) DeleteSocialLink(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteSocialLink(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/quick-stats
func (ch *ContentHandler) ListQuickStats(c *gin.Context) {
	rows, err := ch.contentService.ListQuickStats(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quick_stats": rows})
}

// GET /api/admin/quick-stats
func (ch *ContentHandler) ListAllQuickStats(c *gin.Context) {
	rows, err := ch.contentService.ListQuickStats(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quick_stats": rows})
}

// POST /api/admin/quick-stats
func (ch *ContentHandler) CreateQuickStat(c *gin.Context) {
	var req domain.QuickStat
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateQuickStat(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"quick_stat": created})
}

// PUT /api/admin/quick-stats/:id
func (ch *ContentHandler) UpdateQuickStat(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.QuickStat
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateQuickStat(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quick_stat": updated})
}

// DELETE /api/admin/quick-stats/:id
func (ch *ContentHandler) DeleteQuickStat(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteQuickStat(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/office-hours
func (ch *ContentHandler) ListOfficeHours(c *gin.Context) {
	rows, err := ch.contentService.ListOfficeHours(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"office_hours": rows})
}

// GET /api/admin/office-hours
func (ch *ContentHandler) ListAllOfficeHours(c *gin.Context) {
	rows, err := ch.contentService.ListOfficeHours(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"office_hours": rows})
}

// POST /api/admin/office-hours
func (ch *ContentHandler) CreateOfficeHour(c *gin.Context) {
	var req domain.OfficeHour
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateOfficeHour(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"office_hour": created})
}

// PUT /api/admin/office-hours/:id
func (ch *ContentHandler) UpdateOfficeHour(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.OfficeHour
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateOfficeHour(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"office_hour": updated})
}

// DELETE /api/admin/office-hours/:id
func (ch *ContentHandler) DeleteOfficeHour(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteOfficeHour(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/heroes
func (ch *ContentHandler) ListHeroes(c *gin.Context) {
	rows, err := ch.contentService.ListHeroes(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"heroes": rows})
}

// GET /api/admin/heroes
func (ch *ContentHandler) ListAllHeroes(c *gin.Context) {
	rows, err := ch.contentService.ListHeroes(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"heroes": rows})
}

// POST /api/admin/heroes
func (ch *ContentHandler) CreateHero(c *gin.Context) {
	var req domain.Hero
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateHero(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"hero": created})
}

// PUT /api/admin/heroes/:id
func (ch *ContentHandler) UpdateHero(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Hero
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateHero(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"hero": updated})
}

// DELETE /api/admin/heroes/:id
func (ch *ContentHandler) DeleteHero(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteHero(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/process-steps
func (ch *ContentHandler) ListProcessSteps(c *gin.Context) {
	rows, err := ch.contentService.ListProcessSteps(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"steps": rows})
}

// GET /api/admin/process-steps
func (ch *ContentHandler) ListAllProcessSteps(c *gin.Context) {
	rows, err := ch.contentService.ListProcessSteps(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"steps": rows})
}

// POST /api/admin/process-steps
func (ch *ContentHandler) CreateProcessStep(c *gin.Context) {
	var req domain.ServiceProcessStep
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateProcessStep(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"step": created})
}

// PUT /api/admin/process-steps/:id
func (ch *ContentHandler) UpdateProcessStep(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.ServiceProcessStep
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateProcessStep(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"step": updated})
}

// DELETE /api/admin/process-steps/:id
func (ch *ContentHandler) DeleteProcessStep(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteProcessStep(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/why-choose
func (ch *ContentHandler) ListWhyChooseItems(c *gin.Context) {
	rows, err := ch.contentService.ListWhyChooseItems(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": rows})
}

// GET /api/admin/why-choose
func (ch *ContentHandler) ListAllWhyChooseItems(c *gin.Context) {
	rows, err := ch.contentService.ListWhyChooseItems(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": rows})
}

// POST /api/admin/why-choose
func (ch *ContentHandler) CreateWhyChooseItem(c *gin.Context) {
	var req domain.WhyChooseItem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateWhyChooseItem(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"item": created})
}

// PUT /api/admin/why-choose/:id
func (ch *ContentHandler) UpdateWhyChooseItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.WhyChooseItem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateWhyChooseItem(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item": updated})
}

// DELETE /api/admin/why-choose/:id
func (ch *ContentHandler) DeleteWhyChooseItem(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteWhyChooseItem(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/partners
func (ch *ContentHandler) ListPartners(c *gin.Context) {
	rows, err := ch.contentService.ListPartners(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"partners": rows})
}

// GET /api/admin/partners
func (ch *ContentHandler) ListAllPartners(c *gin.Context) {
	rows, err := ch.contentService.ListPartners(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"partners": rows})
}

// POST /api/admin/partners
func (ch *ContentHandler) CreatePartner(c *gin.Context) {
	var req domain.Partner
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"partner": created})
}

// PUT /api/admin/partners/:id
func (ch *ContentHandler) UpdatePartner(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Partner
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdatePartner(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"partner": updated})
}

// DELETE /api/admin/partners/:id
func (ch *ContentHandler) DeletePartner(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeletePartner(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/core-values
func (ch *ContentHandler) ListCoreValues(c *gin.Context) {
	rows, err := ch.contentService.ListCoreValues(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"values": rows})
}

// GET /api/admin/core-values
func (ch *ContentHandler) ListAllCoreValues(c *gin.Context) {
	rows, err := ch.contentService.ListCoreValues(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"values": rows})
}

// POST /api/admin/core-values
func (ch *ContentHandler) CreateCoreValue(c *gin.Context) {
	var req domain.CoreValue
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateCoreValue(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"value": created})
}

// PUT /api/admin/core-values/:id
func (ch *ContentHandler) UpdateCoreValue(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.CoreValue
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateCoreValue(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"value": updated})
}

// DELETE /api/admin/core-values/:id
func (ch *ContentHandler) DeleteCoreValue(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteCoreValue(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/timeline-events
func (ch *ContentHandler) ListTimelineEvents(c *gin.Context) {
	rows, err := ch.contentService.ListTimelineEvents(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": rows})
}

// GET /api/admin/timeline-events
func (ch *ContentHandler) ListAllTimelineEvents(c *gin.Context) {
	rows, err := ch.contentService.ListTimelineEvents(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": rows})
}

// POST /api/admin/timeline-events
func (ch *ContentHandler) CreateTimelineEvent(c *gin.Context) {
	var req domain.TimelineEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.contentService.CreateTimelineEvent(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"event": created})
}

// PUT /api/admin/timeline-events/:id
func (ch *ContentHandler) UpdateTimelineEvent(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.TimelineEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.contentService.UpdateTimelineEvent(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"event": updated})
}

// DELETE /api/admin/timeline-events/:id
func (ch *ContentHandler) DeleteTimelineEvent(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.contentService.DeleteTimelineEvent(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
