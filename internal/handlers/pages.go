package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

// PagesHandler serves editable pages, their sections and the SEO singleton.
type PagesHandler struct {
	pagesService services.PagesService
}

func NewPagesHandler(pagesService services.PagesService) *PagesHandler {
	return &PagesHandler{pagesService: pagesService}
}

// GET /api/seo
func (ph *PagesHandler) GetSEO(c *gin.Context) {
	seo, err := ph.pagesService.GetSEO(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"seo": seo})
}

// PUT /api/admin/seo
func (ph *PagesHandler) UpsertSEO(c *gin.Context) {
	var req domain.SEO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updated, err := ph.pagesService.UpsertSEO(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"seo": updated})
}

// GET /api/pages
func (ph *PagesHandler) ListPages(c *gin.Context) {
	rows, err := ph.pagesService.ListPages(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"pages": rows})
}

// GET /api/pages/:slug
func (ph *PagesHandler) GetPageBySlug(c *gin.Context) {
	p, err := ph.pagesService.GetPageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"page": p})
}

// GET /api/admin/pages
func (ph *PagesHandler) ListAllPages(c *gin.Context) {
	rows, err := ph.pagesService.ListPages(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"pages": rows})
}

// POST /api/admin/pages
func (ph *PagesHandler) CreatePage(c *gin.Context) {
	var req domain.Page
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ph.pagesService.CreatePage(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"page": created})
}

// PUT /api/admin/pages/:id
func (ph *PagesHandler) UpdatePage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Page
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ph.pagesService.UpdatePage(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"page": updated})
}

// DELETE /api/admin/pages/:id
func (ph *PagesHandler) DeletePage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ph.pagesService.DeletePage(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/page-sections?page=
func (ph *PagesHandler) ListPageSections(c *gin.Context) {
	pageID, err := uuidQuery(c, "page")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := ph.pagesService.ListPageSections(c.Request.Context(), pageID, true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sections": rows})
}

// GET /api/admin/page-sections?page=
func (ph *PagesHandler) ListAllPageSections(c *gin.Context) {
	pageID, err := uuidQuery(c, "page")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := ph.pagesService.ListPageSections(c.Request.Context(), pageID, false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sections": rows})
}

// POST /api/admin/page-sections
func (ph *PagesHandler) CreatePageSection(c *gin.Context) {
	var req domain.PageSection
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ph.pagesService.CreatePageSection(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"section": created})
}

// PUT /api/admin/page-sections/:id
func (ph *PagesHandler) UpdatePageSection(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.PageSection
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ph.pagesService.UpdatePageSection(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"section": updated})
}

// DELETE /api/admin/page-sections/:id
func (ph *PagesHandler) DeletePageSection(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ph.pagesService.DeletePageSection(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
