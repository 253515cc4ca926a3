package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

// CatalogHandler serves the engineering catalog endpoints. Missing slugs
// surface as a 404 from the service layer; public lists are restricted to
// active rows.
type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/services
func (ch *CatalogHandler) ListServices(c *gin.Context) {
	rows, err := ch.catalogService.ListServices(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"services": rows})
}

// GET /api/services/:slug
func (ch *CatalogHandler) GetServiceBySlug(c *gin.Context) {
	svc, err := ch.catalogService.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"service": svc})
}

// GET /api/admin/services
func (ch *CatalogHandler) ListAllServices(c *gin.Context) {
	rows, err := ch.catalogService.ListServices(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"services": rows})
}

// POST /api/admin/services
func (ch *CatalogHandler) CreateService(c *gin.Context) {
	var req domain.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateService(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"service": created})
}

// PUT /api/admin/services/:id
func (ch *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateService(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"service": updated})
}

// DELETE /api/admin/services/:id
func (ch *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/service-categories
func (ch *CatalogHandler) ListServiceCategories(c *gin.Context) {
	rows, err := ch.catalogService.ListServiceCategories(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": rows})
}

// GET /api/admin/service-categories
func (ch *CatalogHandler) ListAllServiceCategories(c *gin.Context) {
	rows, err := ch.catalogService.ListServiceCategories(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": rows})
}

// POST /api/admin/service-categories
func (ch *CatalogHandler) CreateServiceCategory(c *gin.Context) {
	var req domain.ServiceCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateServiceCategory(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"category": created})
}

// PUT /api/admin/service-categories/:id
func (ch *CatalogHandler) UpdateServiceCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.ServiceCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateServiceCategory(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": updated})
}

// DELETE /api/admin/service-categories/:id
func (ch *CatalogHandler) DeleteServiceCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteServiceCategory(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/projects?featured=
func (ch *CatalogHandler) ListProjects(c *gin.Context) {
	featured, err := boolQuery(c, "featured")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := ch.catalogService.ListProjects(c.Request.Context(), true, featured != nil && *featured)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": rows})
}

// GET /api/projects/:slug
func (ch *CatalogHandler) GetProjectBySlug(c *gin.Context) {
	p, err := ch.catalogService.GetProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"project": p})
}

// GET /api/admin/projects
func (ch *CatalogHandler) ListAllProjects(c *gin.Context) {
	rows, err := ch.catalogService.ListProjects(c.Request.Context(), false, false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": rows})
}

// POST /api/admin/projects
func (ch *CatalogHandler) CreateProject(c *gin.Context) {
	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"project": created})
}

// PUT /api/admin/projects/:id
func (ch *CatalogHandler) UpdateProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateProject(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"project": updated})
}

// DELETE /api/admin/projects/:id
func (ch *CatalogHandler) DeleteProject(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteProject(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/project-categories
func (ch *CatalogHandler) ListProjectCategories(c *gin.Context) {
	rows, err := ch.catalogService.ListProjectCategories(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": rows})
}

// GET /api/admin/project-categories
func (ch *CatalogHandler) ListAllProjectCategories(c *gin.Context) {
	rows, err := ch.catalogService.ListProjectCategories(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": rows})
}

// POST /api/admin/project-categories
func (ch *CatalogHandler) CreateProjectCategory(c *gin.Context) {
	var req domain.ProjectCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateProjectCategory(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"category": created})
}

// PUT /api/admin/project-categories/:id
func (ch *CatalogHandler) UpdateProjectCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.ProjectCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateProjectCategory(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": updated})
}

// DELETE /api/admin/project-categories/:id
func (ch *CatalogHandler) DeleteProjectCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteProjectCategory(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/sectors
func (ch *CatalogHandler) ListSectors(c *gin.Context) {
	rows, err := ch.catalogService.ListSectors(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sectors": rows})
}

// GET /api/sectors/:slug
func (ch *CatalogHandler) GetSectorBySlug(c *gin.Context) {
	s, err := ch.catalogService.GetSectorBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sector": s})
}

// GET /api/admin/sectors
func (ch *CatalogHandler) ListAllSectors(c *gin.Context) {
	rows, err := ch.catalogService.ListSectors(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sectors": rows})
}

// POST /api/admin/sectors
func (ch *CatalogHandler) CreateSector(c *gin.Context) {
	var req domain.Sector
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateSector(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"sector": created})
}

// PUT /api/admin/sectors/:id
func (ch *CatalogHandler) UpdateSector(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Sector
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateSector(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sector": updated})
}

// DELETE /api/admin/sectors/:id
func (ch *CatalogHandler) DeleteSector(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteSector(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/leadership
func (ch *CatalogHandler) ListLeadership(c *gin.Context) {
	rows, err := ch.catalogService.ListLeadership(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"leadership": rows})
}

// GET /api/admin/leadership
func (ch *CatalogHandler) ListAllLeadership(c *gin.Context) {
	rows, err := ch.catalogService.ListLeadership(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"leadership": rows})
}

// POST /api/admin/leadership
func (ch *CatalogHandler) CreateLeadership(c *gin.Context) {
	var req domain.Leadership
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateLeadership(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"member": created})
}

// PUT /api/admin/leadership/:id
func (ch *CatalogHandler) UpdateLeadership(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Leadership
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateLeadership(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"member": updated})
}

// DELETE /api/admin/leadership/:id
func (ch *CatalogHandler) DeleteLeadership(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteLeadership(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/team
func (ch *CatalogHandler) ListTeamMembers(c *gin.Context) {
	rows, err := ch.catalogService.ListTeamMembers(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"team": rows})
}

// GET /api/admin/team
func (ch *CatalogHandler) ListAllTeamMembers(c *gin.Context) {
	rows, err := ch.catalogService.ListTeamMembers(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"team": rows})
}

// POST /api/admin/team
func (ch *CatalogHandler) CreateTeamMember(c *gin.Context) {
	var req domain.TeamMember
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateTeamMember(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"member": created})
}

// PUT /api/admin/team/:id
func (ch *CatalogHandler) UpdateTeamMember(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.TeamMember
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateTeamMember(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"member": updated})
}

// DELETE /api/admin/team/:id
func (ch *CatalogHandler) DeleteTeamMember(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteTeamMember(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/project-images?project=
func (ch *CatalogHandler) ListProjectImages(c *gin.Context) {
	projectID, err := uuidQuery(c, "project")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := ch.catalogService.ListProjectImages(c.Request.Context(), projectID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"images": rows})
}

// POST /api/admin/project-images
func (ch *CatalogHandler) CreateProjectImage(c *gin.Context) {
	var req domain.ProjectImage
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateProjectImage(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"image": created})
}

// PUT /api/admin/project-images/:id
func (ch *CatalogHandler) UpdateProjectImage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.ProjectImage
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateProjectImage(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"image": updated})
}

// DELETE /api/admin/project-images/:id
func (ch *CatalogHandler) DeleteProjectImage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteProjectImage(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/awards
func (ch *CatalogHandler) ListAwards(c *gin.Context) {
	rows, err := ch.catalogService.ListAwards(c.Request.Context(), true)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"awards": rows})
}

// GET /api/admin/awards
func (ch *CatalogHandler) ListAllAwards(c *gin.Context) {
	rows, err := ch.catalogService.ListAwards(c.Request.Context(), false)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"awards": rows})
}

// POST /api/admin/awards
func (ch *CatalogHandler) CreateAward(c *gin.Context) {
	var req domain.Award
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := ch.catalogService.CreateAward(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"award": created})
}

// PUT /api/admin/awards/:id
func (ch *CatalogHandler) UpdateAward(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Award
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := ch.catalogService.UpdateAward(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"award": updated})
}

// DELETE /api/admin/awards/:id
func (ch *CatalogHandler) DeleteAward(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ch.catalogService.DeleteAward(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
