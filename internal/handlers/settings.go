package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GET /api/site-settings
func (sh *SettingsHandler) Get(c *gin.Context) {
	siteSettings, err := sh.settingsService.Get(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"settings": siteSettings})
}

// PUT /api/admin/site-settings
func (sh *SettingsHandler) Upsert(c *gin.Context) {
	var req domain.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	saved, err := sh.settingsService.Upsert(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"settings": saved})
}
