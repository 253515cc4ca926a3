package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// POST /api/contact-submissions
func (ch *ContactHandler) Submit(c *gin.Context) {
	var req services.SubmitContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	sub, err := ch.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"submission": sub})
}

// GET /api/admin/contact-submissions
func (ch *ContactHandler) List(c *gin.Context) {
	subs, err := ch.contactService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"submissions": subs})
}
