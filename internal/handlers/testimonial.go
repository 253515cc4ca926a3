package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

type TestimonialHandler struct {
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(testimonialService services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// GET /api/testimonials
func (th *TestimonialHandler) ListPublic(c *gin.Context) {
	rows, err := th.testimonialService.ListPublic(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"testimonials": rows})
}

// GET /api/admin/testimonials
func (th *TestimonialHandler) ListAll(c *gin.Context) {
	rows, err := th.testimonialService.ListAll(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"testimonials": rows})
}

// POST /api/admin/testimonials
func (th *TestimonialHandler) Create(c *gin.Context) {
	var req domain.Testimonial
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := th.testimonialService.Create(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"testimonial": created})
}

// PUT /api/admin/testimonials/:id
func (th *TestimonialHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req domain.Testimonial
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.ID = id
	updated, err := th.testimonialService.Update(c.Request.Context(), &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"testimonial": updated})
}

// DELETE /api/admin/testimonials/:id
func (th *TestimonialHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := th.testimonialService.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
