package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/data/repos/feedback"
	"github.com/saizgar/website-backend/internal/http/response"
	"github.com/saizgar/website-backend/internal/services"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// POST /api/client-feedback
func (fh *FeedbackHandler) Submit(c *gin.Context) {
	var req services.SubmitFeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	fb, err := fh.feedbackService.Submit(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"feedback": fb})
}

// GET /api/admin/client-feedback?reviewed=&approved=
func (fh *FeedbackHandler) List(c *gin.Context) {
	reviewed, err := boolQuery(c, "reviewed")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	approved, err := boolQuery(c, "approved")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	rows, err := fh.feedbackService.List(c.Request.Context(), feedback.ListFilter{
		IsReviewed: reviewed,
		IsApproved: approved,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"feedback": rows})
}

// POST /api/admin/client-feedback/promote
// body: { "ids": ["..."] }
func (fh *FeedbackHandler) Promote(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := fh.feedbackService.Promote(c.Request.Context(), req.IDs)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// POST /api/admin/client-feedback/mark-reviewed
// body: { "ids": ["..."] }
func (fh *FeedbackHandler) MarkReviewed(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	updated, err := fh.feedbackService.MarkReviewed(c.Request.Context(), req.IDs)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"updated": updated})
}
