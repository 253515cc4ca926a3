package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/platform/apierr"
	"github.com/saizgar/website-backend/internal/services"
)

type APIError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError maps a service-layer error onto the wire. Validation
// errors become a 400 carrying the per-field messages, apierr.Error carries
// its own status, and anything else is a 500.
func RespondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Error: APIError{
				Message: verr.Error(),
				Code:    "validation_failed",
				Fields:  verr.Fields,
			},
		})
		return
	}
	var aerr *apierr.Error
	if errors.As(err, &aerr) {
		RespondError(c, aerr.Status, aerr.Code, aerr)
		return
	}
	RespondError(c, http.StatusInternalServerError, "internal_error", err)
}
