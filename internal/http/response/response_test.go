package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/platform/apierr"
	"github.com/saizgar/website-backend/internal/services"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return env
}

func TestRespondServiceErrorMapsAPIError(t *testing.T) {
	c, w := testContext(t)

	RespondServiceError(c, apierr.NotFound("sector %q not found", "hydropower"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusNotFound)
	}
	env := decodeEnvelope(t, w)
	if env.Error.Code != "not_found" {
		t.Fatalf("code: got %q", env.Error.Code)
	}
	if env.Error.Message != `sector "hydropower" not found` {
		t.Fatalf("message: got %q", env.Error.Message)
	}
}

func TestRespondServiceErrorMapsWrappedAPIError(t *testing.T) {
	c, w := testContext(t)

	wrapped := apierr.New(http.StatusConflict, "conflict", errors.New("slug already taken"))
	RespondServiceError(c, wrapped)

	if w.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusConflict)
	}
	if env := decodeEnvelope(t, w); env.Error.Code != "conflict" {
		t.Fatalf("code: got %q", env.Error.Code)
	}
}

func TestRespondServiceErrorMapsValidationError(t *testing.T) {
	c, w := testContext(t)

	RespondServiceError(c, &services.ValidationError{Fields: map[string]string{"name": "required"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
	env := decodeEnvelope(t, w)
	if env.Error.Code != "validation_failed" {
		t.Fatalf("code: got %q", env.Error.Code)
	}
	if env.Error.Fields["name"] != "required" {
		t.Fatalf("fields: got %v", env.Error.Fields)
	}
}

func TestRespondServiceErrorDefaultsTo500(t *testing.T) {
	c, w := testContext(t)

	RespondServiceError(c, errors.New("connection reset"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if env := decodeEnvelope(t, w); env.Error.Code != "internal_error" {
		t.Fatalf("code: got %q", env.Error.Code)
	}
}
