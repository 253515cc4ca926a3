package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/services"
)

type stubContactService struct{}

func (s *stubContactService) Submit(ctx context.Context, in services.SubmitContactInput) (*domain.ContactSubmission, error) {
	verr := &services.ValidationError{Fields: map[string]string{}}
	if strings.TrimSpace(in.Name) == "" {
		verr.Fields["name"] = "required"
	}
	if strings.TrimSpace(in.Email) == "" {
		verr.Fields["email"] = "required"
	}
	if strings.TrimSpace(in.Message) == "" {
		verr.Fields["message"] = "required"
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return &domain.ContactSubmission{Name: in.Name, Email: in.Email, Message: in.Message}, nil
}

func (s *stubContactService) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return nil, nil
}

func contactTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewContactHandler(&stubContactService{})
	router.POST("/api/contact-submissions", handler.Submit)
	return router
}

func TestContactSubmitReturns201(t *testing.T) {
	router := contactTestRouter()

	body := `{"name":"Jordan","email":"jordan@example.com","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestContactSubmitReturns400WithFieldMap(t *testing.T) {
	router := contactTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Error.Code != "validation_failed" {
		t.Fatalf("code: %q", envelope.Error.Code)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := envelope.Error.Fields[field]; !ok {
			t.Errorf("expected field %q in %v", field, envelope.Error.Fields)
		}
	}
}
