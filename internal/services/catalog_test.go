package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/apierr"
	"gorm.io/gorm"
)

type fakeServiceRepo struct {
	bySlug map[string]*domain.Service
}

func (f *fakeServiceRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*domain.Service, error) {
	return f.bySlug[slug], nil
}
func (f *fakeServiceRepo) Create(ctx context.Context, tx *gorm.DB, svc *domain.Service) (*domain.Service, error) {
	return svc, nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, tx *gorm.DB, svc *domain.Service) (*domain.Service, error) {
	return svc, nil
}
func (f *fakeServiceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return nil
}

func TestGetServiceBySlugMissReturns404(t *testing.T) {
	repo := &fakeServiceRepo{bySlug: map[string]*domain.Service{}}
	svc := NewCatalogService(testutil.Logger(t), repo, nil, nil, nil, nil, nil, nil, nil, nil)

	_, err := svc.GetServiceBySlug(context.Background(), "no-such-service")
	if err == nil {
		t.Fatal("expected error for missing slug")
	}
	var aerr *apierr.Error
	if !errors.As(err, &aerr) {
		t.Fatalf("error type: %T", err)
	}
	if aerr.Status != http.StatusNotFound || aerr.Code != "not_found" {
		t.Fatalf("status=%d code=%q", aerr.Status, aerr.Code)
	}
}

func TestGetServiceBySlugHit(t *testing.T) {
	want := &domain.Service{ID: uuid.New(), Title: "Structural Design", Slug: "structural-design"}
	repo := &fakeServiceRepo{bySlug: map[string]*domain.Service{want.Slug: want}}
	svc := NewCatalogService(testutil.Logger(t), repo, nil, nil, nil, nil, nil, nil, nil, nil)

	got, err := svc.GetServiceBySlug(context.Background(), want.Slug)
	if err != nil {
		t.Fatalf("GetServiceBySlug: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("got %v, want %v", got.ID, want.ID)
	}
}
