package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/data/repos/pages"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/apierr"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

// PagesService covers editable site pages, their sections and the SEO
// singleton.
type PagesService interface {
	// GetSEO returns the effective SEO row, or (nil, nil) when none exists.
	GetSEO(ctx context.Context) (*domain.SEO, error)
	// UpsertSEO updates the first SEO row, creating it when absent.
	UpsertSEO(ctx context.Context, in *domain.SEO) (*domain.SEO, error)

	ListPages(ctx context.Context, activeOnly bool) ([]*domain.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error)
	CreatePage(ctx context.Context, p *domain.Page) (*domain.Page, error)
	UpdatePage(ctx context.Context, p *domain.Page) (*domain.Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error

	ListPageSections(ctx context.Context, pageID *uuid.UUID, activeOnly bool) ([]*domain.PageSection, error)
	CreatePageSection(ctx context.Context, s *domain.PageSection) (*domain.PageSection, error)
	UpdatePageSection(ctx context.Context, s *domain.PageSection) (*domain.PageSection, error)
	DeletePageSection(ctx context.Context, id uuid.UUID) error
}

type pagesService struct {
	log         *logger.Logger
	seoRepo     pages.SEORepo
	pageRepo    pages.PageRepo
	sectionRepo pages.PageSectionRepo
}

func NewPagesService(
	log *logger.Logger,
	seoRepo pages.SEORepo,
	pageRepo pages.PageRepo,
	sectionRepo pages.PageSectionRepo,
) PagesService {
	serviceLog := log.With("service", "PagesService")
	return &pagesService{
		log:         serviceLog,
		seoRepo:     seoRepo,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
	}
}

func (ps *pagesService) GetSEO(ctx context.Context) (*domain.SEO, error) {
	return ps.seoRepo.First(ctx, nil)
}

func (ps *pagesService) UpsertSEO(ctx context.Context, in *domain.SEO) (*domain.SEO, error) {
	verr := newValidationError()
	if strings.TrimSpace(in.PageTitle) == "" {
		verr.add("page_title", "required")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	existing, err := ps.seoRepo.First(ctx, nil)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return ps.seoRepo.Create(ctx, nil, in)
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	return ps.seoRepo.Update(ctx, nil, in)
}

func (ps *pagesService) ListPages(ctx context.Context, activeOnly bool) ([]*domain.Page, error) {
	return ps.pageRepo.List(ctx, nil, activeOnly)
}

func (ps *pagesService) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	p, err := ps.pageRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound("page %q not found", slug)
	}
	return p, nil
}

func (ps *pagesService) CreatePage(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	return ps.pageRepo.Create(ctx, nil, p)
}
func (ps *pagesService) UpdatePage(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	return ps.pageRepo.Update(ctx, nil, p)
}
func (ps *pagesService) DeletePage(ctx context.Context, id uuid.UUID) error {
	return ps.pageRepo.Delete(ctx, nil, id)
}

func (ps *pagesService) ListPageSections(ctx context.Context, pageID *uuid.UUID, activeOnly bool) ([]*domain.PageSection, error) {
	return ps.sectionRepo.List(ctx, nil, pageID, activeOnly)
}
func (ps *pagesService) CreatePageSection(ctx context.Context, s *domain.PageSection) (*domain.PageSection, error) {
	return ps.sectionRepo.Create(ctx, nil, s)
}
func (ps *pagesService) UpdatePageSection(ctx context.Context, s *domain.PageSection) (*domain.PageSection, error) {
	return ps.sectionRepo.Update(ctx, nil, s)
}
func (ps *pagesService) DeletePageSection(ctx context.Context, id uuid.UUID) error {
	return ps.sectionRepo.Delete(ctx, nil, id)
}
