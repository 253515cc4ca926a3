package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/data/repos/catalog"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/apierr"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

// CatalogService covers the engineering catalog: services, projects, their
// categories, sectors, team, awards and leadership. Slug lookups fail with a
// 404 apierr.Error when no row matches.
type CatalogService interface {
	ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	ListServiceCategories(ctx context.Context, activeOnly bool) ([]*domain.ServiceCategory, error)
	CreateServiceCategory(ctx context.Context, c *domain.ServiceCategory) (*domain.ServiceCategory, error)
	UpdateServiceCategory(ctx context.Context, c *domain.ServiceCategory) (*domain.ServiceCategory, error)
	DeleteServiceCategory(ctx context.Context, id uuid.UUID) error

	ListProjects(ctx context.Context, activeOnly, featuredOnly bool) ([]*domain.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, p *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	ListProjectCategories(ctx context.Context, activeOnly bool) ([]*domain.ProjectCategory, error)
	CreateProjectCategory(ctx context.Context, c *domain.ProjectCategory) (*domain.ProjectCategory, error)
	UpdateProjectCategory(ctx context.Context, c *domain.ProjectCategory) (*domain.ProjectCategory, error)
	DeleteProjectCategory(ctx context.Context, id uuid.UUID) error

	ListSectors(ctx context.Context, activeOnly bool) ([]*domain.Sector, error)
	GetSectorBySlug(ctx context.Context, slug string) (*domain.Sector, error)
	CreateSector(ctx context.Context, s *domain.Sector) (*domain.Sector, error)
	UpdateSector(ctx context.Context, s *domain.Sector) (*domain.Sector, error)
	DeleteSector(ctx context.Context, id uuid.UUID) error

	ListLeadership(ctx context.Context, activeOnly bool) ([]*domain.Leadership, error)
	CreateLeadership(ctx context.Context, l *domain.Leadership) (*domain.Leadership, error)
	UpdateLeadership(ctx context.Context, l *domain.Leadership) (*domain.Leadership, error)
	DeleteLeadership(ctx context.Context, id uuid.UUID) error

	ListTeamMembers(ctx context.Context, activeOnly bool) ([]*domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error

	ListProjectImages(ctx context.Context, projectID *uuid.UUID) ([]*domain.ProjectImage, error)
	CreateProjectImage(ctx context.Context, img *domain.ProjectImage) (*domain.ProjectImage, error)
	UpdateProjectImage(ctx context.Context, img *domain.ProjectImage) (*domain.ProjectImage, error)
	DeleteProjectImage(ctx context.Context, id uuid.UUID) error

	ListAwards(ctx context.Context, activeOnly bool) ([]*domain.Award, error)
	CreateAward(ctx context.Context, a *domain.Award) (*domain.Award, error)
	UpdateAward(ctx context.Context, a *domain.Award) (*domain.Award, error)
	DeleteAward(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	log                 *logger.Logger
	serviceRepo         catalog.ServiceRepo
	serviceCategoryRepo catalog.ServiceCategoryRepo
	projectRepo         catalog.ProjectRepo
	projectCategoryRepo catalog.ProjectCategoryRepo
	sectorRepo          catalog.SectorRepo
	leadershipRepo      catalog.LeadershipRepo
	teamMemberRepo      catalog.TeamMemberRepo
	projectImageRepo    catalog.ProjectImageRepo
	awardRepo           catalog.AwardRepo
}

func NewCatalogService(
	log *logger.Logger,
	serviceRepo catalog.ServiceRepo,
	serviceCategoryRepo catalog.ServiceCategoryRepo,
	projectRepo catalog.ProjectRepo,
	projectCategoryRepo catalog.ProjectCategoryRepo,
	sectorRepo catalog.SectorRepo,
	leadershipRepo catalog.LeadershipRepo,
	teamMemberRepo catalog.TeamMemberRepo,
	projectImageRepo catalog.ProjectImageRepo,
	awardRepo catalog.AwardRepo,
) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		log:                 serviceLog,
		serviceRepo:         serviceRepo,
		serviceCategoryRepo: serviceCategoryRepo,
		projectRepo:         projectRepo,
		projectCategoryRepo: projectCategoryRepo,
		sectorRepo:          sectorRepo,
		leadershipRepo:      leadershipRepo,
		teamMemberRepo:      teamMemberRepo,
		projectImageRepo:    projectImageRepo,
		awardRepo:           awardRepo,
	}
}

func (cs *catalogService) ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	return cs.serviceRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	svc, err := cs.serviceRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apierr.NotFound("service %q not found", slug)
	}
	return svc, nil
}
func (cs *catalogService) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	return cs.serviceRepo.Create(ctx, nil, svc)
}
func (cs *catalogService) UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	return cs.serviceRepo.Update(ctx, nil, svc)
}
func (cs *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return cs.serviceRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListServiceCategories(ctx context.Context, activeOnly bool) ([]*domain.ServiceCategory, error) {
	return cs.serviceCategoryRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) CreateServiceCategory(ctx context.Context, c *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	return cs.serviceCategoryRepo.Create(ctx, nil, c)
}
func (cs *catalogService) UpdateServiceCategory(ctx context.Context, c *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	return cs.serviceCategoryRepo.Update(ctx, nil, c)
}
func (cs *catalogService) DeleteServiceCategory(ctx context.Context, id uuid.UUID) error {
	return cs.serviceCategoryRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListProjects(ctx context.Context, activeOnly, featuredOnly bool) ([]*domain.Project, error) {
	return cs.projectRepo.List(ctx, nil, activeOnly, featuredOnly)
}
func (cs *catalogService) GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	p, err := cs.projectRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound("project %q not found", slug)
	}
	return p, nil
}
func (cs *catalogService) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return cs.projectRepo.Create(ctx, nil, p)
}
func (cs *catalogService) UpdateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return cs.projectRepo.Update(ctx, nil, p)
}
func (cs *catalogService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return cs.projectRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListProjectCategories(ctx context.Context, activeOnly bool) ([]*domain.ProjectCategory, error) {
	return cs.projectCategoryRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) CreateProjectCategory(ctx context.Context, c *domain.ProjectCategory) (*domain.ProjectCategory, error) {
	return cs.projectCategoryRepo.Create(ctx, nil, c)
}
func (cs *catalogService) UpdateProjectCategory(ctx context.Context, c *domain.ProjectCategory) (*domain.ProjectCategory, error) {
	return cs.projectCategoryRepo.Update(ctx, nil, c)
}
func (cs *catalogService) DeleteProjectCategory(ctx context.Context, id uuid.UUID) error {
	return cs.projectCategoryRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListSectors(ctx context.Context, activeOnly bool) ([]*domain.Sector, error) {
	return cs.sectorRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) GetSectorBySlug(ctx context.Context, slug string) (*domain.Sector, error) {
	s, err := cs.sectorRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apierr.NotFound("sector %q not found", slug)
	}
	return s, nil
}
func (cs *catalogService) CreateSector(ctx context.Context, s *domain.Sector) (*domain.Sector, error) {
	return cs.sectorRepo.Create(ctx, nil, s)
}
func (cs *catalogService) UpdateSector(ctx context.Context, s *domain.Sector) (*domain.Sector, error) {
	return cs.sectorRepo.Update(ctx, nil, s)
}
func (cs *catalogService) DeleteSector(ctx context.Context, id uuid.UUID) error {
	return cs.sectorRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListLeadership(ctx context.Context, activeOnly bool) ([]*domain.Leadership, error) {
	return cs.leadershipRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) CreateLeadership(ctx context.Context, l *domain.Leadership) (*domain.Leadership, error) {
	return cs.leadershipRepo.Create(ctx, nil, l)
}
func (cs *catalogService) UpdateLeadership(ctx context.Context, l *domain.Leadership) (*domain.Leadership, error) {
	return cs.leadershipRepo.Update(ctx, nil, l)
}
func (cs *catalogService) DeleteLeadership(ctx context.Context, id uuid.UUID) error {
	return cs.leadershipRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListTeamMembers(ctx context.Context, activeOnly bool) ([]*domain.TeamMember, error) {
	return cs.teamMemberRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	return cs.teamMemberRepo.Create(ctx, nil, m)
}
func (cs *catalogService) UpdateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	return cs.teamMemberRepo.Update(ctx, nil, m)
}
func (cs *catalogService) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	return cs.teamMemberRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListProjectImages(ctx context.Context, projectID *uuid.UUID) ([]*domain.ProjectImage, error) {
	return cs.projectImageRepo.List(ctx, nil, projectID)
}
func (cs *catalogService) CreateProjectImage(ctx context.Context, img *domain.ProjectImage) (*domain.ProjectImage, error) {
	return cs.projectImageRepo.Create(ctx, nil, img)
}
func (cs *catalogService) UpdateProjectImage(ctx context.Context, img *domain.ProjectImage) (*domain.ProjectImage, error) {
	return cs.projectImageRepo.Update(ctx, nil, img)
}
func (cs *catalogService) DeleteProjectImage(ctx context.Context, id uuid.UUID) error {
	return cs.projectImageRepo.Delete(ctx, nil, id)
}

func (cs *catalogService) ListAwards(ctx context.Context, activeOnly bool) ([]*domain.Award, error) {
	return cs.awardRepo.List(ctx, nil, activeOnly)
}
func (cs *catalogService) CreateAward(ctx context.Context, a *domain.Award) (*domain.Award, error) {
	return cs.awardRepo.Create(ctx, nil, a)
}
func (cs *catalogService) UpdateAward(ctx context.Context, a *domain.Award) (*domain.Award, error) {
	return cs.awardRepo.Update(ctx, nil, a)
}
func (cs *catalogService) DeleteAward(ctx context.Context, id uuid.UUID) error {
	return cs.awardRepo.Delete(ctx, nil, id)
}
