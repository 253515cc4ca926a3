package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/data/repos/content"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
)

// ContentService covers the site-chrome rows: navigation, footer and social
// links, quick stats, office hours, hero banners, process steps, why-choose
// items, partners, core values and timeline events. All of them share the
// ordered list / admin-write pattern.
type ContentService interface {
	ListNavItems(ctx context.Context, activeOnly bool) ([]*domain.NavItem, error)
	CreateNavItem(ctx context.Context, item *domain.NavItem) (*domain.NavItem, error)
	UpdateNavItem(ctx context.Context, item *domain.NavItem) (*domain.NavItem, error)
	DeleteNavItem(ctx context.Context, id uuid.UUID) error

	ListFooterLinks(ctx context.Context, activeOnly bool, group string) ([]*domain.FooterLink, error)
	CreateFooterLink(ctx context.Context, link *domain.FooterLink) (*domain.FooterLink, error)
	UpdateFooterLink(ctx context.Context, link *domain.FooterLink) (*domain.FooterLink, error)
	DeleteFooterLink(ctx context.Context, id uuid.UUID) error

	ListSocialLinks(ctx context.Context, activeOnly bool) ([]*domain.SocialLink, error)
	CreateSocialLink(ctx context.Context, link *domain.SocialLink) (*domain.SocialLink, error)
	UpdateSocialLink(ctx context.Context, link *domain.SocialLink) (*domain.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id uuid.UUID) error

	ListQuickStats(ctx context.Context, activeOnly bool) ([]*domain.QuickStat, error)
	CreateQuickStat(ctx context.Context, stat *domain.QuickStat) (*domain.QuickStat, error)
	UpdateQuickStat(ctx context.Context, stat *domain.QuickStat) (*domain.QuickStat, error)
	DeleteQuickStat(ctx context.Context, id uuid.UUID) error

	ListOfficeHours(ctx context.Context, activeOnly bool) ([]*domain.OfficeHour, error)
	CreateOfficeHour(ctx context.Context, oh *domain.OfficeHour) (*domain.OfficeHour, error)
	UpdateOfficeHour(ctx context.Context, oh *domain.OfficeHour) (*domain.OfficeHour, error)
	DeleteOfficeHour(ctx context.Context, id uuid.UUID) error

	ListHeroes(ctx context.Context, activeOnly bool) ([]*domain.Hero, error)
	CreateHero(ctx context.Context, hero *domain.Hero) (*domain.Hero, error)
	UpdateHero(ctx context.Context, hero *domain.Hero) (*domain.Hero, error)
	DeleteHero(ctx context.Context, id uuid.UUID) error

	ListProcessSteps(ctx context.Context, activeOnly bool) ([]*domain.ServiceProcessStep, error)
	CreateProcessStep(ctx context.Context, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error)
	UpdateProcessStep(ctx context.Context, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error)
	DeleteProcessStep(ctx context.Context, id uuid.UUID) error

	ListWhyChooseItems(ctx context.Context, activeOnly bool) ([]*domain.WhyChooseItem, error)
	CreateWhyChooseItem(ctx context.Context, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error)
	UpdateWhyChooseItem(ctx context.Context, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error)
	DeleteWhyChooseItem(ctx context.Context, id uuid.UUID) error

	ListPartners(ctx context.Context, activeOnly bool) ([]*domain.Partner, error)
	CreatePartner(ctx context.Context, p *domain.Partner) (*domain.Partner, error)
	UpdatePartner(ctx context.Context, p *domain.Partner) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) error

	ListCoreValues(ctx context.Context, activeOnly bool) ([]*domain.CoreValue, error)
	CreateCoreValue(ctx context.Context, v *domain.CoreValue) (*domain.CoreValue, error)
	UpdateCoreValue(ctx context.Context, v *domain.CoreValue) (*domain.CoreValue, error)
	DeleteCoreValue(ctx context.Context, id uuid.UUID) error

	ListTimelineEvents(ctx context.Context, activeOnly bool) ([]*domain.TimelineEvent, error)
	CreateTimelineEvent(ctx context.Context, ev *domain.TimelineEvent) (*domain.TimelineEvent, error)
	UpdateTimelineEvent(ctx context.Context, ev *domain.TimelineEvent) (*domain.TimelineEvent, error)
	DeleteTimelineEvent(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
	log            *logger.Logger
	navItemRepo    content.NavItemRepo
	footerLinkRepo content.FooterLinkRepo
	socialLinkRepo content.SocialLinkRepo
	quickStatRepo  content.QuickStatRepo
	officeHourRepo content.OfficeHourRepo
	heroRepo       content.HeroRepo

	processStepRepo   content.ProcessStepRepo
	whyChooseRepo     content.WhyChooseRepo
	partnerRepo       content.PartnerRepo
	coreValueRepo     content.CoreValueRepo
	timelineEventRepo content.TimelineEventRepo
}

func NewContentService(
	log *logger.Logger,
	navItemRepo content.NavItemRepo,
	footerLinkRepo content.FooterLinkRepo,
	socialLinkRepo content.SocialLinkRepo,
	quickStatRepo content.QuickStatRepo,
	officeHourRepo content.OfficeHourRepo,
	heroRepo content.HeroRepo,
	processStepRepo content.ProcessStepRepo,
	whyChooseRepo content.WhyChooseRepo,
	partnerRepo content.PartnerRepo,
	coreValueRepo content.CoreValueRepo,
	timelineEventRepo content.TimelineEventRepo,
) ContentService {
	serviceLog := log.With("service", "ContentService")
	return &contentService{
		log:               serviceLog,
		navItemRepo:       navItemRepo,
		footerLinkRepo:    footerLinkRepo,
		socialLinkRepo:    socialLinkRepo,
		quickStatRepo:     quickStatRepo,
		officeHourRepo:    officeHourRepo,
		heroRepo:          heroRepo,
		processStepRepo:   processStepRepo,
		whyChooseRepo:     whyChooseRepo,
		partnerRepo:       partnerRepo,
		coreValueRepo:     coreValueRepo,
		timelineEventRepo: timelineEventRepo,
	}
}

func (cs *contentService) ListNavItems(ctx context.Context, activeOnly bool) ([]*domain.NavItem, error) {
	return cs.navItemRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateNavItem(ctx context.Context, item *domain.NavItem) (*domain.NavItem, error) {
	return cs.navItemRepo.Create(ctx, nil, item)
}
func (cs *contentService) UpdateNavItem(ctx context.Context, item *domain.NavItem) (*domain.NavItem, error) {
	return cs.navItemRepo.Update(ctx, nil, item)
}
func (cs *contentService) DeleteNavItem(ctx context.Context, id uuid.UUID) error {
	return cs.navItemRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListFooterLinks(ctx context.Context, activeOnly bool, group string) ([]*domain.FooterLink, error) {
	return cs.footerLinkRepo.List(ctx, nil, activeOnly, group)
}
func (cs *contentService) CreateFooterLink(ctx context.Context, link *domain.FooterLink) (*domain.FooterLink, error) {
	return cs.footerLinkRepo.Create(ctx, nil, link)
}
func (cs *contentService) UpdateFooterLink(ctx context.Context, link *domain.FooterLink) (*domain.FooterLink, error) {
	return cs.footerLinkRepo.Update(ctx, nil, link)
}
func (cs *contentService) DeleteFooterLink(ctx context.Context, id uuid.UUID) error {
	return cs.footerLinkRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListSocialLinks(ctx context.Context, activeOnly bool) ([]*domain.SocialLink, error) {
	return cs.socialLinkRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateSocialLink(ctx context.Context, link *domain.SocialLink) (*domain.SocialLink, error) {
	return cs.socialLinkRepo.Create(ctx, nil, link)
}
func (cs *contentService) UpdateSocialLink(ctx context.Context, link *domain.SocialLink) (*domain.SocialLink, error) {
	return cs.socialLinkRepo.Update(ctx, nil, link)
}
func (cs *contentService) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	return cs.socialLinkRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListQuickStats(ctx context.Context, activeOnly bool) ([]*domain.QuickStat, error) {
	return cs.quickStatRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateQuickStat(ctx context.Context, stat *domain.QuickStat) (*domain.QuickStat, error) {
	return cs.quickStatRepo.Create(ctx, nil, stat)
}
func (cs *contentService) UpdateQuickStat(ctx context.Context, stat *domain.QuickStat) (*domain.QuickStat, error) {
	return cs.quickStatRepo.Update(ctx, nil, stat)
}
func (cs *contentService) DeleteQuickStat(ctx context.Context, id uuid.UUID) error {
	return cs.quickStatRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListOfficeHours(ctx context.Context, activeOnly bool) ([]*domain.OfficeHour, error) {
	return cs.officeHourRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateOfficeHour(ctx context.Context, oh *domain.OfficeHour) (*domain.OfficeHour, error) {
	return cs.officeHourRepo.Create(ctx, nil, oh)
}
func (cs *contentService) UpdateOfficeHour(ctx context.Context, oh *domain.OfficeHour) (*domain.OfficeHour, error) {
	return cs.officeHourRepo.Update(ctx, nil, oh)
}
func (cs *contentService) DeleteOfficeHour(ctx context.Context, id uuid.UUID) error {
	return cs.officeHourRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListHeroes(ctx context.Context, activeOnly bool) ([]*domain.Hero, error) {
	return cs.heroRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateHero(ctx context.Context, hero *domain.Hero) (*domain.Hero, error) {
	return cs.heroRepo.Create(ctx, nil, hero)
}
func (cs *contentService) UpdateHero(ctx context.Context, hero *domain.Hero) (*domain.Hero, error) {
	return cs.heroRepo.Update(ctx, nil, hero)
}
func (cs *contentService) DeleteHero(ctx context.Context, id uuid.UUID) error {
	return cs.heroRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListProcessSteps(ctx context.Context, activeOnly bool) ([]*domain.ServiceProcessStep, error) {
	return cs.processStepRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateProcessStep(ctx context.Context, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error) {
	return cs.processStepRepo.Create(ctx, nil, step)
}
func (cs *contentService) UpdateProcessStep(ctx context.Context, step *domain.ServiceProcessStep) (*domain.ServiceProcessStep, error) {
	return cs.processStepRepo.Update(ctx, nil, step)
}
func (cs *contentService) DeleteProcessStep(ctx context.Context, id uuid.UUID) error {
	return cs.processStepRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListWhyChooseItems(ctx context.Context, activeOnly bool) ([]*domain.WhyChooseItem, error) {
	return cs.whyChooseRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateWhyChooseItem(ctx context.Context, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error) {
	return cs.whyChooseRepo.Create(ctx, nil, item)
}
func (cs *contentService) UpdateWhyChooseItem(ctx context.Context, item *domain.WhyChooseItem) (*domain.WhyChooseItem, error) {
	return cs.whyChooseRepo.Update(ctx, nil, item)
}
func (cs *contentService) DeleteWhyChooseItem(ctx context.Context, id uuid.UUID) error {
	return cs.whyChooseRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListPartners(ctx context.Context, activeOnly bool) ([]*domain.Partner, error) {
	return cs.partnerRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreatePartner(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	return cs.partnerRepo.Create(ctx, nil, p)
}
func (cs *contentService) UpdatePartner(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	return cs.partnerRepo.Update(ctx, nil, p)
}
func (cs *contentService) DeletePartner(ctx context.Context, id uuid.UUID) error {
	return cs.partnerRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListCoreValues(ctx context.Context, activeOnly bool) ([]*domain.CoreValue, error) {
	return cs.coreValueRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateCoreValue(ctx context.Context, v *domain.CoreValue) (*domain.CoreValue, error) {
	return cs.coreValueRepo.Create(ctx, nil, v)
}
func (cs *contentService) UpdateCoreValue(ctx context.Context, v *domain.CoreValue) (*domain.CoreValue, error) {
	return cs.coreValueRepo.Update(ctx, nil, v)
}
func (cs *contentService) DeleteCoreValue(ctx context.Context, id uuid.UUID) error {
	return cs.coreValueRepo.Delete(ctx, nil, id)
}

func (cs *contentService) ListTimelineEvents(ctx context.Context, activeOnly bool) ([]*domain.TimelineEvent, error) {
	return cs.timelineEventRepo.List(ctx, nil, activeOnly)
}
func (cs *contentService) CreateTimelineEvent(ctx context.Context, ev *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	return cs.timelineEventRepo.Create(ctx, nil, ev)
}
func (cs *contentService) UpdateTimelineEvent(ctx context.Context, ev *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	return cs.timelineEventRepo.Update(ctx, nil, ev)
}
func (cs *contentService) DeleteTimelineEvent(ctx context.Context, id uuid.UUID) error {
	return cs.timelineEventRepo.Delete(ctx, nil, id)
}
