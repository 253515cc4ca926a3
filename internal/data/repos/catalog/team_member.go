package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/saizgar/website-backend/internal/domain"
	"github.com/saizgar/website-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type TeamMemberRepo interface {
	List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.TeamMember, error)
	Create(ctx context.Context, tx *gorm.DB, m *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, tx *gorm.DB, m *domain.TeamMember) (*domain.TeamMember, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type teamMemberRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamMemberRepo(db *gorm.DB, baseLog *logger.Logger) TeamMemberRepo {
	repoLog := baseLog.With("repo", "TeamMemberRepo")
	return &teamMemberRepo{db: db, log: repoLog}
}

func (r *teamMemberRepo) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*domain.TeamMember, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&domain.TeamMember{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var results []*domain.TeamMember
	if err := q.Order("display_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *teamMemberRepo) Create(ctx context.Context, tx *gorm.DB, m *domain.TeamMember) (*domain.TeamMember, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *teamMemberRepo) Update(ctx context.Context, tx *gorm.DB, m *domain.TeamMember) (*domain.TeamMember, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *teamMemberRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Delete(&domain.TeamMember{}, "id = ?", id).Error
}
