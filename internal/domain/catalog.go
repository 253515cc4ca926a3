package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Description string    `gorm:"column:description" json:"description"`
	IconName    string    `gorm:"column:icon_name" json:"icon_name"`
	Order       int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ServiceCategory) TableName() string { return "service_category" }

type Service struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title            string     `gorm:"not null;column:title" json:"title"`
	Slug             string     `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	CategoryID       *uuid.UUID `gorm:"type:uuid;index;column:category_id" json:"category_id,omitempty"`
	ShortDescription string     `gorm:"column:short_description" json:"short_description"`
	Description      string     `gorm:"column:description" json:"description"`
	Icon             string     `gorm:"column:icon" json:"icon"`
	ImageURL         string     `gorm:"column:image_url" json:"image_url"`
	Order            int        `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive         bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Service) TableName() string { return "service" }

type ProjectCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Description string    `gorm:"column:description" json:"description"`
	IconName    string    `gorm:"column:icon_name" json:"icon_name"`
	Order       int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProjectCategory) TableName() string { return "project_category" }

type Project struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title         string         `gorm:"not null;column:title" json:"title"`
	Slug          string         `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Client        string         `gorm:"column:client" json:"client"`
	Summary       string         `gorm:"column:summary" json:"summary"`
	Description   string         `gorm:"column:description" json:"description"`
	CoverImageURL string         `gorm:"column:cover_image_url" json:"cover_image_url"`
	Location      string         `gorm:"column:location" json:"location"`
	Budget        string         `gorm:"column:budget" json:"budget"`
	Sector        string         `gorm:"column:sector" json:"sector"`
	Scope         datatypes.JSON `gorm:"column:scope" json:"scope"`
	Impact        string         `gorm:"column:impact" json:"impact"`
	Status        string         `gorm:"not null;default:'Completed';column:status" json:"status"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index;column:category_id" json:"category_id,omitempty"`
	IsFeatured    bool           `gorm:"not null;default:false;column:is_featured" json:"is_featured"`
	IsActive      bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	Order         int            `gorm:"not null;default:0;column:display_order" json:"order"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Project) TableName() string { return "project" }

type Sector struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name             string    `gorm:"not null;column:name" json:"name"`
	Slug             string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Description      string    `gorm:"column:description" json:"description"`
	ShortDescription string    `gorm:"column:short_description" json:"short_description"`
	IconName         string    `gorm:"column:icon_name" json:"icon_name"`
	CoverImageURL    string    `gorm:"column:cover_image_url" json:"cover_image_url"`
	Order            int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive         bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Sector) TableName() string { return "sector" }

type Leadership struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	Position       string    `gorm:"not null;column:position" json:"position"`
	Experience     string    `gorm:"column:experience" json:"experience"`
	Specialization string    `gorm:"column:specialization" json:"specialization"`
	Education      string    `gorm:"column:education" json:"education"`
	ImageURL       string    `gorm:"column:image_url" json:"image_url"`
	Bio            string    `gorm:"column:bio" json:"bio"`
	Email          string    `gorm:"column:email" json:"email"`
	LinkedIn       string    `gorm:"column:linkedin" json:"linkedin"`
	Order          int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive       bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Leadership) TableName() string { return "leadership" }

// ProjectImage is a gallery row; public listings always scope by project.
type ProjectImage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index;column:project_id" json:"project_id"`
	ImageURL  string    `gorm:"not null;column:image_url" json:"image_url"`
	Caption   string    `gorm:"column:caption" json:"caption"`
	Order     int       `gorm:"not null;default:0;column:display_order" json:"order"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProjectImage) TableName() string { return "project_image" }

type Award struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title        string     `gorm:"not null;column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	Organization string     `gorm:"column:organization" json:"organization"`
	Year         *int       `gorm:"column:year" json:"year,omitempty"`
	ProjectID    *uuid.UUID `gorm:"type:uuid;index;column:project_id" json:"project_id,omitempty"`
	IconName     string     `gorm:"column:icon_name" json:"icon_name"`
	Order        int        `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive     bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Award) TableName() string { return "award" }

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	Role     string    `gorm:"not null;column:role" json:"role"`
	Bio      string    `gorm:"column:bio" json:"bio"`
	PhotoURL string    `gorm:"column:photo_url" json:"photo_url"`
	Email    string    `gorm:"column:email" json:"email"`
	LinkedIn string    `gorm:"column:linkedin" json:"linkedin"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TeamMember) TableName() string { return "team_member" }
