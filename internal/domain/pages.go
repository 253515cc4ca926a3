package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SEO holds the site-wide meta defaults. Like SiteSettings it is a singleton
// by convention: only the first row is consulted.
type SEO struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PageTitle       string    `gorm:"not null;default:'Saizgar Engineering';column:page_title" json:"page_title"`
	MetaDescription string    `gorm:"column:meta_description" json:"meta_description"`
	Keywords        string    `gorm:"column:keywords" json:"keywords"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SEO) TableName() string { return "seo" }

type Page struct {
	ID       uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title    string         `gorm:"not null;column:title" json:"title"`
	Slug     string         `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Content  datatypes.JSON `gorm:"column:content" json:"content"`
	IsActive bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Page) TableName() string { return "page" }

// PageSection rows belong to a Page; deleting the page orphans nothing because
// sections are removed through the page's admin surface.
type PageSection struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PageID     uuid.UUID `gorm:"type:uuid;not null;index;column:page_id" json:"page_id"`
	Identifier string    `gorm:"not null;column:identifier" json:"identifier"`
	Heading    string    `gorm:"not null;column:heading" json:"heading"`
	Content    string    `gorm:"not null;column:content" json:"content"`
	ImageURL   string    `gorm:"column:image_url" json:"image_url"`
	Order      int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive   bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PageSection) TableName() string { return "page_section" }
