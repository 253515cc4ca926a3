package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NavItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Label    string    `gorm:"not null;column:label" json:"label"`
	Href     string    `gorm:"not null;column:href" json:"href"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (NavItem) TableName() string { return "nav_item" }

type FooterLink struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Label    string    `gorm:"not null;column:label" json:"label"`
	Href     string    `gorm:"not null;column:href" json:"href"`
	Group    string    `gorm:"not null;default:'main';column:link_group" json:"group"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FooterLink) TableName() string { return "footer_link" }

type SocialLink struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	URL      string    `gorm:"not null;column:url" json:"url"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SocialLink) TableName() string { return "social_link" }

type QuickStat struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Label    string    `gorm:"not null;column:label" json:"label"`
	Value    string    `gorm:"not null;column:value" json:"value"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuickStat) TableName() string { return "quick_stat" }

type OfficeHour struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Day      string    `gorm:"not null;default:'Monday';column:day" json:"day"`
	Hours    string    `gorm:"not null;column:hours" json:"hours"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (OfficeHour) TableName() string { return "office_hour" }

type Hero struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title              string    `gorm:"not null;column:title" json:"title"`
	Subtitle           string    `gorm:"column:subtitle" json:"subtitle"`
	BackgroundImageURL string    `gorm:"column:background_image_url" json:"background_image_url"`
	CTALabel           string    `gorm:"column:cta_label" json:"cta_label"`
	CTAHref            string    `gorm:"column:cta_href" json:"cta_href"`
	IsActive           bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Hero) TableName() string { return "hero" }
