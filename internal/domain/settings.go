package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings is effectively a singleton: only the first row is consulted at
// runtime. Reads must tolerate zero rows and fall back to process defaults.
type SiteSettings struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SiteName       string    `gorm:"not null;default:'Saizgar Engineering';column:site_name" json:"site_name"`
	LogoURL        string    `gorm:"column:logo_url" json:"logo_url"`
	FaviconURL     string    `gorm:"column:favicon_url" json:"favicon_url"`
	ContactEmail   string    `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone   string    `gorm:"column:contact_phone" json:"contact_phone"`
	Address        string    `gorm:"column:address" json:"address"`
	EnableDarkMode bool      `gorm:"not null;default:false;column:enable_dark_mode" json:"enable_dark_mode"`
	ShowSearch     bool      `gorm:"not null;default:true;column:show_search" json:"show_search"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SiteSettings) TableName() string { return "site_settings" }
