package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceProcessStep rows order themselves by step number rather than the
// shared display_order convention.
type ServiceProcessStep struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StepNumber  int       `gorm:"not null;column:step_number" json:"step_number"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Activities  string    `gorm:"column:activities" json:"activities"`
	IconName    string    `gorm:"column:icon_name" json:"icon_name"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ServiceProcessStep) TableName() string { return "service_process_step" }

type WhyChooseItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	IconName    string    `gorm:"column:icon_name" json:"icon_name"`
	Order       int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (WhyChooseItem) TableName() string { return "why_choose_item" }

type Partner struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	LogoURL  string    `gorm:"column:logo_url" json:"logo_url"`
	Website  string    `gorm:"column:website" json:"website"`
	Order    int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Partner) TableName() string { return "partner" }

type CoreValue struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	IconName    string    `gorm:"column:icon_name" json:"icon_name"`
	Order       int       `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CoreValue) TableName() string { return "core_value" }

type TimelineEvent struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Year         string         `gorm:"not null;column:year" json:"year"`
	Title        string         `gorm:"not null;column:title" json:"title"`
	Description  string         `gorm:"not null;column:description" json:"description"`
	IconName     string         `gorm:"column:icon_name" json:"icon_name"`
	Achievements datatypes.JSON `gorm:"column:achievements" json:"achievements"`
	Order        int            `gorm:"not null;default:0;column:display_order" json:"order"`
	IsActive     bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TimelineEvent) TableName() string { return "timeline_event" }
