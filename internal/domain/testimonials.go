package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorName        string    `gorm:"not null;column:author_name" json:"author_name"`
	AuthorTitle       string    `gorm:"column:author_title" json:"author_title"`
	Content           string    `gorm:"not null;column:content" json:"content"`
	Company           string    `gorm:"column:company" json:"company"`
	AvatarURL         string    `gorm:"column:avatar_url" json:"avatar_url"`
	Rating            int       `gorm:"not null;default:5;column:rating" json:"rating"`
	IsActive          bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	IsApproved        bool      `gorm:"not null;default:false;column:is_approved" json:"is_approved"`
	SubmittedByClient bool      `gorm:"not null;default:false;column:submitted_by_client" json:"submitted_by_client"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Testimonial) TableName() string { return "testimonial" }

// ClientFeedback holds client submissions awaiting review. Promotion copies an
// unapproved row into a Testimonial; the copy is point-in-time and the rows are
// not linked afterwards.
//
// Review state machine: pending (both flags false) -> reviewed-only
// (is_reviewed) -> approved (both). The bulk actions never clear a flag.
type ClientFeedback struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorName  string    `gorm:"not null;column:author_name" json:"author_name"`
	AuthorTitle string    `gorm:"column:author_title" json:"author_title"`
	AuthorEmail string    `gorm:"not null;column:author_email" json:"author_email"`
	Company     string    `gorm:"column:company" json:"company"`
	Content     string    `gorm:"not null;column:content" json:"content"`
	Rating      int       `gorm:"not null;default:5;column:rating" json:"rating"`
	ProjectName string    `gorm:"column:project_name" json:"project_name"`
	IsReviewed  bool      `gorm:"not null;default:false;column:is_reviewed" json:"is_reviewed"`
	IsApproved  bool      `gorm:"not null;default:false;column:is_approved" json:"is_approved"`
	AdminNotes  string    `gorm:"column:admin_notes" json:"admin_notes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ClientFeedback) TableName() string { return "client_feedback" }
