package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is created by unauthenticated visitors and never mutated
// by the intake pipeline. Administrators read it; nothing deletes it.
type ContactSubmission struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Email       string    `gorm:"not null;column:email" json:"email"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	Company     string    `gorm:"column:company" json:"company"`
	Service     string    `gorm:"column:service" json:"service"`
	Message     string    `gorm:"not null;column:message" json:"message"`
	Newsletter  bool      `gorm:"not null;default:false;column:newsletter" json:"newsletter"`
	SubmittedAt time.Time `gorm:"not null;default:now();index;column:submitted_at" json:"submitted_at"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ContactSubmission) TableName() string { return "contact_submission" }
