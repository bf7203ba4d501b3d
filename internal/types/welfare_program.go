package types

import (
	"time"

	"github.com/google/uuid"
)

// WelfareProgram is one entry of the welfare/cultural program catalog.
// The catalog is read-only from the recommendation engine's point of
// view; inactive programs are never surfaced.
type WelfareProgram struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title             string    `gorm:"not null;column:title" json:"title"`
	Description       string    `gorm:"type:text;column:description" json:"description"`
	Organization      string    `gorm:"column:organization" json:"organization"`
	Category          string    `gorm:"column:category;index" json:"category"`
	TargetRegion      *Region   `gorm:"type:varchar(32);column:target_region;index" json:"target_region,omitempty"`
	TargetAgeMin      *int      `gorm:"column:target_age_min" json:"target_age_min,omitempty"`
	TargetAgeMax      *int      `gorm:"column:target_age_max" json:"target_age_max,omitempty"`
	EmotionKeywords   string    `gorm:"column:emotion_keywords" json:"emotion_keywords"`
	ApplicationURL    string    `gorm:"column:application_url" json:"application_url"`
	ContactNumber     string    `gorm:"column:contact_number" json:"contact_number"`
	TargetDescription string    `gorm:"column:target_description" json:"target_description"`
	Location          string    `gorm:"column:location" json:"location"`
	Schedule          string    `gorm:"column:schedule" json:"schedule"`
	IsActive          bool      `gorm:"column:is_active;default:true;index" json:"is_active"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (WelfareProgram) TableName() string {
	return "welfare_program"
}
