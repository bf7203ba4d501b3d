package types

import (
	"time"

	"github.com/google/uuid"
)

// User carries the profile fields the recommendation engine reads.
// Region, Age and Personality are all optional: absence degrades the
// matching factors to zero instead of failing.
type User struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username    string           `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Name        string           `gorm:"column:name" json:"name"`
	Region      *Region          `gorm:"type:varchar(32);column:region" json:"region,omitempty"`
	Age         *int             `gorm:"column:age" json:"age,omitempty"`
	Personality *PersonalityType `gorm:"type:varchar(32);column:personality_type" json:"personality_type,omitempty"`
	FamilyID    *uuid.UUID       `gorm:"type:uuid;index;column:family_id" json:"family_id,omitempty"`
	CreatedAt   time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
