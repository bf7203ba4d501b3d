package types

import (
	"time"

	"github.com/google/uuid"
)

// Diary is a journal entry. EmotionKeyword and WishActivity are set
// when the entry was composed through the button picker; pure free-text
// entries leave them nil and route through text analysis instead.
type Diary struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Content        string    `gorm:"type:text;not null;column:content" json:"content"`
	EmotionKeyword *string   `gorm:"column:emotion_keyword" json:"emotion_keyword,omitempty"`
	WishActivity   *string   `gorm:"column:wish_activity" json:"wish_activity,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Diary) TableName() string {
	return "diary"
}
