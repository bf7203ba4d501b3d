package types

import (
	"time"

	"github.com/google/uuid"
)

// WelfareRecommendation is one persisted recommendation row. Score and
// the keyword snapshot are fixed at write time; Reason may be replaced
// at most once by the asynchronous rationale enrichment. Click/apply
// markers belong to the presentation layer.
type WelfareRecommendation struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User             *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	WelfareProgramID uuid.UUID       `gorm:"type:uuid;not null;index" json:"welfare_program_id"`
	WelfareProgram   *WelfareProgram `gorm:"constraint:OnDelete:CASCADE;foreignKey:WelfareProgramID;references:ID" json:"welfare_program,omitempty"`
	Score            float64         `gorm:"column:score;not null" json:"score"`
	AnalysisKeywords string          `gorm:"column:analysis_keywords" json:"analysis_keywords"`
	EmotionAnalysis  string          `gorm:"column:emotion_analysis" json:"emotion_analysis"`
	Reason           string          `gorm:"type:text;column:reason" json:"reason"`
	IsClicked        bool            `gorm:"column:is_clicked;default:false" json:"is_clicked"`
	IsApplied        bool            `gorm:"column:is_applied;default:false" json:"is_applied"`
	ClickedAt        *time.Time      `gorm:"column:clicked_at" json:"clicked_at,omitempty"`
	AppliedAt        *time.Time      `gorm:"column:applied_at" json:"applied_at,omitempty"`
	CreatedAt        time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (WelfareRecommendation) TableName() string {
	return "welfare_recommendation"
}
