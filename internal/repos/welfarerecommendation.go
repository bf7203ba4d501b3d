package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/types"
)

type WelfareRecommendationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, recs []*types.WelfareRecommendation) ([]*types.WelfareRecommendation, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WelfareRecommendation, error)
	GetUnclickedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WelfareRecommendation, error)
	GetByIDAndUser(ctx context.Context, tx *gorm.DB, id uuid.UUID, userID uuid.UUID) (*types.WelfareRecommendation, error)
	UpdateReason(ctx context.Context, tx *gorm.DB, id uuid.UUID, reason string) error
}

type welfareRecommendationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWelfareRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) WelfareRecommendationRepo {
	repoLog := baseLog.With("repo", "WelfareRecommendationRepo")
	return &welfareRecommendationRepo{db: db, log: repoLog}
}

func (rr *welfareRecommendationRepo) Create(ctx context.Context, tx *gorm.DB, recs []*types.WelfareRecommendation) ([]*types.WelfareRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(recs) == 0 {
		return []*types.WelfareRecommendation{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&recs).Error; err != nil {
		return nil, err
	}

	return recs, nil
}

func (rr *welfareRecommendationRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WelfareRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.WelfareRecommendation

	if err := transaction.WithContext(ctx).
		Preload("WelfareProgram").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *welfareRecommendationRepo) GetUnclickedByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WelfareRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.WelfareRecommendation

	if err := transaction.WithContext(ctx).
		Preload("WelfareProgram").
		Where("user_id = ? AND is_clicked = ?", userID, false).
		Order("score DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *welfareRecommendationRepo) GetByIDAndUser(ctx context.Context, tx *gorm.DB, id uuid.UUID, userID uuid.UUID) (*types.WelfareRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.WelfareRecommendation

	if err := transaction.WithContext(ctx).
		Preload("WelfareProgram").
		Where("id = ? AND user_id = ?", id, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateReason replaces the heuristic rationale with the generated one.
// It touches only the reason column so the score and keyword snapshot
// written at creation time stay untouched.
func (rr *welfareRecommendationRepo) UpdateReason(ctx context.Context, tx *gorm.DB, id uuid.UUID, reason string) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.WelfareRecommendation{}).
		Where("id = ?", id).
		Update("reason", reason).Error
}
