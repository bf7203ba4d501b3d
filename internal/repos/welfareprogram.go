package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/types"
)

// WelfareProgramRepo is the read side of the program catalog. Every
// query filters on is_active; an inactive program is never returned.
type WelfareProgramRepo interface {
	Create(ctx context.Context, tx *gorm.DB, programs []*types.WelfareProgram) ([]*types.WelfareProgram, error)
	GetByRegionAndAge(ctx context.Context, tx *gorm.DB, region types.Region, age int) ([]*types.WelfareProgram, error)
	GetByEmotionKeywordContaining(ctx context.Context, tx *gorm.DB, keyword string) ([]*types.WelfareProgram, error)
	GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*types.WelfareProgram, error)
}

type welfareProgramRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWelfareProgramRepo(db *gorm.DB, baseLog *logger.Logger) WelfareProgramRepo {
	repoLog := baseLog.With("repo", "WelfareProgramRepo")
	return &welfareProgramRepo{db: db, log: repoLog}
}

func (wr *welfareProgramRepo) Create(ctx context.Context, tx *gorm.DB, programs []*types.WelfareProgram) ([]*types.WelfareProgram, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(programs) == 0 {
		return []*types.WelfareProgram{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&programs).Error; err != nil {
		return nil, err
	}

	return programs, nil
}

func (wr *welfareProgramRepo) GetByRegionAndAge(ctx context.Context, tx *gorm.DB, region types.Region, age int) ([]*types.WelfareProgram, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.WelfareProgram

	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Where("target_region = ?", region).
		Where("target_age_min IS NULL OR target_age_min <= ?", age).
		Where("target_age_max IS NULL OR target_age_max >= ?", age).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *welfareProgramRepo) GetByEmotionKeywordContaining(ctx context.Context, tx *gorm.DB, keyword string) ([]*types.WelfareProgram, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.WelfareProgram

	if keyword == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Where("emotion_keywords LIKE ?", "%"+keyword+"%").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *welfareProgramRepo) GetByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*types.WelfareProgram, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.WelfareProgram

	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Where("category = ?", category).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
