package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/types"
)

type DiaryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.Diary) ([]*types.Diary, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Diary, error)
}

type diaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiaryRepo(db *gorm.DB, baseLog *logger.Logger) DiaryRepo {
	repoLog := baseLog.With("repo", "DiaryRepo")
	return &diaryRepo{db: db, log: repoLog}
}

func (dr *diaryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.Diary) ([]*types.Diary, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if len(entries) == 0 {
		return []*types.Diary{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (dr *diaryRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Diary, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Diary

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
