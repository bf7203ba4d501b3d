package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/repos"
	"github.com/team-modeni/modeni-backend/internal/types"
)

// DiaryService persists journal entries and fires the recommendation
// pipeline: button path when the entry carries an emotion/activity
// selection, free-text path otherwise. The recommendation dispatch is
// fire-and-continue; the diary write itself returns synchronously.
type DiaryService interface {
	CreateEntry(ctx context.Context, user *types.User, content string, emotionKeyword *string, wishActivity *string) (*types.Diary, error)
	GetEntries(ctx context.Context, userID uuid.UUID) ([]*types.Diary, error)
}

type diaryService struct {
	db        *gorm.DB
	log       *logger.Logger
	diaryRepo repos.DiaryRepo
	recSvc    WelfareRecommendationService
}

func NewDiaryService(db *gorm.DB, baseLog *logger.Logger, diaryRepo repos.DiaryRepo, recSvc WelfareRecommendationService) DiaryService {
	return &diaryService{
		db:        db,
		log:       baseLog.With("service", "DiaryService"),
		diaryRepo: diaryRepo,
		recSvc:    recSvc,
	}
}

func (s *diaryService) CreateEntry(ctx context.Context, user *types.User, content string, emotionKeyword *string, wishActivity *string) (*types.Diary, error) {
	entry := &types.Diary{
		UserID:         user.ID,
		Content:        content,
		EmotionKeyword: emotionKeyword,
		WishActivity:   wishActivity,
	}

	saved, err := s.diaryRepo.Create(ctx, nil, []*types.Diary{entry})
	if err != nil {
		return nil, fmt.Errorf("create diary entry: %w", err)
	}

	if emotionKeyword != nil && wishActivity != nil {
		s.recSvc.ProcessButtonBasedRecommend(user, types.EmotionKeyword(*emotionKeyword), types.WishActivity(*wishActivity), false)
	} else {
		s.recSvc.ProcessEmotionAndRecommend(user, content)
	}

	return saved[0], nil
}

func (s *diaryService) GetEntries(ctx context.Context, userID uuid.UUID) ([]*types.Diary, error) {
	entries, err := s.diaryRepo.GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("get diary entries: %w", err)
	}
	return entries, nil
}
