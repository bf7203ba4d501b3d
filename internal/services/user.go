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

// UserService is the profile read interface the engine consumes:
// region, age, optional personality trait and family scope.
type UserService interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetFamilyMembers(ctx context.Context, familyID uuid.UUID) ([]*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetFamilyMembers(ctx context.Context, familyID uuid.UUID) ([]*types.User, error) {
	members, err := s.userRepo.GetByFamily(ctx, nil, familyID)
	if err != nil {
		return nil, fmt.Errorf("get family members %s: %w", familyID, err)
	}
	return members, nil
}
