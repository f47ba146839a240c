package services

import (
	"context"
	"fmt"

	"github.com/you/fitbyte/domain"
)

// ProfileServiceImpl implements domain.ProfileService
type ProfileServiceImpl struct {
	profileRepo domain.ProfileRepository
}

func NewProfileService(profileRepo domain.ProfileRepository) domain.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// Get returns the caller's profile joined with their email
func (s *ProfileServiceImpl) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.FindByUserID(ctx, userID)
}

// Replace validates update before anything is persisted
func (s *ProfileServiceImpl) Replace(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if err := domain.ValidateProfileUpdate(&update); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Upsert(ctx, userID, &update); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return s.profileRepo.FindByUserID(ctx, userID)
}
