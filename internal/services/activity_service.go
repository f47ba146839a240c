package services

import (
	"context"
	"fmt"

	"github.com/you/fitbyte/domain"
)

// ActivityServiceImpl implements domain.ActivityService
type ActivityServiceImpl struct {
	activityRepo domain.ActivityRepository
	typeRepo     domain.ActivityTypeRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo domain.ActivityRepository, typeRepo domain.ActivityTypeRepository) domain.ActivityService {
	return &ActivityServiceImpl{activityRepo: activityRepo, typeRepo: typeRepo}
}

// Create implements domain.ActivityService
func (s *ActivityServiceImpl) Create(ctx context.Context, userID string, in domain.NewActivity) (*domain.Activity, error) {
	if err := domain.ValidateDuration(in.DurationInMinutes); err != nil {
		return nil, err
	}

	activityType, err := s.typeRepo.FindByName(ctx, in.ActivityType)
	if err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		UserID:            userID,
		ActivityTypeID:    activityType.ID,
		ActivityType:      activityType.Name,
		DurationInMinutes: in.DurationInMinutes,
		CaloriesBurned:    domain.CaloriesBurned(activityType, in.DurationInMinutes),
		DoneAt:            in.DoneAt,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// Update applies patch to an owned activity. Calories are recomputed from
// the effective type and duration whenever either changes.
func (s *ActivityServiceImpl) Update(ctx context.Context, userID string, id uint, patch domain.ActivityPatch) (*domain.Activity, error) {
	if patch.DurationInMinutes != nil {
		if err := domain.ValidateDuration(*patch.DurationInMinutes); err != nil {
			return nil, err
		}
	}

	activity, err := s.activityRepo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	var activityType *domain.ActivityType
	if patch.ActivityType != nil {
		activityType, err = s.typeRepo.FindByName(ctx, *patch.ActivityType)
	} else {
		activityType, err = s.typeRepo.FindByID(ctx, activity.ActivityTypeID)
	}
	if err != nil {
		return nil, err
	}

	if patch.DurationInMinutes != nil {
		activity.DurationInMinutes = *patch.DurationInMinutes
	}
	if patch.DoneAt != nil {
		activity.DoneAt = *patch.DoneAt
	}
	activity.ActivityTypeID = activityType.ID
	activity.ActivityType = activityType.Name
	activity.CaloriesBurned = domain.CaloriesBurned(activityType, activity.DurationInMinutes)

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete implements domain.ActivityService
func (s *ActivityServiceImpl) Delete(ctx context.Context, userID string, id uint) error {
	return s.activityRepo.SoftDelete(ctx, id, userID)
}

// List implements domain.ActivityService
func (s *ActivityServiceImpl) List(ctx context.Context, userID string, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.activityRepo.List(ctx, userID, filter)
}
