package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/fitbyte/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBActivity represents the database model for Activity. gorm.DeletedAt
// adds "deleted_at IS NULL" to every query, update and delete issued
// through this model, so soft-deleted rows stay invisible everywhere.
type DBActivity struct {
	ID                uint           `gorm:"primaryKey"`
	UserID            string         `gorm:"index;size:36;not null"`
	User              DBUser         `gorm:"foreignKey:UserID"`
	ActivityTypeID    uint           `gorm:"index;not null"`
	ActivityType      DBActivityType `gorm:"foreignKey:ActivityTypeID"`
	DurationInMinutes int            `gorm:"not null"`
	CaloriesBurned    int            `gorm:"index;not null"`
	DoneAt            time.Time      `gorm:"index;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (DBActivity) TableName() string {
	return "activities"
}

// ActivityRepositoryImpl implements domain.ActivityRepository using GORM
type ActivityRepositoryImpl struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) domain.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// Create implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *domain.Activity) error {
	row := &DBActivity{
		UserID:            activity.UserID,
		ActivityTypeID:    activity.ActivityTypeID,
		DurationInMinutes: activity.DurationInMinutes,
		CaloriesBurned:    activity.CaloriesBurned,
		DoneAt:            activity.DoneAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return err
	}
	activity.ID = row.ID
	activity.DoneAt = row.DoneAt
	activity.CreatedAt = row.CreatedAt
	activity.UpdatedAt = row.UpdatedAt
	return nil
}

// FindOwned implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) FindOwned(ctx context.Context, id uint, userID string) (*domain.Activity, error) {
	var row DBActivity
	err := r.owned(ctx, id, userID).Preload("ActivityType").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return activityToDomain(&row), nil
}

// Update writes the mutable columns of activity and refreshes it from the store
func (r *ActivityRepositoryImpl) Update(ctx context.Context, activity *domain.Activity) error {
	result := r.owned(ctx, activity.ID, activity.UserID).
		Model(&DBActivity{}).
		Updates(map[string]interface{}{
			"activity_type_id":    activity.ActivityTypeID,
			"duration_in_minutes": activity.DurationInMinutes,
			"calories_burned":     activity.CaloriesBurned,
			"done_at":             activity.DoneAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}

	fresh, err := r.FindOwned(ctx, activity.ID, activity.UserID)
	if err != nil {
		return err
	}
	*activity = *fresh
	return nil
}

// SoftDelete sets the delete marker. A second call finds nothing to mark
// and reports domain.ErrActivityNotFound.
func (r *ActivityRepositoryImpl) SoftDelete(ctx context.Context, id uint, userID string) error {
	result := r.owned(ctx, id, userID).Delete(&DBActivity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// List implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) List(ctx context.Context, userID string, filter domain.ActivityFilter) ([]domain.Activity, error) {
	q := r.db.WithContext(ctx).Model(&DBActivity{}).Where("user_id = ?", userID)

	if filter.ActivityType != nil {
		sub := r.db.Model(&DBActivityType{}).Select("id").Where("name = ?", *filter.ActivityType)
		q = q.Where("activity_type_id IN (?)", sub)
	}
	if filter.DoneAtFrom != nil {
		q = q.Where("done_at >= ?", filter.DoneAtFrom.UTC())
	}
	if filter.DoneAtTo != nil {
		q = q.Where("done_at <= ?", filter.DoneAtTo.UTC())
	}
	if filter.CaloriesBurnedMin != nil {
		q = q.Where("calories_burned >= ?", *filter.CaloriesBurnedMin)
	}
	if filter.CaloriesBurnedMax != nil {
		q = q.Where("calories_burned <= ?", *filter.CaloriesBurnedMax)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var rows []DBActivity
	err := q.Preload("ActivityType").
		Order("done_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(rows))
	for i := range rows {
		activities = append(activities, *activityToDomain(&rows[i]))
	}
	return activities, nil
}

// owned scopes a query to one live activity of userID
func (r *ActivityRepositoryImpl) owned(ctx context.Context, id uint, userID string) *gorm.DB {
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID)
}

func activityToDomain(row *DBActivity) *domain.Activity {
	a := &domain.Activity{
		ID:                row.ID,
		UserID:            row.UserID,
		ActivityTypeID:    row.ActivityTypeID,
		ActivityType:      row.ActivityType.Name,
		DurationInMinutes: row.DurationInMinutes,
		CaloriesBurned:    row.CaloriesBurned,
		DoneAt:            row.DoneAt.UTC(),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if row.DeletedAt.Valid {
		deletedAt := row.DeletedAt.Time
		a.DeletedAt = &deletedAt
	}
	return a
}
