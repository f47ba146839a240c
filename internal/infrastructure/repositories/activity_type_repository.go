package repositories

import (
	"context"
	"errors"

	"github.com/you/fitbyte/domain"
	"gorm.io/gorm"
)

// DBActivityType is the catalog row; seeded once and read-only afterwards
type DBActivityType struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;size:64;not null"`
	CaloriesPerMinute int    `gorm:"not null"`
}

func (DBActivityType) TableName() string {
	return "activity_types"
}

// ActivityTypeRepositoryImpl implements domain.ActivityTypeRepository using GORM
type ActivityTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityTypeRepository(db *gorm.DB) domain.ActivityTypeRepository {
	return &ActivityTypeRepositoryImpl{db: db}
}

// FindByName matches the name exactly, case included
func (r *ActivityTypeRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *ActivityTypeRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.ActivityType, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ActivityTypeRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.ActivityType, error) {
	var row DBActivityType
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidActivityType
		}
		return nil, err
	}
	return &domain.ActivityType{ID: row.ID, Name: row.Name, CaloriesPerMinute: row.CaloriesPerMinute}, nil
}
