package database

import (
	"context"
	"fmt"

	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/infrastructure/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Open creates a postgres connection. Driver errors are translated so that
// unique violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), Config())
}

// Config is the gorm configuration shared by every dialector
func Config() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

// AutoMigrate creates or updates every table the service owns
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&repositories.DBUser{},
		&repositories.DBProfile{},
		&repositories.DBActivityType{},
		&repositories.DBActivity{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	return nil
}

// SeedActivityTypes inserts the default catalog. Existing names are left
// untouched so the call is safe on every start.
func SeedActivityTypes(ctx context.Context, db *gorm.DB) error {
	rows := make([]repositories.DBActivityType, 0, len(domain.DefaultActivityTypes))
	for _, at := range domain.DefaultActivityTypes {
		rows = append(rows, repositories.DBActivityType{
			Name:              at.Name,
			CaloriesPerMinute: at.CaloriesPerMinute,
		})
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to seed activity types: %w", err)
	}
	return nil
}

// Migrate runs AutoMigrate followed by SeedActivityTypes
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := AutoMigrate(db); err != nil {
		return err
	}
	return SeedActivityTypes(ctx, db)
}
