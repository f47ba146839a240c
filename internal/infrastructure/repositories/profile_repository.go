package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/fitbyte/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBProfile is one-to-one with DBUser. Email lives only on the user row.
type DBProfile struct {
	ID         uint     `gorm:"primaryKey"`
	UserID     string   `gorm:"uniqueIndex;size:36;not null"`
	User       DBUser   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Preference *string  `gorm:"size:16"`
	WeightUnit *string  `gorm:"size:8"`
	HeightUnit *string  `gorm:"size:8"`
	Weight     *float64
	Height     *float64
	Name       *string `gorm:"size:60"`
	ImageURI   *string `gorm:"column:image_uri;size:2048"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DBProfile) TableName() string {
	return "profiles"
}

// profileRow is the users LEFT JOIN profiles projection
type profileRow struct {
	UserID     string
	Email      string
	Preference *string
	WeightUnit *string
	HeightUnit *string
	Weight     *float64
	Height     *float64
	Name       *string
	ImageURI   *string `gorm:"column:image_uri"`
	UpdatedAt  *time.Time
}

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// FindByUserID implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var row profileRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(`users.id AS user_id, users.email AS email,
			profiles.preference, profiles.weight_unit, profiles.height_unit,
			profiles.weight, profiles.height, profiles.name, profiles.image_uri,
			profiles.updated_at`).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.id = ? AND users.deleted_at IS NULL", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return rowToDomain(&row), nil
}

// Upsert replaces every mutable field; omitted optionals are stored as NULL
func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	preference := string(update.Preference)
	weightUnit := string(update.WeightUnit)
	heightUnit := string(update.HeightUnit)
	weight := update.Weight
	height := update.Height

	profile := &DBProfile{
		UserID:     userID,
		Preference: &preference,
		WeightUnit: &weightUnit,
		HeightUnit: &heightUnit,
		Weight:     &weight,
		Height:     &height,
		Name:       update.Name,
		ImageURI:   update.ImageURI,
	}

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"preference", "weight_unit", "height_unit", "weight", "height",
				"name", "image_uri", "updated_at",
			}),
		}).
		Create(profile).Error
}

func rowToDomain(row *profileRow) *domain.Profile {
	p := &domain.Profile{
		UserID:   row.UserID,
		Email:    row.Email,
		Weight:   row.Weight,
		Height:   row.Height,
		Name:     row.Name,
		ImageURI: row.ImageURI,
	}
	if row.Preference != nil {
		v := domain.Preference(*row.Preference)
		p.Preference = &v
	}
	if row.WeightUnit != nil {
		v := domain.WeightUnit(*row.WeightUnit)
		p.WeightUnit = &v
	}
	if row.HeightUnit != nil {
		v := domain.HeightUnit(*row.HeightUnit)
		p.HeightUnit = &v
	}
	if row.UpdatedAt != nil {
		p.UpdatedAt = *row.UpdatedAt
	}
	return p
}
