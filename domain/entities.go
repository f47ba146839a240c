package domain

import "time"

// User represents a registered identity
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsDeleted reports whether the user has been soft-deleted
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// Identity is the verified caller produced by an AuthGuard.
// User is only populated by the stateful guard.
type Identity struct {
	Subject string
	Email   string
	Claims  *TokenClaims
	User    *User
}

// Preference is the training focus stored on a profile
type Preference string

const (
	PreferenceCardio Preference = "CARDIO"
	PreferenceWeight Preference = "WEIGHT"
)

// Valid reports whether p is a known preference
func (p Preference) Valid() bool {
	return p == PreferenceCardio || p == PreferenceWeight
}

// WeightUnit is the unit a profile weight is expressed in
type WeightUnit string

const (
	WeightUnitKG  WeightUnit = "KG"
	WeightUnitLBS WeightUnit = "LBS"
)

func (u WeightUnit) Valid() bool {
	return u == WeightUnitKG || u == WeightUnitLBS
}

// HeightUnit is the unit a profile height is expressed in
type HeightUnit string

const (
	HeightUnitCM   HeightUnit = "CM"
	HeightUnitInch HeightUnit = "INCH"
)

func (u HeightUnit) Valid() bool {
	return u == HeightUnitCM || u == HeightUnitInch
}

// Profile holds the per-user settings. Email is read from the owning
// user and is never stored on the profile itself.
type Profile struct {
	UserID     string
	Email      string
	Preference *Preference
	WeightUnit *WeightUnit
	HeightUnit *HeightUnit
	Weight     *float64
	Height     *float64
	Name       *string
	ImageURI   *string
	UpdatedAt  time.Time
}

// ProfileUpdate is a full replacement of the mutable profile fields
type ProfileUpdate struct {
	Preference Preference
	WeightUnit WeightUnit
	HeightUnit HeightUnit
	Weight     float64
	Height     float64
	Name       *string
	ImageURI   *string
}

// ActivityType is a catalog entry used to compute calories
type ActivityType struct {
	ID                uint
	Name              string
	CaloriesPerMinute int
}

// Activity represents a single logged workout
type Activity struct {
	ID                uint
	UserID            string
	ActivityTypeID    uint
	ActivityType      string
	DurationInMinutes int
	CaloriesBurned    int
	DoneAt            time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// NewActivity carries the fields needed to log an activity
type NewActivity struct {
	ActivityType      string
	DoneAt            time.Time
	DurationInMinutes int
}

// ActivityPatch is a partial update; nil fields are left unchanged
type ActivityPatch struct {
	ActivityType      *string
	DoneAt            *time.Time
	DurationInMinutes *int
}

// ActivityFilter narrows an activity listing. Range bounds are inclusive.
type ActivityFilter struct {
	Limit             int
	Offset            int
	ActivityType      *string
	DoneAtFrom        *time.Time
	DoneAtTo          *time.Time
	CaloriesBurnedMin *int
	CaloriesBurnedMax *int
}

// FileUpload is an inbound file fully buffered in memory
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
