package domain

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Activity limits
const (
	MinDurationInMinutes = 1
	MaxDurationInMinutes = 1440
	DefaultListLimit     = 5
)

// Profile limits
const (
	MinWeight     = 10
	MaxWeight     = 1000
	MinHeight     = 3
	MaxHeight     = 250
	MinNameLength = 2
	MaxNameLength = 60
)

// Credential limits
const (
	MaxEmailLength    = 254
	MinPasswordLength = 8
	MaxPasswordLength = 32
	PasswordSymbols   = "!@#$"
)

// DefaultActivityTypes is the seed catalog, calories per minute by name
var DefaultActivityTypes = []ActivityType{
	{Name: "Walking", CaloriesPerMinute: 4},
	{Name: "Yoga", CaloriesPerMinute: 4},
	{Name: "Stretching", CaloriesPerMinute: 4},
	{Name: "Cycling", CaloriesPerMinute: 8},
	{Name: "Swimming", CaloriesPerMinute: 8},
	{Name: "Dancing", CaloriesPerMinute: 8},
	{Name: "Hiking", CaloriesPerMinute: 10},
	{Name: "Running", CaloriesPerMinute: 10},
	{Name: "HIIT", CaloriesPerMinute: 10},
	{Name: "JumpRope", CaloriesPerMinute: 10},
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// CaloriesBurned computes the calories for duration minutes of activityType
func CaloriesBurned(activityType *ActivityType, duration int) int {
	return activityType.CaloriesPerMinute * duration
}

// ValidateDuration checks the duration range
func ValidateDuration(duration int) error {
	if duration < MinDurationInMinutes || duration > MaxDurationInMinutes {
		return NewValidationError("durationInMinutes", "must be between 1 and 1440")
	}
	return nil
}

// ValidateProfileUpdate enforces the profile field invariants before persistence
func ValidateProfileUpdate(u *ProfileUpdate) error {
	if !u.Preference.Valid() {
		return NewValidationError("preference", "must be CARDIO or WEIGHT")
	}
	if !u.WeightUnit.Valid() {
		return NewValidationError("weightUnit", "must be KG or LBS")
	}
	if !u.HeightUnit.Valid() {
		return NewValidationError("heightUnit", "must be CM or INCH")
	}
	if u.Weight < MinWeight || u.Weight > MaxWeight {
		return NewValidationError("weight", "must be between 10 and 1000")
	}
	if u.Height < MinHeight || u.Height > MaxHeight {
		return NewValidationError("height", "must be between 3 and 250")
	}
	if u.Name != nil {
		n := utf8.RuneCountInString(*u.Name)
		if n < MinNameLength || n > MaxNameLength {
			return NewValidationError("name", "must be between 2 and 60 characters")
		}
	}
	if u.ImageURI != nil {
		if err := ValidateImageURI(*u.ImageURI); err != nil {
			return err
		}
	}
	return nil
}

// ValidateImageURI requires an absolute http(s) URL whose path ends in an
// accepted image extension
func ValidateImageURI(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return NewValidationError("imageUri", "must be a valid http(s) URL")
	}
	if !imageExtensions[strings.ToLower(path.Ext(parsed.Path))] {
		return NewValidationError("imageUri", "must point to a jpg, jpeg or png image")
	}
	return nil
}

var zeroWidth = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")

// NormalizeEmail applies NFC, strips zero-width characters and surrounding
// space, then rejects embedded whitespace, control characters and overlong input.
func NormalizeEmail(raw string) (string, error) {
	v := strings.TrimSpace(zeroWidth.Replace(norm.NFC.String(raw)))
	if v == "" {
		return "", NewValidationError("email", "is required")
	}
	for _, r := range v {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", NewValidationError("email", "must not contain whitespace or control characters")
		}
	}
	if len(v) > MaxEmailLength {
		return "", NewValidationError("email", "must be at most 254 characters")
	}
	return v, nil
}

var (
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[!@#$]`)
)

// CheckPasswordComplexity is the optional stricter password policy
func CheckPasswordComplexity(password string) error {
	switch {
	case !lowerRe.MatchString(password):
		return NewValidationError("password", "must contain a lowercase letter")
	case !upperRe.MatchString(password):
		return NewValidationError("password", "must contain an uppercase letter")
	case !digitRe.MatchString(password):
		return NewValidationError("password", "must contain a digit")
	case !symbolRe.MatchString(password):
		return NewValidationError("password", "must contain one of "+PasswordSymbols)
	}
	return nil
}
