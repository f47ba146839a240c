package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validProfileUpdate() *ProfileUpdate {
	return &ProfileUpdate{
		Preference: PreferenceCardio,
		WeightUnit: WeightUnitKG,
		HeightUnit: HeightUnitCM,
		Weight:     70,
		Height:     175,
	}
}

func TestCaloriesBurned(t *testing.T) {
	for _, at := range DefaultActivityTypes {
		at := at
		for _, d := range []int{1, 30, 1440} {
			assert.Equal(t, at.CaloriesPerMinute*d, CaloriesBurned(&at, d), at.Name)
		}
	}

	running := &ActivityType{Name: "Running", CaloriesPerMinute: 10}
	assert.Equal(t, 300, CaloriesBurned(running, 30))
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(1))
	assert.NoError(t, ValidateDuration(1440))
	assert.ErrorIs(t, ValidateDuration(0), ErrValidation)
	assert.ErrorIs(t, ValidateDuration(1441), ErrValidation)
	assert.ErrorIs(t, ValidateDuration(-5), ErrValidation)
}

func TestValidateProfileUpdate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(u *ProfileUpdate)
		wantField string
	}{
		{name: "valid", mutate: func(u *ProfileUpdate) {}},
		{name: "weight lower boundary", mutate: func(u *ProfileUpdate) { u.Weight = 10 }},
		{name: "weight upper boundary", mutate: func(u *ProfileUpdate) { u.Weight = 1000 }},
		{name: "weight below range", mutate: func(u *ProfileUpdate) { u.Weight = 9 }, wantField: "weight"},
		{name: "weight above range", mutate: func(u *ProfileUpdate) { u.Weight = 1000.5 }, wantField: "weight"},
		{name: "height boundaries", mutate: func(u *ProfileUpdate) { u.Height = 3 }},
		{name: "height above range", mutate: func(u *ProfileUpdate) { u.Height = 251 }, wantField: "height"},
		{name: "bad preference", mutate: func(u *ProfileUpdate) { u.Preference = "YOGA" }, wantField: "preference"},
		{name: "bad weight unit", mutate: func(u *ProfileUpdate) { u.WeightUnit = "ST" }, wantField: "weightUnit"},
		{name: "bad height unit", mutate: func(u *ProfileUpdate) { u.HeightUnit = "FT" }, wantField: "heightUnit"},
		{name: "name too short", mutate: func(u *ProfileUpdate) { u.Name = strPtr("A") }, wantField: "name"},
		{name: "name too long", mutate: func(u *ProfileUpdate) { u.Name = strPtr(strings.Repeat("a", 61)) }, wantField: "name"},
		{name: "name multibyte counted by rune", mutate: func(u *ProfileUpdate) { u.Name = strPtr("Zoë") }},
		{name: "image png", mutate: func(u *ProfileUpdate) { u.ImageURI = strPtr("https://cdn.example.com/a/b.PNG") }},
		{name: "image without extension", mutate: func(u *ProfileUpdate) { u.ImageURI = strPtr("https://cdn.example.com/a/b") }, wantField: "imageUri"},
		{name: "image gif", mutate: func(u *ProfileUpdate) { u.ImageURI = strPtr("https://cdn.example.com/a.gif") }, wantField: "imageUri"},
		{name: "image not url", mutate: func(u *ProfileUpdate) { u.ImageURI = strPtr("b.png") }, wantField: "imageUri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validProfileUpdate()
			tt.mutate(u)
			err := ValidateProfileUpdate(u)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  a@b.com\u200b ")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got)

	_, err = NormalizeEmail("a @b.com")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NormalizeEmail("a\x07@b.com")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NormalizeEmail(strings.Repeat("a", 250) + "@b.com")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NormalizeEmail("\u200b")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckPasswordComplexity(t *testing.T) {
	assert.NoError(t, CheckPasswordComplexity("Abcd1234!"))

	for _, pw := range []string{"ABCD1234!", "abcd1234!", "Abcdefgh!", "Abcd12345"} {
		err := CheckPasswordComplexity(pw)
		assert.ErrorIs(t, err, ErrValidation, pw)
		assert.NotContains(t, err.Error(), pw, "validation errors must not echo the password")
	}
}
