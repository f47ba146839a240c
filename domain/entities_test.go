package domain

import (
	"testing"
	"time"
)

func TestUser_IsDeleted(t *testing.T) {
	now := time.Now()

	active := &User{ID: "u1", Email: "a@b.com"}
	if active.IsDeleted() {
		t.Error("user without delete marker should be active")
	}

	deleted := &User{ID: "u2", Email: "c@d.com", DeletedAt: &now}
	if !deleted.IsDeleted() {
		t.Error("user with delete marker should be deleted")
	}
}

func TestEnums_Valid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{string(PreferenceCardio), Preference("CARDIO").Valid()},
		{string(PreferenceWeight), Preference("WEIGHT").Valid()},
		{string(WeightUnitKG), WeightUnit("KG").Valid()},
		{string(WeightUnitLBS), WeightUnit("LBS").Valid()},
		{string(HeightUnitCM), HeightUnit("CM").Valid()},
		{string(HeightUnitInch), HeightUnit("INCH").Valid()},
	}
	for _, tt := range tests {
		if !tt.valid {
			t.Errorf("%s should be valid", tt.name)
		}
	}

	if Preference("cardio").Valid() {
		t.Error("preference is case-sensitive")
	}
	if WeightUnit("G").Valid() {
		t.Error("unexpected weight unit accepted")
	}
	if HeightUnit("").Valid() {
		t.Error("empty height unit accepted")
	}
}
