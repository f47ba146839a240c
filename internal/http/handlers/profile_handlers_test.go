package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/mocks"
)

func TestProfileHandlers_GetEmptyProfile(t *testing.T) {
	svc := mocks.NewMockProfileService()
	svc.GetFunc = func(ctx context.Context, userID string) (*domain.Profile, error) {
		return &domain.Profile{UserID: userID, Email: "a@b.com"}, nil
	}
	h := NewProfileHandlers(svc, discardLogger())
	r := newTestRouter()
	r.GET("/user", h.Get)

	w := doJSON(t, r, http.MethodGet, "/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{
		"preference": nil,
		"weightUnit": nil,
		"heightUnit": nil,
		"weight":     nil,
		"height":     nil,
		"email":      "a@b.com",
		"name":       nil,
		"imageUri":   nil,
	}, decode(t, w))
}

func TestProfileHandlers_Update(t *testing.T) {
	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"preference": "CARDIO",
			"weightUnit": "KG",
			"heightUnit": "CM",
			"weight":     70,
			"height":     175,
		}
	}

	tests := []struct {
		name           string
		mutate         func(b map[string]interface{})
		replaceErr     error
		expectedStatus int
	}{
		{name: "valid", mutate: func(b map[string]interface{}) {}, expectedStatus: http.StatusOK},
		{name: "weight boundary accepted", mutate: func(b map[string]interface{}) { b["weight"] = 1000 }, expectedStatus: http.StatusOK},
		{name: "weight 9 rejected", mutate: func(b map[string]interface{}) { b["weight"] = 9 }, expectedStatus: http.StatusBadRequest},
		{name: "missing height", mutate: func(b map[string]interface{}) { delete(b, "height") }, expectedStatus: http.StatusBadRequest},
		{name: "bad preference", mutate: func(b map[string]interface{}) { b["preference"] = "YOGA" }, expectedStatus: http.StatusBadRequest},
		{name: "short name", mutate: func(b map[string]interface{}) { b["name"] = "A" }, expectedStatus: http.StatusBadRequest},
		{
			name:           "image without extension rejected by rules",
			mutate:         func(b map[string]interface{}) { b["imageUri"] = "https://cdn.example.com/a" },
			replaceErr:     domain.NewValidationError("imageUri", "must point to a jpg, jpeg or png image"),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockProfileService()
			svc.ReplaceFunc = func(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
				if tt.replaceErr != nil {
					return nil, tt.replaceErr
				}
				pref := update.Preference
				w := update.Weight
				return &domain.Profile{UserID: userID, Email: "a@b.com", Preference: &pref, Weight: &w}, nil
			}
			h := NewProfileHandlers(svc, discardLogger())
			r := newTestRouter()
			r.PATCH("/user", h.Update)

			body := valid()
			tt.mutate(body)
			w := doJSON(t, r, http.MethodPatch, "/user", body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				resp := decode(t, w)
				assert.Equal(t, "CARDIO", resp["preference"])
				assert.Equal(t, "a@b.com", resp["email"])
			} else {
				assert.Equal(t, "validation failed", decode(t, w)["error"])
			}
		})
	}
}
