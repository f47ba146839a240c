package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/fitbyte/internal/config"
	"github.com/you/fitbyte/internal/infrastructure/repositories"
)

func TestAuthFlow_RegisterLoginAndIdentity(t *testing.T) {
	ts := NewTestServer(t, nil)

	resp := ts.Do(t, http.MethodPost, "/register", "", map[string]string{"email": "a@b.com", "password": "Abcd1234!"})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Raw))
	body := resp.JSON(t)
	assert.Equal(t, "a@b.com", body["email"])
	assert.NotEmpty(t, body["token"])

	// stored hashed, never in clear
	var row repositories.DBUser
	require.NoError(t, ts.DB.Where("email = ?", "a@b.com").Take(&row).Error)
	assert.NotEqual(t, "Abcd1234!", row.PasswordHash)

	resp = ts.Do(t, http.MethodPost, "/register", "", map[string]string{"email": " a@b.com\u200b", "password": "Abcd1234!"})
	assert.Equal(t, http.StatusConflict, resp.Status, "normalised duplicate")

	resp = ts.Do(t, http.MethodPost, "/login", "", map[string]string{"email": "a@b.com", "password": "Abcd1234!"})
	require.Equal(t, http.StatusOK, resp.Status)
	token := resp.JSON(t)["token"].(string)

	resp = ts.Do(t, http.MethodPost, "/login", "", map[string]string{"email": "a@b.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusBadRequest, resp.Status)

	resp = ts.Do(t, http.MethodPost, "/login", "", map[string]string{"email": "nobody@b.com", "password": "Abcd1234!"})
	assert.Equal(t, http.StatusNotFound, resp.Status)

	resp = ts.Do(t, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, row.ID, resp.JSON(t)["id"])

	resp = ts.Do(t, http.MethodGet, "/me-lite", token, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, row.ID, resp.JSON(t)["sub"])
}

func TestAuthFlow_GuardTiersAfterUserDeletion(t *testing.T) {
	ts := NewTestServer(t, nil)
	token := ts.Register(t, "gone@b.com", "Abcd1234!")

	require.NoError(t, ts.DB.Where("email = ?", "gone@b.com").Delete(&repositories.DBUser{}).Error)

	// the token is still cryptographically valid
	resp := ts.Do(t, http.MethodGet, "/me-lite", token, nil)
	assert.Equal(t, http.StatusOK, resp.Status)

	resp = ts.Do(t, http.MethodGet, "/me", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "User not found", resp.JSON(t)["error"])

	resp = ts.Do(t, http.MethodPost, "/activity", token, map[string]interface{}{
		"activityType": "Running", "doneAt": "2024-01-01T00:00:00Z", "durationInMinutes": 30,
	})
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestAuthFlow_RejectsBadTokens(t *testing.T) {
	ts := NewTestServer(t, nil)
	other := NewTestServer(t, func(cfg *config.Config) { cfg.JWTSecret = "another-secret" })
	foreign := other.Register(t, "a@b.com", "Abcd1234!")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"foreign secret", "Bearer " + foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL("/me-lite"), nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp := ts.send(t, req, "")
			assert.Equal(t, http.StatusUnauthorized, resp.Status)
		})
	}
}

func TestAuthFlow_LoginRateLimited(t *testing.T) {
	ts := NewTestServer(t, func(cfg *config.Config) { cfg.RateLimitRequests = 3 })
	ts.Register(t, "a@b.com", "Abcd1234!")

	creds := map[string]string{"email": "a@b.com", "password": "Abcd1234!"}
	for i := 0; i < 3; i++ {
		resp := ts.Do(t, http.MethodPost, "/login", "", creds)
		require.Equal(t, http.StatusOK, resp.Status, "attempt %d", i+1)
	}
	resp := ts.Do(t, http.MethodPost, "/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, resp.Status)
}
