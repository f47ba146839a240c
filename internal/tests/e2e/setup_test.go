package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/fitbyte/internal/app"
	"github.com/you/fitbyte/internal/config"
	"github.com/you/fitbyte/internal/infrastructure/database"
	"github.com/you/fitbyte/internal/infrastructure/storage"
)

const storageBaseURL = "http://storage.test/files"

// TestServer is the fully wired API on SQLite, miniredis and in-memory storage
type TestServer struct {
	Server  *httptest.Server
	Config  *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Mini    *miniredis.Miniredis
	Storage *storage.MemoryStorage
	Client  *http.Client
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		GinMode:           gin.TestMode,
		CORSOrigins:       []string{"http://localhost:3000"},
		JWTSecret:         "e2e-secret",
		JWTIssuer:         "fitbyte-auth",
		JWTAudience:       "fitbyte-api",
		TokenTTL:          time.Hour,
		BcryptCost:        4,
		UploadMaxBytes:    100 * 1024,
		StrictSniffing:    true,
		LogLevel:          "error",
		RateLimitRequests: 0,
		RateLimitWindow:   time.Minute,
		CatalogCacheTTL:   10 * time.Minute,
	}
}

// NewTestServer starts a server; mutate may adjust the config first
func NewTestServer(t *testing.T, mutate func(cfg *config.Config)) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would be a fresh database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(context.Background(), db))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	objects := storage.NewMemoryStorage(storageBaseURL)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := app.Assemble(cfg, log, db, rdb, objects)

	srv := httptest.NewServer(c.Router)
	t.Cleanup(func() {
		srv.Close()
		_ = c.Close()
		mr.Close()
	})

	return &TestServer{
		Server:  srv,
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Mini:    mr,
		Storage: objects,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// URL returns the full URL for a given path
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// Response is a decoded API response
type Response struct {
	Status int
	Raw    []byte
}

// JSON decodes the body into a generic map
func (r *Response) JSON(t *testing.T) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Raw, &out), string(r.Raw))
	return out
}

// List decodes the body into a slice of objects
func (r *Response) List(t *testing.T) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Raw, &out), string(r.Raw))
	return out
}

// Do sends body as JSON with an optional bearer token
func (ts *TestServer) Do(t *testing.T, method, path, token string, body interface{}) *Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.send(t, req, token)
}

func (ts *TestServer) send(t *testing.T, req *http.Request, token string) *Response {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return &Response{Status: resp.StatusCode, Raw: raw}
}

// Register creates an account and returns its token
func (ts *TestServer) Register(t *testing.T, email, password string) string {
	t.Helper()
	resp := ts.Do(t, http.MethodPost, "/register", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Raw))
	token, _ := resp.JSON(t)["token"].(string)
	require.NotEmpty(t, token)
	return token
}
