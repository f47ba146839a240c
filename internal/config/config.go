package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yml"

type AppConfig struct {
	Port        int      `yaml:"port"`
	GinMode     string   `yaml:"gin_mode"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
	TTL      string `yaml:"ttl"`
}

type AuthConfig struct {
	BcryptCost         int  `yaml:"bcrypt_cost"`
	PasswordComplexity bool `yaml:"password_complexity"`
}

type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Secure    bool   `yaml:"secure"`
	Region    string `yaml:"region"`
	PublicURL string `yaml:"public_url"`
}

type UploadConfig struct {
	MaxBytes       int64 `yaml:"max_bytes"`
	StrictSniffing *bool `yaml:"strict_sniffing"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RateLimitConfig struct {
	Requests int    `yaml:"requests"`
	Window   string `yaml:"window"`
}

type CacheConfig struct {
	CatalogTTL string `yaml:"catalog_ttl"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Upload    UploadConfig    `yaml:"upload"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
}

type Config struct {
	Port               string
	GinMode            string
	CORSOrigins        []string
	DSN                string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	TokenTTL           time.Duration
	BcryptCost         int
	PasswordComplexity bool
	Storage            StorageConfig
	UploadMaxBytes     int64
	StrictSniffing     bool
	LogLevel           string
	LogFormat          string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	CatalogCacheTTL    time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load builds the process configuration: an optional YAML file at path,
// then a .env file if present, then environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env: %w", err)
	}

	file, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return fromFile(file)
}

func fromFile(f *ConfigFile) (*Config, error) {
	ttl, err := parseTTL(env("JWT_EXPIRES_SECONDS", ""), f.JWT.TTL, time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT ttl: %w", err)
	}

	window, err := time.ParseDuration(env("RATE_LIMIT_WINDOW", orDefault(f.RateLimit.Window, "1m")))
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}

	cacheTTL, err := time.ParseDuration(env("CATALOG_CACHE_TTL", orDefault(f.Cache.CatalogTTL, "10m")))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog cache ttl: %w", err)
	}

	secret := env("JWT_SECRET", f.JWT.Secret)
	if secret == "" {
		secret = randomSecret()
	}

	origins := f.App.CORSOrigins
	if v := os.Getenv("BACKEND_CORS_ORIGINS"); v != "" {
		origins = splitList(v)
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:8080"}
	}

	strict := true
	if f.Upload.StrictSniffing != nil {
		strict = *f.Upload.StrictSniffing
	}

	maxBytes := f.Upload.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 100 * 1024
	}

	port := f.App.Port
	if port == 0 {
		port = 8080
	}

	storage := f.Storage
	storage.Endpoint = env("MINIO_ENDPOINT", storage.Endpoint)
	storage.AccessKey = env("MINIO_ACCESS_KEY", storage.AccessKey)
	storage.SecretKey = env("MINIO_SECRET_KEY", storage.SecretKey)
	storage.Bucket = env("MINIO_BUCKET", orDefault(storage.Bucket, "files"))
	storage.Secure = envBool("MINIO_SECURE", storage.Secure)
	storage.Region = env("MINIO_REGION", storage.Region)
	storage.PublicURL = env("MINIO_PUBLIC_URL", storage.PublicURL)

	return &Config{
		Port:               env("PORT", strconv.Itoa(port)),
		GinMode:            env("GIN_MODE", orDefault(f.App.GinMode, "release")),
		CORSOrigins:        origins,
		DSN:                buildDSN(f.Database),
		RedisAddr:          env("REDIS_ADDR", orDefault(f.Redis.Addr, "localhost:6379")),
		RedisPassword:      env("REDIS_PASSWORD", f.Redis.Password),
		RedisDB:            atoi(env("REDIS_DB", strconv.Itoa(f.Redis.DB))),
		JWTSecret:          secret,
		JWTIssuer:          env("JWT_ISS", orDefault(f.JWT.Issuer, "fitbyte-auth")),
		JWTAudience:        env("JWT_AUD", orDefault(f.JWT.Audience, "fitbyte-api")),
		TokenTTL:           ttl,
		BcryptCost:         atoi(env("BCRYPT_COST", strconv.Itoa(f.Auth.BcryptCost))),
		PasswordComplexity: envBool("PASSWORD_COMPLEXITY", f.Auth.PasswordComplexity),
		Storage:            storage,
		UploadMaxBytes:     maxBytes,
		StrictSniffing:     envBool("UPLOAD_STRICT_SNIFFING", strict),
		LogLevel:           env("LOG_LEVEL", orDefault(f.Log.Level, "info")),
		LogFormat:          env("LOG_FORMAT", orDefault(f.Log.Format, "console")),
		RateLimitRequests:  atoi(env("RATE_LIMIT_REQUESTS", strconv.Itoa(f.RateLimit.Requests))),
		RateLimitWindow:    window,
		CatalogCacheTTL:    cacheTTL,
	}, nil
}

// loadConfigFile reads path; a missing file yields an empty ConfigFile
func loadConfigFile(path string) (*ConfigFile, error) {
	var config ConfigFile
	if path == "" {
		return &config, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &config, nil
		}
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &config, nil
}

// buildDSN prefers DATABASE_URL, then the file DSN, then assembles one
// from the POSTGRES_* components.
func buildDSN(db DatabaseConfig) string {
	if v := os.Getenv("DATABASE_URL"); strings.TrimSpace(v) != "" {
		return v
	}
	if strings.TrimSpace(db.DSN) != "" {
		return db.DSN
	}
	port := db.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		env("POSTGRES_USER", orDefault(db.User, "postgres")),
		env("POSTGRES_PASSWORD", orDefault(db.Password, "root")),
		env("POSTGRES_SERVER", orDefault(db.Host, "localhost")),
		env("POSTGRES_PORT", strconv.Itoa(port)),
		env("POSTGRES_DB", orDefault(db.Name, "fitbyte")),
	)
}

// parseTTL accepts whole seconds from the environment or a Go duration from the file
func parseTTL(seconds, duration string, def time.Duration) (time.Duration, error) {
	if seconds != "" {
		n, err := strconv.Atoi(seconds)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("JWT_EXPIRES_SECONDS must be a positive integer")
		}
		return time.Duration(n) * time.Second, nil
	}
	if duration != "" {
		return time.ParseDuration(duration)
	}
	return def, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func atoi(s string) int {
	var i int
	fmt.Sscanf(s, "%d", &i)
	return i
}
