package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/config"
	httpx "github.com/you/fitbyte/internal/http"
	"github.com/you/fitbyte/internal/http/handlers"
	"github.com/you/fitbyte/internal/http/middleware"
	"github.com/you/fitbyte/internal/infrastructure/auth"
	"github.com/you/fitbyte/internal/infrastructure/database"
	"github.com/you/fitbyte/internal/infrastructure/repositories"
	"github.com/you/fitbyte/internal/infrastructure/storage"
	"github.com/you/fitbyte/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Log    *slog.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Storage     domain.ObjectStorage

	// Repositories
	UserRepo         domain.UserRepository
	ProfileRepo      domain.ProfileRepository
	ActivityTypeRepo domain.ActivityTypeRepository
	ActivityRepo     domain.ActivityRepository

	// Services
	PasswordSvc    domain.PasswordService
	TokenSvc       domain.TokenService
	AuthSvc        domain.AuthService
	ActivitySvc    domain.ActivityService
	ProfileSvc     domain.ProfileService
	UploadSvc      domain.UploadService
	StatelessGuard domain.AuthGuard
	StatefulGuard  domain.AuthGuard

	Router *gin.Engine
}

// NewContainer connects to Postgres, Redis and object storage and wires
// everything on top of them
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := database.Ping(ctx, rdb); err != nil {
		// cache and rate limiter both fail open
		log.Warn("redis unavailable, continuing without it", "addr", cfg.RedisAddr, "error", err)
	}

	objects, err := storage.NewMinioStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}
	if err := objects.EnsureBucket(ctx, cfg.Storage.Region); err != nil {
		log.Warn("object storage bucket check failed", "bucket", cfg.Storage.Bucket, "error", err)
	}

	return Assemble(cfg, log, db, rdb, objects), nil
}

// Assemble wires repositories, services and the router on already opened
// infrastructure. rdb may be nil, which disables caching and rate limiting.
func Assemble(cfg *config.Config, log *slog.Logger, db *gorm.DB, rdb *redis.Client, objects domain.ObjectStorage) *Container {
	c := &Container{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: rdb,
		Storage:     objects,
	}
	c.initRepositories()
	c.initServices()
	c.initRouter()
	return c
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ProfileRepo = repositories.NewProfileRepository(c.DB)
	c.ActivityRepo = repositories.NewActivityRepository(c.DB)

	c.ActivityTypeRepo = repositories.NewActivityTypeRepository(c.DB)
	if c.RedisClient != nil && c.Config.CatalogCacheTTL > 0 {
		c.ActivityTypeRepo = repositories.NewCachedActivityTypeRepository(
			c.ActivityTypeRepo, c.RedisClient, c.Config.CatalogCacheTTL, c.Log)
	}
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.JWTAudience, c.Config.TokenTTL)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Config.PasswordComplexity)
	c.StatelessGuard = services.NewStatelessGuard(c.TokenSvc)
	c.StatefulGuard = services.NewStatefulGuard(c.TokenSvc, c.UserRepo)

	c.ActivitySvc = services.NewActivityService(c.ActivityRepo, c.ActivityTypeRepo)
	c.ProfileSvc = services.NewProfileService(c.ProfileRepo)
	c.UploadSvc = services.NewUploadService(c.Storage, c.Config.UploadMaxBytes, c.Config.StrictSniffing)
}

func (c *Container) initRouter() {
	c.Router = httpx.BuildRouter(httpx.Routes{
		Auth:        handlers.NewAuthHandlers(c.AuthSvc, c.Log),
		Activity:    handlers.NewActivityHandlers(c.ActivitySvc, c.Log),
		Profile:     handlers.NewProfileHandlers(c.ProfileSvc, c.Log),
		Files:       handlers.NewFileHandlers(c.UploadSvc, c.Config.UploadMaxBytes, c.Log),
		AuthMW:      middleware.NewAuthMW(c.StatelessGuard, c.StatefulGuard, c.Log),
		Limiter:     middleware.NewRateLimiter(c.RedisClient, c.Config.RateLimitRequests, c.Config.RateLimitWindow, c.Log),
		CORSOrigins: c.Config.CORSOrigins,
		Log:         c.Log,
	})
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		_ = c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
