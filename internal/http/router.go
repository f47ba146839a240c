package httpx

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/you/fitbyte/internal/http/handlers"
	"github.com/you/fitbyte/internal/http/middleware"
)

// Routes is everything BuildRouter mounts
type Routes struct {
	Auth        *handlers.AuthHandlers
	Activity    *handlers.ActivityHandlers
	Profile     *handlers.ProfileHandlers
	Files       *handlers.FileHandlers
	AuthMW      *middleware.AuthMW
	Limiter     *middleware.RateLimiter
	CORSOrigins []string
	Log         *slog.Logger
}

func BuildRouter(rt Routes) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(rt.Log), middleware.Logger(rt.Log), middleware.Metrics(), middleware.CORS(rt.CORSOrigins))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/register", rt.Limiter.Limit("register"), rt.Auth.Register)
	r.POST("/login", rt.Limiter.Limit("login"), rt.Auth.Login)

	// token only
	light := r.Group("/").Use(rt.AuthMW.Stateless())
	light.GET("/me-lite", rt.Auth.MeLite)
	light.GET("/activity", rt.Activity.List)
	light.GET("/user", rt.Profile.Get)

	// token plus a live user row
	full := r.Group("/").Use(rt.AuthMW.Stateful())
	full.GET("/me", rt.Auth.Me)
	full.POST("/activity", rt.Activity.Create)
	full.PATCH("/activity/:id", rt.Activity.Update)
	full.DELETE("/activity/:id", rt.Activity.Delete)
	full.PATCH("/user", rt.Profile.Update)
	full.POST("/file", rt.Files.Upload)

	return r
}
