package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/http/middleware"
)

// AuthHandlers handles registration, login and identity lookups
type AuthHandlers struct {
	authSvc domain.AuthService
	log     *slog.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, log *slog.Logger) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, log: log}
}

// CredentialsRequest is the body of /register and /login
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=32"`
}

// AuthResponse is returned by /register and /login
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	req, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Email: result.User.Email, Token: result.Token})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	req, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Email: result.User.Email, Token: result.Token})
}

// MeLite echoes the verified token claims
func (h *AuthHandlers) MeLite(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, h.log, domain.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sub": identity.Subject, "email": identity.Email})
}

// Me returns the stored user behind the token
func (h *AuthHandlers) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.User == nil {
		respondError(c, h.log, domain.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": identity.User.ID, "email": identity.User.Email})
}

// bindCredentials decodes the body, sanitises the email and checks its format
func (h *AuthHandlers) bindCredentials(c *gin.Context) (*CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return nil, false
	}

	email, err := domain.NormalizeEmail(req.Email)
	if err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.Var(email, "email"); err != nil {
			respondError(c, h.log, domain.NewValidationError("email", "must be a valid email address"))
			return nil, false
		}
	}
	req.Email = email
	return &req, true
}
