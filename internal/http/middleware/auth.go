package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/observability"
)

// Context keys set by RequireIdentity
const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
	EmailKey    = "email"
)

// AuthMW holds both guard tiers so routes can pick one at composition time
type AuthMW struct {
	stateless domain.AuthGuard
	stateful  domain.AuthGuard
	log       *slog.Logger
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(stateless, stateful domain.AuthGuard, log *slog.Logger) *AuthMW {
	return &AuthMW{stateless: stateless, stateful: stateful, log: log}
}

// Stateless verifies the token only
func (mw *AuthMW) Stateless() gin.HandlerFunc {
	return RequireIdentity("stateless", mw.stateless, mw.log)
}

// Stateful verifies the token and that its subject is a live user
func (mw *AuthMW) Stateful() gin.HandlerFunc {
	return RequireIdentity("stateful", mw.stateful, mw.log)
}

// RequireIdentity aborts unless guard accepts the Authorization header
func RequireIdentity(tier string, guard domain.AuthGuard, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := guard.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			kind := domain.KindOf(err)
			observability.RecordAuthFailure(tier, kind.String())

			switch kind {
			case domain.KindUnauthenticated:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMessage(err)})
			case domain.KindNotFound:
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				log.Error("authentication failed", "tier", tier, "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.Subject)
		c.Set(EmailKey, identity.Email)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireIdentity
func IdentityFrom(c *gin.Context) (*domain.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*domain.Identity)
	return identity, ok
}

func unauthenticatedMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "Invalid token"
	default:
		return "Missing or malformed authorization header"
	}
}
