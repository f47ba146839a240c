package services

import (
	"context"
	"strings"

	"github.com/you/fitbyte/domain"
)

// StatelessGuard trusts a verified token without touching the database
type StatelessGuard struct {
	tokenSvc domain.TokenService
}

func NewStatelessGuard(tokenSvc domain.TokenService) domain.AuthGuard {
	return &StatelessGuard{tokenSvc: tokenSvc}
}

// Authenticate implements domain.AuthGuard
func (g *StatelessGuard) Authenticate(_ context.Context, authorization string) (*domain.Identity, error) {
	return verify(g.tokenSvc, authorization)
}

// StatefulGuard additionally requires the token subject to be a live user
type StatefulGuard struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
}

func NewStatefulGuard(tokenSvc domain.TokenService, userRepo domain.UserRepository) domain.AuthGuard {
	return &StatefulGuard{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate implements domain.AuthGuard. A decodable token whose subject
// is missing or soft-deleted fails with domain.ErrUserNotFound.
func (g *StatefulGuard) Authenticate(ctx context.Context, authorization string) (*domain.Identity, error) {
	identity, err := verify(g.tokenSvc, authorization)
	if err != nil {
		return nil, err
	}

	user, err := g.userRepo.FindByID(ctx, identity.Subject)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted() {
		return nil, domain.ErrUserNotFound
	}
	identity.User = user
	return identity, nil
}

func verify(tokenSvc domain.TokenService, authorization string) (*domain.Identity, error) {
	token, err := bearerToken(authorization)
	if err != nil {
		return nil, err
	}

	claims, err := tokenSvc.Decode(token)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Identity{Subject: claims.Subject, Email: claims.Email, Claims: claims}, nil
}

// bearerToken accepts exactly "Bearer <token>"; the scheme is case-insensitive
func bearerToken(authorization string) (string, error) {
	parts := strings.Fields(authorization)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", domain.ErrUnauthenticated
	}
	return parts[1], nil
}
