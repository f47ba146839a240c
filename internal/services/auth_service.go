package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/you/fitbyte/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo           domain.UserRepository
	passwordSvc        domain.PasswordService
	tokenSvc           domain.TokenService
	passwordComplexity bool
}

// NewAuthService creates a new auth service. passwordComplexity enables the
// stricter lowercase/uppercase/digit/symbol policy on registration.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	passwordComplexity bool,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:           userRepo,
		passwordSvc:        passwordSvc,
		tokenSvc:           tokenSvc,
		passwordComplexity: passwordComplexity,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email, err := domain.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := s.checkPassword(password); err != nil {
		return nil, err
	}

	// Check if user already exists
	existing, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserAlreadyExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(user)
}

// Login implements domain.AuthService. An unknown email is reported as
// domain.ErrUserNotFound, a wrong password as domain.ErrInvalidCredentials.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email, err := domain.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthServiceImpl) issue(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.AuthResult{User: user, Token: token}, nil
}

func (s *AuthServiceImpl) checkPassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < domain.MinPasswordLength || n > domain.MaxPasswordLength {
		return domain.NewValidationError("password", "must be between 8 and 32 characters")
	}
	if s.passwordComplexity {
		return domain.CheckPasswordComplexity(password)
	}
	return nil
}
