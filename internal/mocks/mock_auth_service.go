package mocks

import (
	"context"
	"time"

	"github.com/you/fitbyte/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	// Default behavior: return a mock user and token
	return &domain.AuthResult{
		User: &domain.User{
			ID:           "user-1",
			Email:        email,
			PasswordHash: "hashed_" + password,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
		Token: "token:user-1:" + email,
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: "user-1", Email: email},
		Token: "token:user-1:" + email,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
