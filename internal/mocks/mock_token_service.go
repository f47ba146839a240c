package mocks

import (
	"strings"

	"github.com/you/fitbyte/domain"
)

// MockTokenService implements domain.TokenService interface for testing.
// Default tokens have the form "token:<subject>:<email>".
type MockTokenService struct {
	GenerateFunc func(subject, email string) (string, error)
	DecodeFunc   func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a token for subject
func (m *MockTokenService) Generate(subject, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(subject, email)
	}
	return "token:" + subject + ":" + email, nil
}

// Decode parses tokens produced by the default Generate
func (m *MockTokenService) Decode(token string) (*domain.TokenClaims, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(token)
	}
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.TokenClaims{Subject: parts[1], Email: parts[2]}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
