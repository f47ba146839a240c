package mocks

import (
	"context"

	"github.com/you/fitbyte/domain"
)

// MockActivityService implements domain.ActivityService interface for testing
type MockActivityService struct {
	CreateFunc func(ctx context.Context, userID string, in domain.NewActivity) (*domain.Activity, error)
	UpdateFunc func(ctx context.Context, userID string, id uint, patch domain.ActivityPatch) (*domain.Activity, error)
	DeleteFunc func(ctx context.Context, userID string, id uint) error
	ListFunc   func(ctx context.Context, userID string, filter domain.ActivityFilter) ([]domain.Activity, error)
}

func NewMockActivityService() *MockActivityService {
	return &MockActivityService{}
}

func (m *MockActivityService) Create(ctx context.Context, userID string, in domain.NewActivity) (*domain.Activity, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, in)
	}
	return &domain.Activity{ID: 1, UserID: userID, ActivityType: in.ActivityType, DoneAt: in.DoneAt, DurationInMinutes: in.DurationInMinutes}, nil
}

func (m *MockActivityService) Update(ctx context.Context, userID string, id uint, patch domain.ActivityPatch) (*domain.Activity, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, patch)
	}
	return nil, domain.ErrActivityNotFound
}

func (m *MockActivityService) Delete(ctx context.Context, userID string, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockActivityService) List(ctx context.Context, userID string, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return []domain.Activity{}, nil
}

// MockProfileService implements domain.ProfileService interface for testing
type MockProfileService struct {
	GetFunc     func(ctx context.Context, userID string) (*domain.Profile, error)
	ReplaceFunc func(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error)
}

func NewMockProfileService() *MockProfileService {
	return &MockProfileService{}
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return &domain.Profile{UserID: userID}, nil
}

func (m *MockProfileService) Replace(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, userID, update)
	}
	return &domain.Profile{UserID: userID}, nil
}

// MockUploadService implements domain.UploadService interface for testing
type MockUploadService struct {
	UploadFunc func(ctx context.Context, file domain.FileUpload) (string, error)
}

func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Upload(ctx context.Context, file domain.FileUpload) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, file)
	}
	return "http://storage.local/files/" + file.Filename, nil
}

// MockAuthGuard implements domain.AuthGuard interface for testing
type MockAuthGuard struct {
	AuthenticateFunc func(ctx context.Context, authorization string) (*domain.Identity, error)
}

func NewMockAuthGuard() *MockAuthGuard {
	return &MockAuthGuard{}
}

func (m *MockAuthGuard) Authenticate(ctx context.Context, authorization string) (*domain.Identity, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, authorization)
	}
	return nil, domain.ErrUnauthenticated
}

// Compile-time interface compliance verification
var (
	_ domain.ActivityService = (*MockActivityService)(nil)
	_ domain.ProfileService  = (*MockProfileService)(nil)
	_ domain.UploadService   = (*MockUploadService)(nil)
	_ domain.AuthGuard       = (*MockAuthGuard)(nil)
)
