package mocks

import (
	"context"

	"github.com/you/fitbyte/domain"
)

// MockProfileRepository implements domain.ProfileRepository interface for testing
type MockProfileRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID string) (*domain.Profile, error)
	UpsertFunc       func(ctx context.Context, userID string, update *domain.ProfileUpdate) error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockProfileRepository) Upsert(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, userID, update)
	}
	return nil
}

// MockActivityTypeRepository implements domain.ActivityTypeRepository.
// Without overrides it serves domain.DefaultActivityTypes, numbered from 1.
type MockActivityTypeRepository struct {
	FindByNameFunc func(ctx context.Context, name string) (*domain.ActivityType, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.ActivityType, error)
}

func NewMockActivityTypeRepository() *MockActivityTypeRepository {
	return &MockActivityTypeRepository{}
}

func (m *MockActivityTypeRepository) FindByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	for i, at := range domain.DefaultActivityTypes {
		if at.Name == name {
			return &domain.ActivityType{ID: uint(i + 1), Name: at.Name, CaloriesPerMinute: at.CaloriesPerMinute}, nil
		}
	}
	return nil, domain.ErrInvalidActivityType
}

func (m *MockActivityTypeRepository) FindByID(ctx context.Context, id uint) (*domain.ActivityType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	if id == 0 || int(id) > len(domain.DefaultActivityTypes) {
		return nil, domain.ErrInvalidActivityType
	}
	at := domain.DefaultActivityTypes[id-1]
	return &domain.ActivityType{ID: id, Name: at.Name, CaloriesPerMinute: at.CaloriesPerMinute}, nil
}

// MockActivityRepository implements domain.ActivityRepository interface for testing
type MockActivityRepository struct {
	CreateFunc     func(ctx context.Context, activity *domain.Activity) error
	FindOwnedFunc  func(ctx context.Context, id uint, userID string) (*domain.Activity, error)
	UpdateFunc     func(ctx context.Context, activity *domain.Activity) error
	SoftDeleteFunc func(ctx context.Context, id uint, userID string) error
	ListFunc       func(ctx context.Context, userID string, filter domain.ActivityFilter) ([]domain.Activity, error)
}

func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) FindOwned(ctx context.Context, id uint, userID string) (*domain.Activity, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, id, userID)
	}
	return nil, domain.ErrActivityNotFound
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) SoftDelete(ctx context.Context, id uint, userID string) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id, userID)
	}
	return domain.ErrActivityNotFound
}

func (m *MockActivityRepository) List(ctx context.Context, userID string, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return []domain.Activity{}, nil
}

// MockObjectStorage implements domain.ObjectStorage interface for testing
type MockObjectStorage struct {
	PutFunc func(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{}
}

func (m *MockObjectStorage) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, objectName, contentType, data)
	}
	return "http://storage.local/files/" + objectName, nil
}

// Compile-time interface compliance verification
var (
	_ domain.ProfileRepository      = (*MockProfileRepository)(nil)
	_ domain.ActivityTypeRepository = (*MockActivityTypeRepository)(nil)
	_ domain.ActivityRepository     = (*MockActivityRepository)(nil)
	_ domain.ObjectStorage          = (*MockObjectStorage)(nil)
)
