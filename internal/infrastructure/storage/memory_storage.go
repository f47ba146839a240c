package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/you/fitbyte/domain"
)

// StoredObject is a blob held by MemoryStorage
type StoredObject struct {
	ContentType string
	Data        []byte
}

// MemoryStorage is an in-process domain.ObjectStorage used by local runs
// without an object store and by tests
type MemoryStorage struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]StoredObject
	err     error
}

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{baseURL: baseURL, objects: make(map[string]StoredObject)}
}

func (m *MemoryStorage) Put(_ context.Context, objectName, contentType string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, m.err)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[objectName] = StoredObject{ContentType: contentType, Data: buf}
	return ObjectURL(m.baseURL, objectName), nil
}

// SetErr makes every following Put fail with err wrapped in
// domain.ErrStorageUnavailable; nil restores normal operation
func (m *MemoryStorage) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Get returns a stored object by name
func (m *MemoryStorage) Get(objectName string) (StoredObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[objectName]
	return obj, ok
}

func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
