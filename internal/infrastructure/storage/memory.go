package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryObjectStorage is an in-memory object store. Use it for development
// and tests when no S3-compatible backend is available.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

// NewMemoryObjectStorage creates a new MemoryObjectStorage
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{
		objects: make(map[string][]byte),
		baseURL: "https://storage.example.com",
	}
}

// Upload stores data under the given key
func (s *MemoryObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[storageKey] = buf
	return nil
}

// Download fetches an object's contents
func (s *MemoryObjectStorage) Download(ctx context.Context, storageKey string) ([]byte, error) {
	if storageKey == "" {
		return nil, errors.New("storage key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found: " + storageKey)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// GenerateDownloadURL returns a deterministic fake URL
func (s *MemoryObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.baseURL + "/" + storageKey, expiresAt, nil
}

// DeleteObject removes an object
func (s *MemoryObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// ObjectExists checks if an object exists
func (s *MemoryObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok, nil
}

// ListKeys lists object keys under a prefix in sorted order
func (s *MemoryObjectStorage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
