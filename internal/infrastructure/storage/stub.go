package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	printingapp "github.com/zumech/backend/internal/application/printing"
	"github.com/zumech/backend/internal/domain/shared"
)

var (
	_ gatepassapp.ObjectStore     = (*MemoryObjectStorage)(nil)
	_ printingapp.DocumentArchive = (*MemoryObjectStorage)(nil)
)

// MemoryObjectStorage keeps objects in memory. It backs local development
// when no S3 endpoint is configured, and tests.
type MemoryObjectStorage struct {
	// BaseURL prefixes generated object URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string]StoredObject
}

// StoredObject is an object held by MemoryObjectStorage
type StoredObject struct {
	Data         []byte
	ContentType  string
	CacheControl string
}

// NewMemoryObjectStorage creates an empty in-memory store
func NewMemoryObjectStorage(baseURL string) *MemoryObjectStorage {
	if baseURL == "" {
		baseURL = "http://localhost/storage"
	}
	return &MemoryObjectStorage{
		BaseURL: baseURL,
		objects: make(map[string]StoredObject),
	}
}

// PutObject stores body under key
func (s *MemoryObjectStorage) PutObject(_ context.Context, key string, body io.Reader, _ int64, opts gatepassapp.PutOptions) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read object body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; exists && opts.NoOverwrite {
		return shared.NewDomainError("ALREADY_EXISTS", "An object with this name already exists")
	}
	s.objects[key] = StoredObject{Data: data, ContentType: opts.ContentType, CacheControl: opts.CacheControl}
	return nil
}

// ObjectURL returns BaseURL/key
func (s *MemoryObjectStorage) ObjectURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/" + key, nil
}

// Archive stores a rendered PDF
func (s *MemoryObjectStorage) Archive(ctx context.Context, key string, pdf []byte) error {
	s.mu.Lock()
	s.objects[key] = StoredObject{Data: pdf, ContentType: "application/pdf"}
	s.mu.Unlock()
	return nil
}

// Get returns a stored object
func (s *MemoryObjectStorage) Get(key string) (StoredObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}
