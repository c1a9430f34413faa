package progress

import (
	"context"
	"sync"

	"github.com/KirkDiggler/block-cats/internal/errors"
)

// InMemoryRepository implements Repository with a map of blobs
type InMemoryRepository struct {
	Repository
	store *memoryStore
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	store := &memoryStore{blobs: make(map[string][]byte)}
	return &InMemoryRepository{
		Repository: &blobRepository{store: store},
		store:      store,
	}
}

// PutRaw stores data under key as-is
func (r *InMemoryRepository) PutRaw(key string, data []byte) {
	_ = r.store.set(context.Background(), key, data)
}

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func (s *memoryStore) get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, errors.NotFoundf("%s not found", key)
	}
	return data, nil
}

func (s *memoryStore) set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
