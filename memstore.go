package main

import (
	"context"
	"sync"
)

// memoryStore is an in-process Store. It backs DATA_BACKEND=memory and the
// test suite; data lives only as long as the process.
type memoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string]map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[userID][key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *memoryStore) Put(ctx context.Context, userID, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docs[userID] == nil {
		s.docs[userID] = make(map[string][]byte)
	}
	stored := make([]byte, len(doc))
	copy(stored, doc)
	s.docs[userID][key] = stored
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs[userID], key)
	return nil
}

func (s *memoryStore) DeleteAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, userID)
	return nil
}
