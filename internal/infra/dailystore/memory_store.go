package dailystore

import (
	"context"
	"sync"

	"github.com/astriva/astroday/internal/domain/horoscope"
)

// MemoryStore is an in-memory daily cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[horoscope.CacheKey]horoscope.Record
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[horoscope.CacheKey]horoscope.Record)}
}

// Get implements horoscope.DailyStore.
func (s *MemoryStore) Get(_ context.Context, key horoscope.CacheKey) (horoscope.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[key]
	return record, ok, nil
}

// Upsert replaces whatever record the key currently holds.
func (s *MemoryStore) Upsert(_ context.Context, record horoscope.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Key] = record
	return nil
}

var _ horoscope.DailyStore = (*MemoryStore)(nil)
