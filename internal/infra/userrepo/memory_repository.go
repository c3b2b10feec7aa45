package userrepo

import (
	"context"
	"sync"

	"github.com/astriva/astroday/internal/domain/chart"
)

// MemoryRepository provides an in-memory user store for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]chart.User
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]chart.User)}
}

// Create stores the user record.
func (r *MemoryRepository) Create(_ context.Context, user chart.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

// GetByID fetches by ID.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (chart.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	return user, ok, nil
}

var _ chart.Repository = (*MemoryRepository)(nil)
