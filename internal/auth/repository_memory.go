package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type InMemoryOwnerRepository struct {
	mu     sync.Mutex
	owners map[string]*Owner
}

func NewInMemoryOwnerRepository() *InMemoryOwnerRepository {
	return &InMemoryOwnerRepository{owners: make(map[string]*Owner)}
}

func (r *InMemoryOwnerRepository) Save(_ context.Context, owner *Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	r.owners[owner.Email] = owner
	return nil
}

func (r *InMemoryOwnerRepository) FindByEmail(_ context.Context, email string) (*Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[email]
	if !ok {
		return nil, errors.New("owner not found")
	}
	return owner, nil
}

func (r *InMemoryOwnerRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.owners), nil
}
