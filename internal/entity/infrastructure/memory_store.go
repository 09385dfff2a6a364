package infrastructure

import (
	"context"
	"sync"

	entitydomain "condreq/internal/entity/domain"
)

// MemoryStore keeps the entity in process memory. A single RWMutex guards
// the value, and CompareAndReplace holds the write lock across the
// fingerprint check and the write.
type MemoryStore struct {
	mu     sync.RWMutex
	entity entitydomain.Entity
}

func NewMemoryStore(seed entitydomain.Entity) *MemoryStore {
	return &MemoryStore{entity: seed}
}

func (s *MemoryStore) Get(ctx context.Context) (entitydomain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entity, nil
}

func (s *MemoryStore) Replace(ctx context.Context, name string) (entitydomain.Entity, error) {
	return s.CompareAndReplace(ctx, "", name)
}

func (s *MemoryStore) CompareAndReplace(ctx context.Context, expectedTag string, name string) (entitydomain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkPrecondition(s.entity, expectedTag); err != nil {
		return entitydomain.Entity{}, err
	}

	s.entity = s.entity.WithName(name)
	return s.entity, nil
}

func (s *MemoryStore) Seed(ctx context.Context, e entitydomain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entity = e
	return nil
}

// checkPrecondition returns a ConflictError when expectedTag is set and
// does not match the fingerprint of current.
func checkPrecondition(current entitydomain.Entity, expectedTag string) error {
	if expectedTag == "" {
		return nil
	}

	tag, err := current.ETag()
	if err != nil {
		return err
	}
	if tag.Matches(expectedTag) {
		return nil
	}

	return &entitydomain.ConflictError{
		Expected: expectedTag,
		Current:  current,
		ETag:     tag,
	}
}
