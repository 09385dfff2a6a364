package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrPreconditionFailed = errors.New("entity tag does not match the current version")
	ErrNotSeeded          = errors.New("entity has not been seeded")
)

// ConflictError is returned when a conditional replace is attempted
// against a version the store no longer holds. It carries the state that
// won so callers can report the current tag.
type ConflictError struct {
	Expected string
	Current  Entity
	ETag     ETag
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: expected %s, current %s", ErrPreconditionFailed, e.Expected, e.ETag)
}

func (e *ConflictError) Unwrap() error {
	return ErrPreconditionFailed
}

// Repository owns the single entity. CompareAndReplace must be atomic with
// respect to every other call on the same repository.
type Repository interface {
	Get(ctx context.Context) (Entity, error)
	Replace(ctx context.Context, name string) (Entity, error)
	// CompareAndReplace replaces the name only if the current entity's tag
	// renders to expectedTag. An empty expectedTag always replaces.
	CompareAndReplace(ctx context.Context, expectedTag string, name string) (Entity, error)
	Seed(ctx context.Context, e Entity) error
}
