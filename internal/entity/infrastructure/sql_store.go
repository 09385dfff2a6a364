package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	entitydomain "condreq/internal/entity/domain"
	"condreq/internal/infrastructure/database"
)

// SQLStore keeps the entity in a single row of the entities table.
// Conditional replaces run in a transaction; the row is locked where the
// dialect supports it and writers are serialized in-process as well,
// since SQLite has no row locks.
type SQLStore struct {
	db      *sql.DB
	dialect database.Dialect

	mu sync.Mutex
	id string

	selectQuery string
	lockQuery   string
	updateQuery string
	upsertQuery string
	pruneQuery  string
}

func NewSQLStore(db *sql.DB, dialect database.Dialect) *SQLStore {
	p := dialect.Placeholder
	return &SQLStore{
		db:          db,
		dialect:     dialect,
		selectQuery: fmt.Sprintf("SELECT id, name FROM entities WHERE id = %s", p(1)),
		lockQuery:   fmt.Sprintf("SELECT id, name FROM entities WHERE id = %s%s", p(1), dialect.LockClause),
		updateQuery: fmt.Sprintf("UPDATE entities SET name = %s WHERE id = %s", p(1), p(2)),
		upsertQuery: fmt.Sprintf(
			"INSERT INTO entities (id, name) VALUES (%s, %s) ON CONFLICT (id) DO UPDATE SET name = excluded.name",
			p(1), p(2)),
		pruneQuery: fmt.Sprintf("DELETE FROM entities WHERE id <> %s", p(1)),
	}
}

func (s *SQLStore) entityID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *SQLStore) Get(ctx context.Context) (entitydomain.Entity, error) {
	id := s.entityID()
	if id == "" {
		return entitydomain.Entity{}, entitydomain.ErrNotSeeded
	}

	var e entitydomain.Entity
	err := s.db.QueryRowContext(ctx, s.selectQuery, id).Scan(&e.ID, &e.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return entitydomain.Entity{}, entitydomain.ErrNotSeeded
	}
	if err != nil {
		return entitydomain.Entity{}, fmt.Errorf("failed to read entity: %w", err)
	}
	return e, nil
}

func (s *SQLStore) Replace(ctx context.Context, name string) (entitydomain.Entity, error) {
	return s.CompareAndReplace(ctx, "", name)
}

func (s *SQLStore) CompareAndReplace(ctx context.Context, expectedTag string, name string) (entitydomain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == "" {
		return entitydomain.Entity{}, entitydomain.ErrNotSeeded
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entitydomain.Entity{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current entitydomain.Entity
	err = tx.QueryRowContext(ctx, s.lockQuery, s.id).Scan(&current.ID, &current.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return entitydomain.Entity{}, entitydomain.ErrNotSeeded
	}
	if err != nil {
		return entitydomain.Entity{}, fmt.Errorf("failed to read entity: %w", err)
	}

	if err := checkPrecondition(current, expectedTag); err != nil {
		return entitydomain.Entity{}, err
	}

	updated := current.WithName(name)
	if _, err := tx.ExecContext(ctx, s.updateQuery, updated.Name, updated.ID); err != nil {
		return entitydomain.Entity{}, fmt.Errorf("failed to update entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return entitydomain.Entity{}, fmt.Errorf("failed to commit entity update: %w", err)
	}

	return updated, nil
}

// Seed writes e as the only row, replacing whatever a previous run left.
func (s *SQLStore) Seed(ctx context.Context, e entitydomain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.pruneQuery, e.ID); err != nil {
		return fmt.Errorf("failed to clear entities: %w", err)
	}
	if _, err := tx.ExecContext(ctx, s.upsertQuery, e.ID, e.Name); err != nil {
		return fmt.Errorf("failed to seed entity: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	s.id = e.ID
	return nil
}
