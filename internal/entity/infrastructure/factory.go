package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	entitydomain "condreq/internal/entity/domain"
	"condreq/internal/infrastructure/database"
)

const (
	KindMemory   = "memory"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// OpenRepository builds the repository for kind and seeds it with seed.
// The returned closer releases the database connection, if any.
func OpenRepository(ctx context.Context, kind string, dsn string, seed entitydomain.Entity) (entitydomain.Repository, io.Closer, error) {
	var (
		repo   entitydomain.Repository
		closer io.Closer = nopCloser{}
	)

	switch kind {
	case KindMemory:
		repo = NewMemoryStore(seed)
	case KindSQLite:
		db, err := database.ConnectSQLite(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		store, err := newSQLRepository(ctx, db, database.SQLite)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		repo, closer = store, db
	case KindPostgres:
		db, err := database.ConnectPostgres(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		store, err := newSQLRepository(ctx, db, database.Postgres)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		repo, closer = store, db
	default:
		return nil, nil, fmt.Errorf("unsupported store: %s", kind)
	}

	if err := repo.Seed(ctx, seed); err != nil {
		closer.Close()
		return nil, nil, err
	}

	return repo, closer, nil
}

func newSQLRepository(ctx context.Context, db *sql.DB, dialect database.Dialect) (*SQLStore, error) {
	if err := database.InitSchema(ctx, db); err != nil {
		return nil, err
	}
	return NewSQLStore(db, dialect), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
