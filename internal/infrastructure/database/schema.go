package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// DDL creates the entities table. It is valid for both SQLite and Postgres.
const DDL = `
CREATE TABLE IF NOT EXISTS entities (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
`

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Name string
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
	// LockClause is appended to a SELECT to lock the selected rows.
	LockClause string
}

var (
	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: func(int) string { return "?" },
	}

	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
		LockClause:  " FOR UPDATE",
	}
)

// InitSchema applies DDL to db.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, DDL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
