package infrastructure

import (
	"context"
	"path/filepath"
	"testing"

	entitydomain "condreq/internal/entity/domain"
)

func TestOpenRepository(t *testing.T) {
	seed := entitydomain.NewEntity(entitydomain.DefaultSeedID, entitydomain.DefaultSeedName)

	tests := []struct {
		name        string
		kind        string
		dsn         string
		expectError bool
	}{
		{name: "memory", kind: KindMemory},
		{name: "sqlite in memory", kind: KindSQLite, dsn: ":memory:"},
		{name: "sqlite file", kind: KindSQLite, dsn: filepath.Join(t.TempDir(), "condreq.db")},
		{name: "unknown", kind: "redis", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, closer, err := OpenRepository(context.Background(), tt.kind, tt.dsn, seed)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer closer.Close()

			got, err := repo.Get(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != seed {
				t.Errorf("expected %+v, got %+v", seed, got)
			}
		})
	}
}

func TestOpenRepository_ReseedsExistingFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "condreq.db")
	seed := entitydomain.NewEntity(entitydomain.DefaultSeedID, entitydomain.DefaultSeedName)

	repo, closer, err := OpenRepository(context.Background(), KindSQLite, dsn, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Replace(context.Background(), "Goku"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closer.Close()

	// A restart starts over from the seed.
	repo, closer, err = OpenRepository(context.Background(), KindSQLite, dsn, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != entitydomain.DefaultSeedName {
		t.Errorf("expected seed name after restart, got %q", got.Name)
	}
}
