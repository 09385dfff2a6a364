package application

import (
	"os"
	"path/filepath"
	"testing"

	"condreq/internal/shared/logger"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	if LoadEnvFile(logger.Discard, filepath.Join(dir, "missing.env")) {
		t.Error("expected false for a missing file")
	}

	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("CONDREQ_SEED_NAME=Frieza\nCONDREQ_PORT=4200\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	// Existing variables win over the file.
	t.Setenv("CONDREQ_PORT", "5000")
	t.Setenv("CONDREQ_SEED_NAME", "")
	os.Unsetenv("CONDREQ_SEED_NAME")

	if !LoadEnvFile(logger.Discard, path) {
		t.Fatal("expected env file to load")
	}

	if got := os.Getenv("CONDREQ_SEED_NAME"); got != "Frieza" {
		t.Errorf("expected CONDREQ_SEED_NAME=Frieza, got %q", got)
	}
	if got := os.Getenv("CONDREQ_PORT"); got != "5000" {
		t.Errorf("expected CONDREQ_PORT to stay 5000, got %q", got)
	}
}
