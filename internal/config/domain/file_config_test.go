package domain

import (
	"context"
	"testing"
)

func TestFileConfig_Valid(t *testing.T) {
	tests := []struct {
		name          string
		config        FileConfig
		expectedField string
	}{
		{
			name:   "empty config",
			config: FileConfig{},
		},
		{
			name: "valid store",
			config: FileConfig{
				Store:     StoreConfig{Kind: "sqlite", DSN: "condreq.db"},
				LogFormat: "JSON",
			},
		},
		{
			name: "unknown store",
			config: FileConfig{
				Store: StoreConfig{Kind: "redis"},
			},
			expectedField: "store.kind",
		},
		{
			name: "mixed case store kind",
			config: FileConfig{
				Store: StoreConfig{Kind: "SQLite"},
			},
		},
		{
			name: "log level in any case",
			config: FileConfig{
				LogLevel: "warn",
			},
		},
		{
			name: "misspelled log level",
			config: FileConfig{
				LogLevel: "DEBGU",
			},
			expectedField: "logLevel",
		},
		{
			name: "unknown log format",
			config: FileConfig{
				LogFormat: "xml",
			},
			expectedField: "logFormat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.config.Valid(context.Background())

			if tt.expectedField == "" {
				if len(problems) != 0 {
					t.Errorf("expected no problems, got %v", problems)
				}
				return
			}

			if _, ok := problems[tt.expectedField]; !ok {
				t.Errorf("expected problem for %q, got %v", tt.expectedField, problems)
			}
		})
	}
}
