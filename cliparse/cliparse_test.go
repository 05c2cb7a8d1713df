package cliparse

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	// Note: these tests assume the relevant env vars are unset.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("OWNER_ID", "")
	t.Setenv("RECEIPT_SALT", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags",
			args: []string{"-p", "8080", "-d", "postgres://x", "-t", "postgres", "--owner", "admin", "--receipt-salt", "s"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 || cfg.DatabaseType != "postgres" || cfg.OwnerID != "admin" {
					t.Errorf("Unexpected config %+v", cfg)
				}
			},
		},
		{
			name: "sqlite defaults",
			args: []string{"--owner", "admin", "--receipt-salt", "s"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 3318 {
					t.Errorf("Expected default port 3318, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected sqlite default, got %q", cfg.DatabaseType)
				}
				if cfg.DatabaseURL == "" {
					t.Error("Expected default sqlite file path")
				}
			},
		},
		{
			name:    "missing owner",
			args:    []string{"--receipt-salt", "s"},
			wantErr: true,
		},
		{
			name:    "missing receipt salt",
			args:    []string{"--owner", "admin"},
			wantErr: true,
		},
		{
			name:    "postgres requires url",
			args:    []string{"-t", "postgres", "--owner", "admin", "--receipt-salt", "s"},
			wantErr: true,
		},
		{
			name:    "bad database type",
			args:    []string{"-t", "mysql", "--owner", "admin", "--receipt-salt", "s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("OWNER_ID", "env-owner")
	t.Setenv("RECEIPT_SALT", "env-salt")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 4000 {
		t.Errorf("Expected port from env, got %d", cfg.Port)
	}
	if cfg.OwnerID != "env-owner" || cfg.ReceiptSalt != "env-salt" {
		t.Errorf("Expected env fallback, got %+v", cfg)
	}

	// CLI flags win over env
	cfg, err = ParseFlags([]string{"--owner", "flag-owner"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.OwnerID != "flag-owner" {
		t.Errorf("Expected flag to override env, got %q", cfg.OwnerID)
	}
}
