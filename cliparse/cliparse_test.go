// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.AllowAnonymousVotes {
		t.Error("anonymous votes should be off by default")
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Fatal("expected error without database URL")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "test.db", "-t", "mysql"}); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestParseFlags_AnonymousVotesEnv(t *testing.T) {
	os.Setenv("DATABASE_URL", "test.db")
	os.Setenv("ALLOW_ANONYMOUS_VOTES", "true")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.AllowAnonymousVotes {
		t.Error("expected ALLOW_ANONYMOUS_VOTES=true to enable anonymous votes")
	}
}

func TestDriverName(t *testing.T) {
	if got := (Config{DatabaseType: "postgres"}).DriverName(); got != "postgres" {
		t.Errorf("expected postgres, got %s", got)
	}
	if got := (Config{DatabaseType: "sqlite"}).DriverName(); got != "sqlite" {
		t.Errorf("expected sqlite, got %s", got)
	}
}
