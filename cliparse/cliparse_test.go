// cliparse/cliparse_test.go
package cliparse

import (
	"testing"

	"github.com/danielhkuo/ballot-kiosk/auth"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabasePath != "election.db" {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.AdminPasswordHash != auth.DefaultAdminPasswordHash {
		t.Errorf("expected default admin hash, got %q", cfg.AdminPasswordHash)
	}
	if cfg.AdminPasswordSalt != auth.DefaultPasswordSalt {
		t.Errorf("expected default salt, got %q", cfg.AdminPasswordSalt)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/data/kiosk.db")
	t.Setenv("ADMIN_PASSWORD_HASH", "deadbeef")
	t.Setenv("ADMIN_PASSWORD_SALT", "s1")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabasePath != "/data/kiosk.db" {
		t.Errorf("expected env database path, got %q", cfg.DatabasePath)
	}
	if cfg.AdminPasswordHash != "deadbeef" {
		t.Errorf("expected env admin hash, got %q", cfg.AdminPasswordHash)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/data/kiosk.db")

	cfg, err := ParseFlags([]string{"-d", "other.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DatabasePath != "other.db" {
		t.Errorf("CLI should override env: expected other.db, got %q", cfg.DatabasePath)
	}
}

func TestParseFlags_RejectsMemoryPath(t *testing.T) {
	_, err := ParseFlags([]string{"-d", ":memory:"})
	if err == nil {
		t.Error("expected :memory: to be rejected")
	}
}
