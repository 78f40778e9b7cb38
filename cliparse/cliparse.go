package cliparse

import (
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/ballot-kiosk/auth"
)

type Config struct {
	DatabasePath      string
	AdminPasswordHash string
	AdminPasswordSalt string
}

// ParseFlags validates flags and resolves the kiosk configuration
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ballot-kiosk", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", "", "Database file path")

	// Credentials (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPasswordHash, "admin-hash", "", "Admin password hash (prefer env)")
	fs.StringVar(&cfg.AdminPasswordSalt, "admin-salt", "", "Admin password salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env is optional; a kiosk image usually ships one next to the binary
	_ = godotenv.Load()

	// Fall back to environment variables, then kiosk defaults
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "election.db"
	}
	if cfg.DatabasePath == ":memory:" {
		return Config{}, errors.New("in-memory database is for tests only; kiosk data must survive restarts")
	}

	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	}
	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = auth.DefaultAdminPasswordHash
	}

	if cfg.AdminPasswordSalt == "" {
		cfg.AdminPasswordSalt = os.Getenv("ADMIN_PASSWORD_SALT")
	}
	if cfg.AdminPasswordSalt == "" {
		cfg.AdminPasswordSalt = auth.DefaultPasswordSalt
	}

	return cfg, nil
}
