package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	OwnerID      string
	ReceiptSalt  string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ballot-box", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Identity and secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.OwnerID, "owner", "", "Registry owner identity")
	fs.StringVar(&cfg.ReceiptSalt, "receipt-salt", "", "Vote receipt salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "ballot-box.db" // local sqlite file
	}

	// Owner identity - MUST be provided
	if cfg.OwnerID == "" {
		cfg.OwnerID = os.Getenv("OWNER_ID")
	}
	if cfg.OwnerID == "" {
		return Config{}, errors.New("OWNER_ID required")
	}

	if cfg.ReceiptSalt == "" {
		cfg.ReceiptSalt = os.Getenv("RECEIPT_SALT")
	}
	if cfg.ReceiptSalt == "" {
		return Config{}, errors.New("RECEIPT_SALT required")
	}

	return cfg, nil
}
