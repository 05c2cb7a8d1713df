// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Journal database URL or sqlite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - OwnerID: Registry owner identity (required)
  - ReceiptSalt: Secret for vote receipt HMAC (required)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	--owner        Registry owner identity
	--receipt-salt Vote receipt salt

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	OWNER_ID      → --owner
	RECEIPT_SALT  → --receipt-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - OWNER_ID must be provided
  - RECEIPT_SALT must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres;
    for sqlite it defaults to a local ballot-box.db file
*/
package cliparse
