// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the event journal.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL sticks to types and defaults understood by both PostgreSQL
// (lib/pq) and SQLite (modernc.org/sqlite).
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Append-only domain event journal. Rows are never updated or deleted;
-- seq preserves emission order within and across elections.
CREATE TABLE IF NOT EXISTS event_journal (
    seq INTEGER PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    election_id BIGINT NOT NULL,
    kind TEXT NOT NULL,
    payload TEXT NOT NULL,
    emitted_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_journal_election ON event_journal(election_id);
CREATE INDEX IF NOT EXISTS idx_event_journal_kind ON event_journal(kind);
`
