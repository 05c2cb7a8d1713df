// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the event journal.

# Schema

CreateSchema creates the journal table if it doesn't exist:

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

Safe to call on every startup - all DDL uses IF NOT EXISTS.

# Tables

  - event_journal: append-only log of domain events (seq, id,
    election_id, kind, payload, emitted_at)

# Portability

The DDL avoids engine-specific column types and defaults so the same
schema works on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).
Sequence numbers and timestamps are always supplied by the writer, not
by column defaults.
*/
package db
