// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package journal persists the engine's domain events as an append-only
audit log in SQL.

# Writing

A Writer is wired in as the registry's event sink:

	writer, err := journal.NewWriter(dbConn)
	reg := election.NewRegistry(cfg.OwnerID, func(ev election.Event) {
		if err := writer.Record(ev); err != nil {
			slog.Error("journal write failed", "error", err)
		}
	})

Each entry carries a monotonic sequence number, a UUID, the election
id, the event kind, and the event struct as a JSON payload. Entries
are never updated or deleted.

# Reading

Entries returns an election's log in emission order, backing the
GET /elections/{id}/audit endpoint:

	entries, err := journal.Entries(dbConn, electionID)
*/
package journal
