// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballot-box/election"
)

// Entry is one persisted domain event.
type Entry struct {
	Seq        int64           `json:"seq"`
	ID         string          `json:"id"`
	ElectionID int64           `json:"election_id"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	EmittedAt  int64           `json:"emitted_at"`
}

// Writer appends domain events to the event_journal table. Record is
// the registry's EventSink, so writes happen on the mutating goroutine
// in emission order; seq is assigned from an in-process counter seeded
// from the table at startup.
type Writer struct {
	db  *sql.DB
	seq atomic.Int64
}

// NewWriter creates a journal writer, resuming the sequence counter
// from the highest seq already in the table.
func NewWriter(dbConn *sql.DB) (*Writer, error) {
	w := &Writer{db: dbConn}

	var max sql.NullInt64
	err := dbConn.QueryRow(`SELECT MAX(seq) FROM event_journal`).Scan(&max)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal sequence: %w", err)
	}
	if max.Valid {
		w.seq.Store(max.Int64)
	}

	return w, nil
}

// Record persists a single event. The payload is the event struct
// marshaled as JSON; the entry id is a fresh UUID.
func (w *Writer) Record(ev election.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = w.db.Exec(`
		INSERT INTO event_journal (seq, id, election_id, kind, payload, emitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, w.seq.Add(1), uuid.NewString(), ev.Election(), ev.Kind(), string(payload), time.Now().Unix())

	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	return nil
}

// Entries returns every journal entry for an election in emission
// order. An election with no recorded events yields an empty slice.
func Entries(dbConn *sql.DB, electionID int64) ([]Entry, error) {
	rows, err := dbConn.Query(`
		SELECT seq, id, election_id, kind, payload, emitted_at
		FROM event_journal
		WHERE election_id = $1
		ORDER BY seq
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var payload string
		if err := rows.Scan(&e.Seq, &e.ID, &e.ElectionID, &e.Kind, &payload, &e.EmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Payload = json.RawMessage(payload)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
