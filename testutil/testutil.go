// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/db"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/journal"
)

// TestOwnerID is the registry owner identity used across tests.
const TestOwnerID = "owner-1"

// SetupTestJournal opens a fresh in-memory sqlite journal with the
// full schema.
func SetupTestJournal(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would see a different empty :memory: database.
	dbConn.SetMaxOpenConns(1)

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { dbConn.Close() })
	return dbConn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		OwnerID:      TestOwnerID,
		ReceiptSalt:  "test-receipt-salt",
	}
}

// NewTestRegistry creates a registry owned by TestOwnerID. When dbConn
// is non-nil, events are journaled; journal failures fail the test.
func NewTestRegistry(t *testing.T, dbConn *sql.DB) *election.Registry {
	t.Helper()

	var sink election.EventSink
	if dbConn != nil {
		writer, err := journal.NewWriter(dbConn)
		if err != nil {
			t.Fatalf("Failed to create journal writer: %v", err)
		}
		sink = func(ev election.Event) {
			if err := writer.Record(ev); err != nil {
				t.Errorf("Failed to journal event %s: %v", ev.Kind(), err)
			}
		}
	}

	return election.NewRegistry(TestOwnerID, sink)
}

// CreateTestElection creates an election and returns its id
func CreateTestElection(t *testing.T, reg *election.Registry, creator string, now, duration int64) int64 {
	t.Helper()

	id, err := reg.CreateElection("Test Election", "A test election", duration, creator, now)
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}
	return id
}

// AddTestCandidates adds candidates by name (as the owner) and returns
// their assigned ids
func AddTestCandidates(t *testing.T, reg *election.Registry, electionID int64, names ...string) []int {
	t.Helper()

	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, err := reg.AddCandidate(electionID, name, "", TestOwnerID)
		if err != nil {
			t.Fatalf("Failed to add test candidate %q: %v", name, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// CastTestVote records a vote and fails the test on error
func CastTestVote(t *testing.T, reg *election.Registry, electionID int64, candidateID int, voter string, now int64) {
	t.Helper()

	if err := reg.Vote(electionID, candidateID, voter, now); err != nil {
		t.Fatalf("Failed to cast test vote for %q: %v", voter, err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
