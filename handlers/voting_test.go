// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/testutil"
)

func setupVoting(t *testing.T, now int64) (*VotingHandler, *election.Registry, int64) {
	t.Helper()

	reg := testutil.NewTestRegistry(t, nil)
	handler := NewVotingHandler(reg, testutil.GetTestConfig())
	handler.Clock = fixedClock(now)

	id := testutil.CreateTestElection(t, reg, "creator-1", 1000, 3600)
	testutil.AddTestCandidates(t, reg, id, "Alice", "Bob")
	return handler, reg, id
}

func TestVote(t *testing.T) {
	tests := []struct {
		name           string
		electionID     string
		caller         string
		now            int64
		requestBody    interface{}
		prepare        func(t *testing.T, reg *election.Registry, id int64)
		expectedStatus int
	}{
		{
			name:           "valid vote",
			electionID:     "1",
			caller:         "v1",
			now:            1100,
			requestBody:    models.VoteRequest{CandidateID: 1},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing caller",
			electionID:     "1",
			caller:         "",
			now:            1100,
			requestBody:    models.VoteRequest{CandidateID: 1},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown election",
			electionID:     "42",
			caller:         "v1",
			now:            1100,
			requestBody:    models.VoteRequest{CandidateID: 1},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown candidate",
			electionID:     "1",
			caller:         "v1",
			now:            1100,
			requestBody:    models.VoteRequest{CandidateID: 9},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "window closed",
			electionID:     "1",
			caller:         "v1",
			now:            5000,
			requestBody:    models.VoteRequest{CandidateID: 1},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "before window",
			electionID:     "1",
			caller:         "v1",
			now:            900,
			requestBody:    models.VoteRequest{CandidateID: 1},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "duplicate vote",
			electionID:  "1",
			caller:      "v1",
			now:         1100,
			requestBody: models.VoteRequest{CandidateID: 2},
			prepare: func(t *testing.T, reg *election.Registry, id int64) {
				testutil.CastTestVote(t, reg, id, 1, "v1", 1050)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "ended election",
			electionID:  "1",
			caller:      "v1",
			now:         1100,
			requestBody: models.VoteRequest{CandidateID: 1},
			prepare: func(t *testing.T, reg *election.Registry, id int64) {
				if err := reg.EndElection(id, "creator-1", 1050); err != nil {
					t.Fatalf("Failed to end election: %v", err)
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, reg, id := setupVoting(t, tt.now)
			if tt.prepare != nil {
				tt.prepare(t, reg, id)
			}

			headers := map[string]string{}
			if tt.caller != "" {
				headers["X-Caller-ID"] = tt.caller
			}
			req := testutil.MakeRequest("POST", "/elections/"+tt.electionID+"/votes", tt.requestBody, headers)
			req.SetPathValue("id", tt.electionID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestVoteReceipt(t *testing.T) {
	handler, _, _ := setupVoting(t, 1100)
	cfg := testutil.GetTestConfig()

	req := testutil.MakeRequest("POST", "/elections/1/votes",
		models.VoteRequest{CandidateID: 2}, map[string]string{"X-Caller-ID": "v1"})
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Vote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Timestamp != 1100 {
		t.Errorf("Expected timestamp 1100, got %d", resp.Timestamp)
	}
	if err := auth.VerifyReceipt(resp.Receipt, 1, 2, "v1", resp.Timestamp, cfg.ReceiptSalt); err != nil {
		t.Errorf("Receipt does not verify: %v", err)
	}
	// A different voter's fields must not verify against this receipt
	if err := auth.VerifyReceipt(resp.Receipt, 1, 2, "v2", resp.Timestamp, cfg.ReceiptSalt); err == nil {
		t.Error("Receipt verified for the wrong voter")
	}
}

func TestHasVoted(t *testing.T) {
	handler, reg, id := setupVoting(t, 1100)
	testutil.CastTestVote(t, reg, id, 1, "v1", 1050)

	tests := []struct {
		name           string
		electionID     string
		voter          string
		expectedStatus int
		wantVoted      bool
	}{
		{"voted", "1", "v1", http.StatusOK, true},
		{"not voted", "1", "v2", http.StatusOK, false},
		{"unknown election", "42", "v1", http.StatusNotFound, false},
		{"invalid id", "abc", "v1", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/elections/"+tt.electionID+"/voters/"+tt.voter, nil, nil)
			req.SetPathValue("id", tt.electionID)
			req.SetPathValue("voter", tt.voter)
			w := httptest.NewRecorder()

			handler.HasVoted(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.HasVotedResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.HasVoted != tt.wantVoted {
					t.Errorf("has_voted = %v, want %v", resp.HasVoted, tt.wantVoted)
				}
			}
		})
	}
}
