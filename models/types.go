// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/ballot-box/journal"

// Request types

type CreateElectionRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type AddCandidateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type VoteRequest struct {
	CandidateID int `json:"candidate_id"`
}

// Response types

type CreateElectionResponse struct {
	ElectionID int64 `json:"election_id"`
	StartTime  int64 `json:"start_time"`
	EndTime    int64 `json:"end_time"`
}

type AddCandidateResponse struct {
	CandidateID int `json:"candidate_id"`
}

type VoteResponse struct {
	Receipt   string `json:"receipt"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

type EndElectionResponse struct {
	EndedAt int64 `json:"ended_at"`
}

type HasVotedResponse struct {
	ElectionID int64  `json:"election_id"`
	VoterID    string `json:"voter_id"`
	HasVoted   bool   `json:"has_voted"`
}

type ElectionListResponse struct {
	ElectionIDs []int64 `json:"election_ids"`
}

type AuditResponse struct {
	ElectionID int64           `json:"election_id"`
	Entries    []journal.Entry `json:"entries"`
}

// Snapshot responses (election.Info, election.CandidateList,
// election.WinnerResult, election.StatsResult, election.RegistryInfo)
// are returned from the engine as-is; they carry their own json tags.

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
