// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Event kind constants, used as the journal discriminator column.
const (
	KindElectionCreated       = "election_created"
	KindCandidateAdded        = "candidate_added"
	KindVoteCasted            = "vote_casted"
	KindElectionEnded         = "election_ended"
	KindElectionStatusChanged = "election_status_changed"
)

// Event is a domain event emitted by the Registry after a successful
// mutation. Events are delivered synchronously, in emission order, on
// the goroutine that performed the mutation.
type Event interface {
	Kind() string
	Election() int64
}

// EventSink receives every emitted event. The sink runs inside the
// registry's serialization critical section and must not call back
// into the Registry.
type EventSink func(Event)

type ElectionCreated struct {
	ElectionID int64  `json:"election_id"`
	Title      string `json:"title"`
	CreatorID  string `json:"creator_id"`
	StartTime  int64  `json:"start_time"`
	EndTime    int64  `json:"end_time"`
}

func (e ElectionCreated) Kind() string    { return KindElectionCreated }
func (e ElectionCreated) Election() int64 { return e.ElectionID }

type CandidateAdded struct {
	ElectionID  int64  `json:"election_id"`
	CandidateID int    `json:"candidate_id"`
	Name        string `json:"name"`
	AddedBy     string `json:"added_by"`
}

func (e CandidateAdded) Kind() string    { return KindCandidateAdded }
func (e CandidateAdded) Election() int64 { return e.ElectionID }

type VoteCasted struct {
	ElectionID  int64  `json:"election_id"`
	CandidateID int    `json:"candidate_id"`
	VoterID     string `json:"voter_id"`
	Timestamp   int64  `json:"timestamp"`
}

func (e VoteCasted) Kind() string    { return KindVoteCasted }
func (e VoteCasted) Election() int64 { return e.ElectionID }

type ElectionEnded struct {
	ElectionID int64 `json:"election_id"`
	TotalVotes int   `json:"total_votes"`
	EndedAt    int64 `json:"ended_at"`
}

func (e ElectionEnded) Kind() string    { return KindElectionEnded }
func (e ElectionEnded) Election() int64 { return e.ElectionID }

type ElectionStatusChanged struct {
	ElectionID int64 `json:"election_id"`
	IsActive   bool  `json:"is_active"`
}

func (e ElectionStatusChanged) Kind() string    { return KindElectionStatusChanged }
func (e ElectionStatusChanged) Election() int64 { return e.ElectionID }
