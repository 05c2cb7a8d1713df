// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Candidate is a single entry on an election's ballot. Ids are assigned
// sequentially within an election starting at 1; id 0 is never issued
// and serves as the "no winner" sentinel in Winner results.
type Candidate struct {
	ID          int
	Name        string
	Description string
	VoteCount   int
}

// VoteRecord is one entry in an election's append-only vote log.
// Records are never mutated or removed.
type VoteRecord struct {
	VoterID     string
	CandidateID int
	Timestamp   int64
}

// Election is the per-election aggregate. All fields are unexported;
// every access goes through the owning Registry under its lock.
type Election struct {
	id          int64
	title       string
	description string
	startTime   int64
	endTime     int64
	isActive    bool
	creatorID   string
	totalVotes  int

	// candidateIDs is dense (1..N) in insertion order; candidates maps
	// id to record. Map membership is the existence flag.
	candidateIDs []int
	candidates   map[int]*Candidate

	hasVoted map[string]bool
	votes    []VoteRecord
}

// Info is a read-only snapshot of an election's metadata.
type Info struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartTime      int64  `json:"start_time"`
	EndTime        int64  `json:"end_time"`
	IsActive       bool   `json:"is_active"`
	CreatorID      string `json:"creator_id"`
	TotalVotes     int    `json:"total_votes"`
	CandidateCount int    `json:"candidate_count"`
}

// CandidateList is the parallel-array candidate snapshot: entry i of
// each slice describes the same candidate.
type CandidateList struct {
	IDs          []int    `json:"ids"`
	Names        []string `json:"names"`
	Descriptions []string `json:"descriptions"`
	VoteCounts   []int    `json:"vote_counts"`
}

// WinnerResult reports the current leader of an election. When IsTied
// is true, CandidateID is the first candidate (in ballot order) to
// have reached the maximum vote count.
type WinnerResult struct {
	CandidateID int    `json:"candidate_id"`
	Name        string `json:"name"`
	VoteCount   int    `json:"vote_count"`
	IsTied      bool   `json:"is_tied"`
}

// StatsResult summarizes an election's progress at a point in time.
type StatsResult struct {
	TotalVotes     int   `json:"total_votes"`
	CandidateCount int   `json:"candidate_count"`
	Remaining      int64 `json:"remaining_seconds"`
	Ended          bool  `json:"ended"`
}

// RegistryInfo summarizes the registry itself.
type RegistryInfo struct {
	OwnerID         string `json:"owner_id"`
	TotalElections  int    `json:"total_elections"`
	ActiveElections int    `json:"active_elections"`
}
