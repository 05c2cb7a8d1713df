// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Winner computes the current leader of an election from accumulated
// counts. Candidates are scanned in ballot order; the first candidate
// to reach the maximum count is reported as winner even when tied, and
// IsTied flags that two or more candidates share the maximum.
//
// Fails with ErrNotFound when no candidate has received any votes.
func (r *Registry) Winner(electionID int64) (WinnerResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return WinnerResult{}, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}

	winningVoteCount := 0
	winningID := 0 // 0 is never issued as a candidate id
	tiedCount := 0

	for _, id := range e.candidateIDs {
		c := e.candidates[id]
		switch {
		case c.VoteCount > winningVoteCount:
			winningVoteCount = c.VoteCount
			winningID = id
			tiedCount = 1
		case c.VoteCount == winningVoteCount && c.VoteCount > 0:
			tiedCount++
		}
	}

	if winningID == 0 {
		return WinnerResult{}, fmt.Errorf("no votes registered in election %d: %w", electionID, ErrNotFound)
	}

	return WinnerResult{
		CandidateID: winningID,
		Name:        e.candidates[winningID].Name,
		VoteCount:   winningVoteCount,
		IsTied:      tiedCount > 1,
	}, nil
}

// Stats reports an election's progress as of the supplied timestamp.
// Ended is true once the election is inactive or its window has
// elapsed, even if no vote or explicit end has flipped isActive yet.
func (r *Registry) Stats(electionID int64, now int64) (StatsResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return StatsResult{}, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}

	ended := !e.isActive || now > e.endTime
	var remaining int64
	if !ended {
		remaining = e.endTime - now
	}

	return StatsResult{
		TotalVotes:     e.totalVotes,
		CandidateCount: len(e.candidateIDs),
		Remaining:      remaining,
		Ended:          ended,
	}, nil
}
