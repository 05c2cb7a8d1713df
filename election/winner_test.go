// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"testing"
)

func TestWinner(t *testing.T) {
	// votes maps voter ids to candidate ids; all cast at t=1100.
	tests := []struct {
		name       string
		candidates []string
		votes      map[string]int
		wantID     int
		wantName   string
		wantCount  int
		wantTied   bool
		wantErr    error
	}{
		{
			name:       "no candidates",
			candidates: nil,
			votes:      nil,
			wantErr:    ErrNotFound,
		},
		{
			name:       "candidates but no votes",
			candidates: []string{"Alice", "Bob"},
			votes:      nil,
			wantErr:    ErrNotFound,
		},
		{
			name:       "strict maximum",
			candidates: []string{"Alice", "Bob", "Carol"},
			votes:      map[string]int{"v1": 2, "v2": 2, "v3": 1},
			wantID:     2,
			wantName:   "Bob",
			wantCount:  2,
			wantTied:   false,
		},
		{
			name:       "two-way tie reports first to max",
			candidates: []string{"Alice", "Bob"},
			votes:      map[string]int{"v1": 1, "v2": 2},
			wantID:     1,
			wantName:   "Alice",
			wantCount:  1,
			wantTied:   true,
		},
		{
			name:       "three-way tie",
			candidates: []string{"Alice", "Bob", "Carol"},
			votes:      map[string]int{"v1": 1, "v2": 2, "v3": 3},
			wantID:     1,
			wantName:   "Alice",
			wantCount:  1,
			wantTied:   true,
		},
		{
			name:       "later candidate overtakes earlier tie",
			candidates: []string{"Alice", "Bob", "Carol"},
			votes:      map[string]int{"v1": 1, "v2": 2, "v3": 3, "v4": 3},
			wantID:     3,
			wantName:   "Carol",
			wantCount:  2,
			wantTied:   false,
		},
		{
			name:       "zero-vote candidates never tie",
			candidates: []string{"Alice", "Bob", "Carol"},
			votes:      map[string]int{"v1": 2},
			wantID:     2,
			wantName:   "Bob",
			wantCount:  1,
			wantTied:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry()
			id, err := reg.CreateElection("E", "", 3600, creatorID, 1000)
			if err != nil {
				t.Fatalf("CreateElection failed: %v", err)
			}
			for _, name := range tt.candidates {
				if _, err := reg.AddCandidate(id, name, "", creatorID); err != nil {
					t.Fatalf("AddCandidate failed: %v", err)
				}
			}
			// Map iteration order doesn't matter: counts, not sequence,
			// decide the winner here.
			for voter, candidate := range tt.votes {
				if err := reg.Vote(id, candidate, voter, 1100); err != nil {
					t.Fatalf("Vote(%q, %d) failed: %v", voter, candidate, err)
				}
			}

			result, err := reg.Winner(id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Winner failed: %v", err)
			}

			if result.CandidateID != tt.wantID || result.Name != tt.wantName {
				t.Errorf("Winner = (%d, %q), want (%d, %q)",
					result.CandidateID, result.Name, tt.wantID, tt.wantName)
			}
			if result.VoteCount != tt.wantCount {
				t.Errorf("VoteCount = %d, want %d", result.VoteCount, tt.wantCount)
			}
			if result.IsTied != tt.wantTied {
				t.Errorf("IsTied = %v, want %v", result.IsTied, tt.wantTied)
			}
		})
	}

	t.Run("unknown election", func(t *testing.T) {
		reg := newTestRegistry()
		if _, err := reg.Winner(99); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestWinnerAvailableOnEndedElection(t *testing.T) {
	reg := newTestRegistry()
	id, _ := reg.CreateElection("E", "", 3600, creatorID, 1000)
	reg.AddCandidate(id, "Alice", "", creatorID)
	reg.Vote(id, 1, "v1", 1100)
	reg.EndElection(id, creatorID, 1200)

	result, err := reg.Winner(id)
	if err != nil {
		t.Fatalf("Winner on ended election failed: %v", err)
	}
	if result.Name != "Alice" || result.VoteCount != 1 {
		t.Errorf("Unexpected result %+v", result)
	}
}

func TestStats(t *testing.T) {
	setup := func(t *testing.T) (*Registry, int64) {
		reg := newTestRegistry()
		id, err := reg.CreateElection("E", "", 3600, creatorID, 1000)
		if err != nil {
			t.Fatalf("CreateElection failed: %v", err)
		}
		reg.AddCandidate(id, "Alice", "", creatorID)
		reg.AddCandidate(id, "Bob", "", creatorID)
		reg.Vote(id, 1, "v1", 1100)
		return reg, id
	}

	t.Run("running election", func(t *testing.T) {
		reg, id := setup(t)
		stats, err := reg.Stats(id, 1600)
		if err != nil {
			t.Fatalf("Stats failed: %v", err)
		}
		if stats.Ended {
			t.Error("Election should not be ended at t=1600")
		}
		if stats.Remaining != 3000 {
			t.Errorf("Remaining = %d, want 3000", stats.Remaining)
		}
		if stats.TotalVotes != 1 || stats.CandidateCount != 2 {
			t.Errorf("Unexpected stats %+v", stats)
		}
	})

	t.Run("boundary is still running", func(t *testing.T) {
		reg, id := setup(t)
		stats, _ := reg.Stats(id, 4600)
		if stats.Ended {
			t.Error("Election should not be ended exactly at endTime")
		}
		if stats.Remaining != 0 {
			t.Errorf("Remaining = %d, want 0 at endTime", stats.Remaining)
		}
	})

	t.Run("window elapsed without explicit end", func(t *testing.T) {
		// Scenario C: isActive is stale but the stats still report ended.
		reg, id := setup(t)
		stats, _ := reg.Stats(id, 4700)
		if !stats.Ended {
			t.Error("Election past endTime must report ended")
		}
		if stats.Remaining != 0 {
			t.Errorf("Remaining = %d, want 0", stats.Remaining)
		}

		info, _ := reg.ElectionInfo(id)
		if !info.IsActive {
			t.Error("Stats must not flip isActive")
		}
	})

	t.Run("explicitly ended", func(t *testing.T) {
		reg, id := setup(t)
		reg.EndElection(id, creatorID, 1500)
		stats, _ := reg.Stats(id, 1600)
		if !stats.Ended || stats.Remaining != 0 {
			t.Errorf("Unexpected stats after end: %+v", stats)
		}
	})

	t.Run("unknown election", func(t *testing.T) {
		reg, _ := setup(t)
		if _, err := reg.Stats(99, 1600); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})
}
