// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sync"
)

// Registry owns the collection of elections. All operations, reads
// included, are serialized behind a single mutex: one command runs to
// completion (including any chained auto-end) before the next is
// admitted, so no caller ever observes a half-applied mutation.
//
// The registry never reads the wall clock; every command that needs
// time receives a caller-supplied unix-seconds timestamp from the
// trusted transport layer.
type Registry struct {
	mu        sync.Mutex
	ownerID   string
	nextID    int64
	elections map[int64]*Election

	// activeIDs has no guaranteed order: ended elections are removed by
	// swapping the last element into their slot. allIDs is creation
	// order and never shrinks.
	activeIDs []int64
	allIDs    []int64

	sink EventSink
}

// NewRegistry creates an empty registry owned by ownerID. The sink may
// be nil; otherwise it receives every domain event synchronously.
func NewRegistry(ownerID string, sink EventSink) *Registry {
	return &Registry{
		ownerID:   ownerID,
		elections: make(map[int64]*Election),
		sink:      sink,
	}
}

func (r *Registry) emit(ev Event) {
	if r.sink != nil {
		r.sink(ev)
	}
}

// authorized reports whether callerID may administer e: the registry
// owner and the election's creator are the only two roles.
func (r *Registry) authorized(callerID string, e *Election) bool {
	return callerID == r.ownerID || callerID == e.creatorID
}

// CreateElection registers a new election running from now to
// now+durationSeconds and returns its id. Any caller may create an
// election; ids are sequential starting at 1.
func (r *Registry) CreateElection(title, description string, durationSeconds int64, callerID string, now int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if title == "" {
		return 0, fmt.Errorf("title must not be empty: %w", ErrInvalidInput)
	}
	if durationSeconds <= 0 {
		return 0, fmt.Errorf("duration must be positive: %w", ErrInvalidInput)
	}

	r.nextID++
	id := r.nextID

	e := &Election{
		id:          id,
		title:       title,
		description: description,
		startTime:   now,
		endTime:     now + durationSeconds,
		isActive:    true,
		creatorID:   callerID,
		candidates:  make(map[int]*Candidate),
		hasVoted:    make(map[string]bool),
	}

	r.elections[id] = e
	r.allIDs = append(r.allIDs, id)
	r.activeIDs = append(r.activeIDs, id)

	r.emit(ElectionCreated{
		ElectionID: id,
		Title:      title,
		CreatorID:  callerID,
		StartTime:  e.startTime,
		EndTime:    e.endTime,
	})

	return id, nil
}

// AddCandidate appends a candidate to an active election's ballot and
// returns the assigned candidate id. Only the registry owner or the
// election's creator may add candidates.
func (r *Registry) AddCandidate(electionID int64, name, description, callerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return 0, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}
	if !r.authorized(callerID, e) {
		return 0, fmt.Errorf("caller %q may not modify election %d: %w", callerID, electionID, ErrForbidden)
	}
	if name == "" {
		return 0, fmt.Errorf("candidate name must not be empty: %w", ErrInvalidInput)
	}
	if !e.isActive {
		return 0, fmt.Errorf("election %d has ended: %w", electionID, ErrInvalidState)
	}

	id := len(e.candidateIDs) + 1
	e.candidates[id] = &Candidate{
		ID:          id,
		Name:        name,
		Description: description,
	}
	e.candidateIDs = append(e.candidateIDs, id)

	r.emit(CandidateAdded{
		ElectionID:  electionID,
		CandidateID: id,
		Name:        name,
		AddedBy:     callerID,
	})

	return id, nil
}

// Vote records a single vote by callerID for the given candidate. Each
// identity may vote at most once per election; votes are accepted only
// inside the inclusive [startTime, endTime] window of an active
// election. All checks precede any mutation, so a failed vote leaves
// no trace.
func (r *Registry) Vote(electionID int64, candidateID int, callerID string, now int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}
	if !e.isActive {
		return fmt.Errorf("election %d has ended: %w", electionID, ErrInvalidState)
	}
	if now < e.startTime {
		return fmt.Errorf("voting has not started: %w", ErrInvalidState)
	}
	if now > e.endTime {
		return fmt.Errorf("voting window closed: %w", ErrInvalidState)
	}
	if e.hasVoted[callerID] {
		return fmt.Errorf("voter %q already voted in election %d: %w", callerID, electionID, ErrAlreadyVoted)
	}
	if len(e.candidateIDs) == 0 {
		return fmt.Errorf("election %d has no candidates: %w", electionID, ErrInvalidInput)
	}
	c, ok := e.candidates[candidateID]
	if !ok {
		return fmt.Errorf("candidate %d does not exist in election %d: %w", candidateID, electionID, ErrInvalidInput)
	}

	e.hasVoted[callerID] = true
	c.VoteCount++
	e.totalVotes++
	e.votes = append(e.votes, VoteRecord{
		VoterID:     callerID,
		CandidateID: candidateID,
		Timestamp:   now,
	})

	r.emit(VoteCasted{
		ElectionID:  electionID,
		CandidateID: candidateID,
		VoterID:     callerID,
		Timestamp:   now,
	})

	// Post-vote auto-end. Unreachable while the window guard above holds
	// (it rejects now > endTime), but kept as a second line of defense
	// should the guard ever be relaxed.
	if now > e.endTime && e.isActive {
		// The end routine cannot fail here: isActive was just checked.
		_ = r.end(e, now)
	}

	return nil
}

// EndElection transitions an election to inactive ahead of (or after)
// its window. Only the registry owner or the election's creator may end
// an election; ending twice fails.
func (r *Registry) EndElection(electionID int64, callerID string, now int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}
	if !r.authorized(callerID, e) {
		return fmt.Errorf("caller %q may not end election %d: %w", callerID, electionID, ErrForbidden)
	}

	return r.end(e, now)
}

// end is the single transition to the inactive state, shared by manual
// end and post-vote auto-end. Callers hold r.mu and have already
// authorized the actor (auto-end has no actor). The transition is
// terminal: an inactive election never becomes active again.
func (r *Registry) end(e *Election, now int64) error {
	if !e.isActive {
		return fmt.Errorf("election %d already ended: %w", e.id, ErrInvalidState)
	}

	e.isActive = false
	r.removeActive(e.id)

	r.emit(ElectionEnded{
		ElectionID: e.id,
		TotalVotes: e.totalVotes,
		EndedAt:    now,
	})
	r.emit(ElectionStatusChanged{
		ElectionID: e.id,
		IsActive:   false,
	})

	return nil
}

// removeActive drops id from activeIDs by swapping the last element
// into its slot and truncating. O(1), but reorders the slice, which is
// fine: activeIDs is documented unordered.
func (r *Registry) removeActive(id int64) {
	for i, v := range r.activeIDs {
		if v == id {
			last := len(r.activeIDs) - 1
			r.activeIDs[i] = r.activeIDs[last]
			r.activeIDs = r.activeIDs[:last]
			return
		}
	}
}

// ElectionInfo returns a metadata snapshot for an election.
func (r *Registry) ElectionInfo(electionID int64) (Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return Info{}, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}

	return Info{
		ID:             e.id,
		Title:          e.title,
		Description:    e.description,
		StartTime:      e.startTime,
		EndTime:        e.endTime,
		IsActive:       e.isActive,
		CreatorID:      e.creatorID,
		TotalVotes:     e.totalVotes,
		CandidateCount: len(e.candidateIDs),
	}, nil
}

// Candidates returns the ballot as parallel arrays in insertion order.
func (r *Registry) Candidates(electionID int64) (CandidateList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return CandidateList{}, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}

	n := len(e.candidateIDs)
	list := CandidateList{
		IDs:          make([]int, 0, n),
		Names:        make([]string, 0, n),
		Descriptions: make([]string, 0, n),
		VoteCounts:   make([]int, 0, n),
	}
	for _, id := range e.candidateIDs {
		c := e.candidates[id]
		list.IDs = append(list.IDs, c.ID)
		list.Names = append(list.Names, c.Name)
		list.Descriptions = append(list.Descriptions, c.Description)
		list.VoteCounts = append(list.VoteCounts, c.VoteCount)
	}

	return list, nil
}

// HasVoted reports whether voterID has already voted in an election.
func (r *Registry) HasVoted(electionID int64, voterID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return false, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}

	return e.hasVoted[voterID], nil
}

// Votes returns a copy of an election's append-only vote log in cast
// order.
func (r *Registry) Votes(electionID int64) ([]VoteRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elections[electionID]
	if !ok {
		return nil, fmt.Errorf("election %d: %w", electionID, ErrNotFound)
	}

	out := make([]VoteRecord, len(e.votes))
	copy(out, e.votes)
	return out, nil
}

// ActiveElections returns the ids of elections still accepting votes.
// The order is not meaningful.
func (r *Registry) ActiveElections() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, len(r.activeIDs))
	copy(out, r.activeIDs)
	return out
}

// AllElections returns every election id in creation order.
func (r *Registry) AllElections() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, len(r.allIDs))
	copy(out, r.allIDs)
	return out
}

// Info returns a snapshot of the registry itself.
func (r *Registry) Info() RegistryInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	return RegistryInfo{
		OwnerID:         r.ownerID,
		TotalElections:  len(r.allIDs),
		ActiveElections: len(r.activeIDs),
	}
}
