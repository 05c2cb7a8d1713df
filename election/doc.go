// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the election state machine: a registry of
time-bounded elections, per-election candidate ballots, one vote per
identity per election, and deterministic winner computation over an
append-only vote log.

# Registry

All state hangs off a Registry created once at process start:

	reg := election.NewRegistry(ownerID, sink)

Every operation — mutating or read-only — is serialized behind the
registry's single mutex. One command runs to completion (including a
chained auto-end) before the next is admitted, so there are no partial
commits and no torn reads. Operations are cheap and never block on
I/O, so the single lock is not a practical bottleneck.

# Lifecycle

An election is created active with an inclusive voting window
[startTime, endTime], accumulates candidates and votes, and becomes
inactive exactly once, either by an explicit EndElection or as a
side effect of a vote observed past the window. Inactive is terminal:
the election remains readable forever but rejects further candidates
and votes.

# Time

The registry never reads the wall clock. Commands carry a
caller-supplied unix-seconds timestamp from the trusted transport
layer, which keeps the engine deterministic and trivially testable.

# Errors

Failures are typed sentinels (ErrNotFound, ErrForbidden,
ErrInvalidInput, ErrInvalidState, ErrAlreadyVoted) wrapped with
context. Every check precedes every mutation: a failed command changes
nothing.

# Events

Successful mutations emit domain events (ElectionCreated,
CandidateAdded, VoteCasted, ElectionEnded, ElectionStatusChanged) to
the registry's EventSink, synchronously and in a fixed order. The
journal package persists them as the audit trail.
*/
package election
