// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ballot Box API.

# Handler Types

Each handler is a struct holding the election registry and config:

  - ElectionHandler: election lifecycle (create, add candidate, end)
  - VotingHandler: vote casting and has-voted lookups
  - ResultsHandler: snapshots, winner, stats, id listings
  - AuditHandler: journal entries for an election

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(reg, cfg)

Mutating handlers carry a Clock field supplying the trusted timestamp
for each command; tests override it to pin time.

# Caller Identity

Mutations require the X-Caller-ID header, set by the fronting
transport/auth layer and trusted as-is. The engine enforces the two
authorization roles (registry owner, election creator).

# Election Lifecycle

	POST /elections                  → CreateElection
	POST /elections/{id}/candidates  → AddCandidate (owner or creator)
	POST /elections/{id}/votes       → Vote (returns a receipt)
	POST /elections/{id}/end         → EndElection (owner or creator)

# Error Mapping

Engine error kinds map onto HTTP status codes:

	NotFound     → 404
	Forbidden    → 403
	InvalidInput → 400
	InvalidState → 409
	AlreadyVoted → 409

The JSON error envelope carries the wrapped engine message.
*/
package handlers
