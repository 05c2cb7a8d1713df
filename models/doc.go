// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and error types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: title, description, duration_seconds
  - AddCandidateRequest: name, description
  - VoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election_id, start_time, end_time
  - AddCandidateResponse: candidate_id
  - VoteResponse: receipt, timestamp, message
  - EndElectionResponse: ended_at
  - HasVotedResponse: election_id, voter_id, has_voted
  - ElectionListResponse: election_ids
  - AuditResponse: election_id, entries
  - ErrorResponse: error, message

Engine snapshots (election.Info, election.CandidateList,
election.WinnerResult, election.StatsResult, election.RegistryInfo)
are serialized directly; they carry their own json tags.
*/
package models
