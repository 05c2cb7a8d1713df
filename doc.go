// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ballot Box API server.

Ballot Box is an authoritative election-management engine: it admits
creation of time-bounded elections, registration of candidates, one
vote per identity per election, and deterministic winner computation,
while journaling every domain event as an immutable audit trail.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	OWNER_ID=admin RECEIPT_SALT=... go run main.go

Or with flags:

	go run main.go -p 3318 --owner admin --receipt-salt ...

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - OWNER_ID (--owner): Registry owner identity
  - RECEIPT_SALT (--receipt-salt): Secret for vote receipt HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): Journal DB URL; defaults to a local sqlite file

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the core state machine (registry, elections, winner/stats)
  - journal: append-only SQL persistence of domain events
  - handlers: HTTP request handlers (elections, voting, results, audit)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Vote receipts and privacy hashing
  - db: Schema creation
  - cliparse: Configuration parsing

All election state is in-memory behind a single writer lock; the SQL
database holds only the event journal. See package documentation for
each component.
*/
package main
