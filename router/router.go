// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/handlers"
	"github.com/danielhkuo/ballot-box/middleware"
)

func NewRouter(reg *election.Registry, db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(reg, cfg)
	votingHandler := handlers.NewVotingHandler(reg, cfg)
	resultsHandler := handlers.NewResultsHandler(reg, cfg)
	auditHandler := handlers.NewAuditHandler(reg, db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election management (owner/creator operations)
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("POST /elections/{id}/candidates", middleware.WithLogging(electionHandler.AddCandidate))
	mux.HandleFunc("POST /elections/{id}/end", middleware.WithLogging(electionHandler.EndElection))

	// Voting operations
	mux.HandleFunc("POST /elections/{id}/votes", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /elections/{id}/voters/{voter}", middleware.WithLogging(votingHandler.HasVoted))

	// Snapshots and results
	mux.HandleFunc("GET /elections", middleware.WithLogging(resultsHandler.ListAll))
	mux.HandleFunc("GET /elections/active", middleware.WithLogging(resultsHandler.ListActive))
	mux.HandleFunc("GET /elections/{id}", middleware.WithLogging(resultsHandler.GetElection))
	mux.HandleFunc("GET /elections/{id}/candidates", middleware.WithLogging(resultsHandler.GetCandidates))
	mux.HandleFunc("GET /elections/{id}/winner", middleware.WithLogging(resultsHandler.GetWinner))
	mux.HandleFunc("GET /elections/{id}/stats", middleware.WithLogging(resultsHandler.GetStats))
	mux.HandleFunc("GET /info", middleware.WithLogging(resultsHandler.GetRegistryInfo))

	// Audit trail
	mux.HandleFunc("GET /elections/{id}/audit", middleware.WithLogging(auditHandler.GetAudit))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballot-box API v1"))
	})

	return mux
}
