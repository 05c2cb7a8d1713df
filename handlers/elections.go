// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type ElectionHandler struct {
	reg *election.Registry
	cfg cliparse.Config

	// Clock supplies the trusted timestamp attached to every command.
	// Overridable in tests.
	Clock func() int64
}

func NewElectionHandler(reg *election.Registry, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{
		reg:   reg,
		cfg:   cfg,
		Clock: func() int64 { return time.Now().Unix() },
	}
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Caller-ID header required")
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	now := h.Clock()
	id, err := h.reg.CreateElection(req.Title, req.Description, req.DurationSeconds, caller, now)
	if err != nil {
		engineError(w, err)
		return
	}

	slog.Info("election created", "election_id", id, "creator", caller, "duration_s", req.DurationSeconds)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionID: id,
		StartTime:  now,
		EndTime:    now + req.DurationSeconds,
	})
}

// AddCandidate handles POST /elections/{id}/candidates
func (h *ElectionHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	caller := callerID(r)
	if caller == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Caller-ID header required")
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidateID, err := h.reg.AddCandidate(id, req.Name, req.Description, caller)
	if err != nil {
		engineError(w, err)
		return
	}

	slog.Info("candidate added", "election_id", id, "candidate_id", candidateID, "added_by", caller)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: candidateID,
	})
}

// EndElection handles POST /elections/{id}/end
func (h *ElectionHandler) EndElection(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	caller := callerID(r)
	if caller == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Caller-ID header required")
		return
	}

	now := h.Clock()
	if err := h.reg.EndElection(id, caller, now); err != nil {
		engineError(w, err)
		return
	}

	slog.Info("election ended", "election_id", id, "ended_by", caller)

	middleware.JSONResponse(w, http.StatusOK, models.EndElectionResponse{
		EndedAt: now,
	})
}
