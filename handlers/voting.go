// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type VotingHandler struct {
	reg *election.Registry
	cfg cliparse.Config

	// Clock supplies the trusted timestamp attached to every command.
	// Overridable in tests.
	Clock func() int64
}

func NewVotingHandler(reg *election.Registry, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{
		reg:   reg,
		cfg:   cfg,
		Clock: func() int64 { return time.Now().Unix() },
	}
}

// Vote handles POST /elections/{id}/votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
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

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	now := h.Clock()
	if err := h.reg.Vote(id, req.CandidateID, caller, now); err != nil {
		engineError(w, err)
		return
	}

	// The receipt lets the voter later match their vote against the
	// audit log without the server storing anything extra.
	receipt := auth.GenerateReceipt(id, req.CandidateID, caller, now, h.cfg.ReceiptSalt)

	slog.Info("vote cast",
		"election_id", id,
		"candidate_id", req.CandidateID,
		"voter_ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.ReceiptSalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Receipt:   receipt,
		Timestamp: now,
		Message:   "Vote recorded",
	})
}

// HasVoted handles GET /elections/{id}/voters/{voter}
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	voter := r.PathValue("voter")
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	voted, err := h.reg.HasVoted(id, voter)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		ElectionID: id,
		VoterID:    voter,
		HasVoted:   voted,
	})
}
