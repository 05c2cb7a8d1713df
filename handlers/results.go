// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type ResultsHandler struct {
	reg *election.Registry
	cfg cliparse.Config

	// Clock supplies "now" for stats. Overridable in tests.
	Clock func() int64
}

func NewResultsHandler(reg *election.Registry, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		reg:   reg,
		cfg:   cfg,
		Clock: func() int64 { return time.Now().Unix() },
	}
}

// GetElection handles GET /elections/{id}
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	info, err := h.reg.ElectionInfo(id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// GetCandidates handles GET /elections/{id}/candidates
func (h *ResultsHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	list, err := h.reg.Candidates(id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// GetWinner handles GET /elections/{id}/winner
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	result, err := h.reg.Winner(id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetStats handles GET /elections/{id}/stats
func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	stats, err := h.reg.Stats(id, h.Clock())
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// ListActive handles GET /elections/active
// Order of the returned ids is not meaningful.
func (h *ResultsHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionListResponse{
		ElectionIDs: h.reg.ActiveElections(),
	})
}

// ListAll handles GET /elections
// Ids are returned in creation order.
func (h *ResultsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionListResponse{
		ElectionIDs: h.reg.AllElections(),
	})
}

// GetRegistryInfo handles GET /info
func (h *ResultsHandler) GetRegistryInfo(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.reg.Info())
}
