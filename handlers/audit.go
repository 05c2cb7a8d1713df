// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/journal"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

type AuditHandler struct {
	reg *election.Registry
	db  *sql.DB
}

func NewAuditHandler(reg *election.Registry, db *sql.DB) *AuditHandler {
	return &AuditHandler{reg: reg, db: db}
}

// GetAudit handles GET /elections/{id}/audit
// Returns the election's journal entries in emission order.
func (h *AuditHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := electionIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return
	}

	// Unknown elections are a 404 even though the journal query would
	// just come back empty.
	if _, err := h.reg.ElectionInfo(id); err != nil {
		engineError(w, err)
		return
	}

	entries, err := journal.Entries(h.db, id)
	if err != nil {
		slog.Error("failed to read journal", "error", err, "election_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuditResponse{
		ElectionID: id,
		Entries:    entries,
	})
}
