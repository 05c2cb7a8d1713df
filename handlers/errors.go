// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
)

// engineStatus maps engine error kinds to HTTP status codes.
// AlreadyVoted and InvalidState both map to 409; the error message
// distinguishes them.
func engineStatus(err error) int {
	switch {
	case errors.Is(err, election.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, election.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, election.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrInvalidState), errors.Is(err, election.ErrAlreadyVoted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// engineError writes an engine failure as a JSON error response.
func engineError(w http.ResponseWriter, err error) {
	middleware.ErrorResponse(w, engineStatus(err), err.Error())
}

// electionIDFromPath parses the {id} path segment.
func electionIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// callerID extracts the trusted caller identity established by the
// fronting transport layer. Empty means the request is anonymous.
func callerID(r *http.Request) string {
	return r.Header.Get("X-Caller-ID")
}
