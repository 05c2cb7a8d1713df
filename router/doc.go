// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires handlers onto a stdlib ServeMux using Go 1.22+ method
and path patterns:

	mux := router.NewRouter(reg, dbConn, cfg)

Routes:

	GET  /health
	GET  /info
	GET  /elections
	GET  /elections/active
	POST /elections
	GET  /elections/{id}
	POST /elections/{id}/candidates
	POST /elections/{id}/votes
	POST /elections/{id}/end
	GET  /elections/{id}/candidates
	GET  /elections/{id}/voters/{voter}
	GET  /elections/{id}/winner
	GET  /elections/{id}/stats
	GET  /elections/{id}/audit

All routes are wrapped with request logging middleware.
*/
package router
