// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: logs request start/completion with method, path, and
    duration via slog
  - CORS: permissive cross-origin headers plus preflight handling

# Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse envelope
  - ParseJSONBody: decode a request body into a struct
  - GetClientIP: client IP from X-Forwarded-For / X-Real-IP / RemoteAddr
*/
package middleware
