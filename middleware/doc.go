// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Sessions

Gate handlers on a live session, or on an admin session:

	mux.HandleFunc("POST /votes", middleware.RequireSession(sessions, h.Vote))
	mux.HandleFunc("POST /polls", middleware.RequireAdmin(sessions, h.CreatePoll))

The token is read from X-Session-Token or "Authorization: Bearer <token>".
Missing or unknown tokens get 401; non-admin sessions on admin routes get
403. Handlers read the caller with:

	s := middleware.SessionFrom(r.Context())

# CORS Middleware

Enable cross-origin requests for frontend access (github.com/rs/cors):

	handler := middleware.CORS([]string{"http://localhost:5173"}, mux)

Allows methods GET, POST, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Session-Token.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
