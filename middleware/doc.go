// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), and observes popvote_http_request_duration_seconds.

# Visitors

WithVisitor resolves the anonymous visitor id used to scope preferences.
The X-Visitor-ID header wins, then the popvote_visitor cookie; otherwise a
new UUID is issued as a cookie.

	mux.HandleFunc("GET /preferences/overlay",
		middleware.WithLogging(middleware.WithVisitor(h.GetOverlay)))

	visitor := middleware.VisitorID(r.Context())

# CORS Middleware

Enable cross-origin requests for embedding pages:

	server := http.Server{
		Handler: middleware.CORS(mux, cfg.AllowedOrigins...),
	}

Listed origins get credentialed access with methods GET, POST, PUT, DELETE,
OPTIONS and headers Content-Type, Authorization, X-Admin-Key, X-Visitor-ID.
Any other origin gets Access-Control-Allow-Origin "*" for GET only.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SetPreferenceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
