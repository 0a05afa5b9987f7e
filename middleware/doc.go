// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/users", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, size,
duration_ms).

# CORS Middleware

Enable cross-origin requests from any origin:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Preflight OPTIONS requests are answered with 204 and never reach the mux.

# Metrics

Metrics records Prometheus request counters and latency histograms labelled
by the matched ServeMux pattern. UsersCreated and ExercisesLogged are bumped
by the handlers. The registry is exposed by the router at GET /metrics.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Error bodies always have the shape {"error": "message"}.

Parse request bodies (JSON, URL-encoded or multipart forms):

	var req models.LogExerciseRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
