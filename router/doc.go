// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the exercise tracker.

# Route Registration

NewRouter builds an http.ServeMux over a store and wraps it with CORS and
request metrics:

	handler := router.NewRouter(st)

# Endpoints

Operations:

	GET /health  - 200 OK when the store answers a ping, 503 otherwise
	GET /metrics - Prometheus exposition

Users:

	POST /api/users - Find or create a user by username
	GET  /api/users - List all users

Exercises:

	POST /api/users/{id}/exercises - Log an exercise
	GET  /api/users/{id}/logs      - Query the exercise log (from, to, limit)

Static:

	GET /        - Landing page
	GET /{asset} - Embedded stylesheet and other public files

API routes are wrapped with middleware.WithLogging.
*/
package router
