// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the exercise tracker.

# Handler Types

Each handler is a struct holding the store it reads and writes:

  - UserHandler: find-or-create by username, list users
  - ExerciseHandler: log an exercise for an existing user
  - LogHandler: query a user's exercise log
  - HealthHandler: report whether the store answers

Handlers are created via constructor functions that accept a store.Store:

	userHandler := handlers.NewUserHandler(st)

# Request Bodies

POST bodies may be JSON, URL-encoded or multipart forms. Fields are checked
with go-playground/validator tags declared on the request types in models.

# Errors

Handlers compute a value or an error and hand errors to a single mapping:

	ValidationError      → 400 with the validation message
	ErrUserNotFound      → 404 "User does not exist."
	store.ErrInvalidID   → 400 "invalid user id"
	store.ErrDuplicate   → 409 "username already taken"
	anything else        → 500 "Database error" (logged)

# Dates

Input dates are ISO days or timestamps and are read as UTC. Responses render
dates with CalendarLayout, e.g. "Mon Jan 01 2024".
*/
package handlers
