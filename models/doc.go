// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain records and the request/response types of the
exercise tracker API.

# Domain Types

  - User: a username with a store-assigned id, serialized as {"_id", "username"}
  - Exercise: description, duration (minutes), date and the owning user id
  - ExerciseFilter: user id, optional date bounds and an optional limit

# Request Types

Request structs carry validate tags checked by the handlers before any store
access:

	type LogExerciseRequest struct {
		Description string      `json:"description" validate:"required"`
		Duration    json.Number `json:"duration" validate:"required"`
		Date        string      `json:"date" validate:"omitempty,isodate"`
	}

The isodate rule is registered by the handlers package.

# Response Types

  - ExerciseResponse: {_id, username, description, duration, date, exercise_id}
  - LogResponse: {username, count, _id, log}
  - ErrorResponse: {error}

Dates in responses are calendar strings such as "Mon Jan 01 2024".
*/
package models
