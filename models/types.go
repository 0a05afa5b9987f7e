// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Domain types

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
}

// ExerciseFilter selects one user's exercises.
// A nil bound adds no date clause; Limit 0 means unbounded.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// HasDateRange reports whether the filter constrains the exercise date at all.
func (f ExerciseFilter) HasDateRange() bool {
	return f.From != nil || f.To != nil
}

// Request types

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// Duration is a json.Number so that form posts ("30") and JSON numbers (30) decode alike.
type LogExerciseRequest struct {
	Description string      `json:"description" validate:"required"`
	Duration    json.Number `json:"duration" validate:"required"`
	Date        string      `json:"date" validate:"omitempty,isodate"`
}

type LogQuery struct {
	From  string `json:"from" validate:"omitempty,isodate"`
	To    string `json:"to" validate:"omitempty,isodate"`
	Limit string `json:"limit" validate:"omitempty,number"`
}

// Response types

// ExerciseResponse is keyed by the owning user's id, the exercise's own id is exercise_id.
type ExerciseResponse struct {
	UserID      string  `json:"_id"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
	ExerciseID  string  `json:"exercise_id"`
}

type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	UserID   string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
