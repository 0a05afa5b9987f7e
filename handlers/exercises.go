// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

type ExerciseHandler struct {
	store store.Store
	now   func() time.Time
}

func NewExerciseHandler(st store.Store) *ExerciseHandler {
	return &ExerciseHandler{store: st, now: time.Now}
}

// LogExercise handles POST /api/users/{id}/exercises
func (h *ExerciseHandler) LogExercise(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	var req models.LogExerciseRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.logExercise(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.ExercisesLogged.Inc()
	slog.Info("exercise logged", "user_id", userID, "exercise_id", resp.ExerciseID)

	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// logExercise checks the user before touching the exercise, so an unknown
// user never gets a record persisted.
func (h *ExerciseHandler) logExercise(ctx context.Context, userID string, req models.LogExerciseRequest) (models.ExerciseResponse, error) {
	user, err := findUser(ctx, h.store, userID)
	if err != nil {
		return models.ExerciseResponse{}, err
	}

	if err := validateRequest(req); err != nil {
		return models.ExerciseResponse{}, err
	}

	duration, err := req.Duration.Float64()
	if err != nil {
		return models.ExerciseResponse{}, invalid("duration must be a number")
	}

	date := h.now()
	if req.Date != "" {
		date, err = ParseDate(req.Date)
		if err != nil {
			return models.ExerciseResponse{}, invalid("date must be a date such as 2024-01-31")
		}
	}

	created, err := h.store.CreateExercise(ctx, models.Exercise{
		UserID:      user.ID,
		Description: req.Description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return models.ExerciseResponse{}, err
	}

	// respond with what the store actually kept
	saved, err := h.store.FindExerciseByID(ctx, created.ID)
	if err != nil {
		return models.ExerciseResponse{}, err
	}

	return models.ExerciseResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Description: saved.Description,
		Duration:    saved.Duration,
		Date:        CalendarString(saved.Date),
		ExerciseID:  saved.ID,
	}, nil
}
