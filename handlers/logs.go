// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

type LogHandler struct {
	store store.Store
}

func NewLogHandler(st store.Store) *LogHandler {
	return &LogHandler{store: st}
}

// GetLogs handles GET /api/users/{id}/logs?from=&to=&limit=
func (h *LogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	q := r.URL.Query()
	query := models.LogQuery{
		From:  q.Get("from"),
		To:    q.Get("to"),
		Limit: q.Get("limit"),
	}

	resp, err := h.getLogs(r.Context(), userID, query)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// getLogs reports count as the number of entries returned, i.e. after the
// limit has been applied by the store.
func (h *LogHandler) getLogs(ctx context.Context, userID string, query models.LogQuery) (models.LogResponse, error) {
	user, err := findUser(ctx, h.store, userID)
	if err != nil {
		return models.LogResponse{}, err
	}

	filter, err := buildFilter(user.ID, query)
	if err != nil {
		return models.LogResponse{}, err
	}

	exercises, err := h.store.FindExercises(ctx, filter)
	if err != nil {
		return models.LogResponse{}, err
	}

	log := make([]models.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, models.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        CalendarString(e.Date),
		})
	}

	return models.LogResponse{
		Username: user.Username,
		Count:    len(log),
		UserID:   user.ID,
		Log:      log,
	}, nil
}

// buildFilter leaves From/To nil for absent bounds so no date clause is added.
func buildFilter(userID string, query models.LogQuery) (models.ExerciseFilter, error) {
	if err := validateRequest(query); err != nil {
		return models.ExerciseFilter{}, err
	}

	filter := models.ExerciseFilter{UserID: userID}

	if query.From != "" {
		from, err := ParseDate(query.From)
		if err != nil {
			return models.ExerciseFilter{}, invalid("from must be a date such as 2024-01-31")
		}
		filter.From = &from
	}

	if query.To != "" {
		to, err := ParseDate(query.To)
		if err != nil {
			return models.ExerciseFilter{}, invalid("to must be a date such as 2024-01-31")
		}
		filter.To = &to
	}

	if query.Limit != "" {
		limit, err := strconv.Atoi(query.Limit)
		if err != nil || limit < 0 {
			return models.ExerciseFilter{}, invalid("limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	return filter, nil
}
