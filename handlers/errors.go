// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

// userNotFoundMessage is the body text for ErrUserNotFound.
const userNotFoundMessage = "User does not exist."

var ErrUserNotFound = errors.New("user does not exist")

// ValidationError marks input rejected before it reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// writeError maps a handler error onto a status code and an {error} body.
func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, userNotFoundMessage)
	case errors.Is(err, store.ErrInvalidID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid user id")
	case errors.Is(err, store.ErrDuplicate):
		middleware.ErrorResponse(w, http.StatusConflict, "username already taken")
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// findUser resolves a user id, turning a missing record into ErrUserNotFound.
func findUser(ctx context.Context, st store.Store, id string) (models.User, error) {
	user, err := st.FindUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
