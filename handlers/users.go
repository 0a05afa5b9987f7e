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

type UserHandler struct {
	store store.Store
}

func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// CreateUser handles POST /api/users
// Returns the existing user for a known username, otherwise creates one
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, created, err := h.createOrGetUser(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if !created {
		slog.Info("user found (existing)", "user_id", user.ID)
		middleware.JSONResponse(w, http.StatusOK, user)
		return
	}

	middleware.UsersCreated.Inc()
	slog.Info("user created", "user_id", user.ID, "username", user.Username)
	middleware.JSONResponse(w, http.StatusCreated, user)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// createOrGetUser does not serialize creation. Two concurrent requests for the
// same new username both miss the lookup, and the store's unique constraint
// rejects the second insert with store.ErrDuplicate.
func (h *UserHandler) createOrGetUser(ctx context.Context, req models.CreateUserRequest) (models.User, bool, error) {
	if err := validateRequest(req); err != nil {
		return models.User{}, false, err
	}

	existing, err := h.store.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, false, err
	}

	user, err := h.store.CreateUser(ctx, req.Username)
	if err != nil {
		return models.User{}, false, err
	}

	return user, true, nil
}
