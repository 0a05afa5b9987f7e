// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/exercise-tracker/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrInvalidID = errors.New("invalid id")
)

// Store persists users and exercises.
// Implementations must be safe for concurrent use.
type Store interface {
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// CreateUser returns ErrDuplicate when the username is already taken.
	CreateUser(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	CreateExercise(ctx context.Context, e models.Exercise) (models.Exercise, error)
	FindExerciseByID(ctx context.Context, id string) (models.Exercise, error)
	// FindExercises returns matches in the store's natural (insertion) order.
	FindExercises(ctx context.Context, f models.ExerciseFilter) ([]models.Exercise, error)

	Ping(ctx context.Context) error
	Close() error
}
