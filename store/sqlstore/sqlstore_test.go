// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DialectSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOpen_UnsupportedDialect(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	require.Error(t, err)
}

func TestCreateSchema_Idempotent(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, CreateSchema(context.Background(), s.db, DialectSQLite))
}

func TestCreateUser_AndFind(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)

	byID, err := s.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)

	byName, err := s.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, byName)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "bob")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "bob")
	require.ErrorIs(t, err, store.ErrDuplicate)
}

func TestFindUser_Errors(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.FindUserByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	_, err = s.FindUserByID(ctx, "6f1c1d1e-8a4b-4c3e-9d2f-1a2b3c4d5e6f")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListUsers_InsertionOrder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := s.CreateUser(ctx, name)
		require.NoError(t, err)
	}

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "carol", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
	assert.Equal(t, "bob", users[2].Username)
}

func TestCreateExercise_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "runner")
	require.NoError(t, err)

	date := time.Date(2024, 1, 1, 7, 30, 15, 123456789, time.UTC)
	created, err := s.CreateExercise(ctx, models.Exercise{
		UserID:      u.ID,
		Description: "run",
		Duration:    30,
		Date:        date,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := s.FindExerciseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "run", got.Description)
	assert.Equal(t, 30.0, got.Duration)
	// millisecond precision
	assert.True(t, got.Date.Equal(date.Truncate(time.Millisecond)), "got %v", got.Date)
	assert.Equal(t, created, got)
}

func TestFindExerciseByID_NotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.FindExerciseByID(context.Background(), "6f1c1d1e-8a4b-4c3e-9d2f-1a2b3c4d5e6f")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFindExercises_Filters(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "lifter")
	require.NoError(t, err)
	other, err := s.CreateUser(ctx, "other")
	require.NoError(t, err)

	for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		_, err := s.CreateExercise(ctx, models.Exercise{UserID: u.ID, Description: d, Duration: 10, Date: day(d)})
		require.NoError(t, err)
	}
	_, err = s.CreateExercise(ctx, models.Exercise{UserID: other.ID, Description: "x", Duration: 5, Date: day("2024-02-01")})
	require.NoError(t, err)

	from, to := day("2024-01-15"), day("2024-02-15")
	jan, mar := day("2024-01-01"), day("2024-03-01")

	tests := []struct {
		name   string
		filter models.ExerciseFilter
		want   []string
	}{
		{"no filter", models.ExerciseFilter{UserID: u.ID}, []string{"2024-01-01", "2024-02-01", "2024-03-01"}},
		{"window", models.ExerciseFilter{UserID: u.ID, From: &from, To: &to}, []string{"2024-02-01"}},
		{"from only", models.ExerciseFilter{UserID: u.ID, From: &from}, []string{"2024-02-01", "2024-03-01"}},
		{"to only", models.ExerciseFilter{UserID: u.ID, To: &to}, []string{"2024-01-01", "2024-02-01"}},
		{"inclusive bounds", models.ExerciseFilter{UserID: u.ID, From: &jan, To: &mar}, []string{"2024-01-01", "2024-02-01", "2024-03-01"}},
		{"limit", models.ExerciseFilter{UserID: u.ID, Limit: 1}, []string{"2024-01-01"}},
		{"limit with window", models.ExerciseFilter{UserID: u.ID, From: &jan, Limit: 2}, []string{"2024-01-01", "2024-02-01"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.FindExercises(ctx, tc.filter)
			require.NoError(t, err)

			descs := make([]string, 0, len(got))
			for _, e := range got {
				descs = append(descs, e.Description)
			}
			assert.Equal(t, tc.want, descs)
		})
	}
}

func TestFindExercises_EmptyIsNotNil(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "idle")
	require.NoError(t, err)

	got, err := s.FindExercises(ctx, models.ExerciseFilter{UserID: u.ID})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildExerciseQuery_DateClauseOnlyWhenBounded(t *testing.T) {
	q, args := buildExerciseQuery(models.ExerciseFilter{UserID: "u"})
	assert.NotContains(t, q, "date_ms >=")
	assert.NotContains(t, q, "date_ms <=")
	assert.NotContains(t, q, "LIMIT")
	assert.Len(t, args, 1)

	to := day("2024-02-15")
	q, args = buildExerciseQuery(models.ExerciseFilter{UserID: "u", To: &to, Limit: 3})
	assert.Contains(t, q, "date_ms <= $2")
	assert.Contains(t, q, "LIMIT $3")
	assert.NotContains(t, q, ">=")
	assert.Equal(t, []any{"u", to.UnixMilli(), 3}, args)
}
