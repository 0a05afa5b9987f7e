// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Store implements store.Store on database/sql.
// Queries use $N placeholders, which both lib/pq and modernc.org/sqlite accept
// as long as each N appears once and in increasing order.
type Store struct {
	db      *sql.DB
	dialect string
}

var _ store.Store = (*Store)(nil)

// New wraps an already open connection. The schema must exist.
func New(db *sql.DB, dialect string) *Store {
	return &Store{db: db, dialect: dialect}
}

// Open connects with the driver registered for dialect, verifies the
// connection and creates the schema.
func Open(ctx context.Context, dialect, dsn string) (*Store, error) {
	if dialect != DialectPostgres && dialect != DialectSQLite {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	// lib/pq registers "postgres", modernc registers "sqlite"
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	if dialect == DialectSQLite {
		// one writer at a time; also keeps ":memory:" databases on a single connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	if err := CreateSchema(ctx, db, dialect); err != nil {
		db.Close()
		return nil, err
	}

	return New(db, dialect), nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}

	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("username %q: %w", username, store.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, username string) (models.User, error) {
	u := models.User{ID: uuid.NewString(), Username: username}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
	`, u.ID, u.Username)
	if isUniqueViolation(err) {
		return models.User{}, fmt.Errorf("username %q: %w", username, store.ErrDuplicate)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) CreateExercise(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	if err := validateID(e.UserID); err != nil {
		return models.Exercise{}, err
	}

	e.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercises (id, user_id, description, duration, date_ms)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.UserID, e.Description, e.Duration, e.Date.UnixMilli())
	if err != nil {
		return models.Exercise{}, fmt.Errorf("failed to insert exercise: %w", err)
	}

	e.Date = time.UnixMilli(e.Date.UnixMilli()).UTC()
	return e, nil
}

func (s *Store) FindExerciseByID(ctx context.Context, id string) (models.Exercise, error) {
	if err := validateID(id); err != nil {
		return models.Exercise{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, description, duration, date_ms
		FROM exercises
		WHERE id = $1
	`, id)

	e, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Exercise{}, fmt.Errorf("exercise %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("failed to query exercise: %w", err)
	}

	return e, nil
}

func (s *Store) FindExercises(ctx context.Context, f models.ExerciseFilter) ([]models.Exercise, error) {
	if err := validateID(f.UserID); err != nil {
		return nil, err
	}

	query, args := buildExerciseQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// buildExerciseQuery attaches a date clause only for the bounds that are set.
func buildExerciseQuery(f models.ExerciseFilter) (string, []any) {
	query := `SELECT id, user_id, description, duration, date_ms FROM exercises WHERE user_id = $1`
	args := []any{f.UserID}

	if f.From != nil {
		args = append(args, f.From.UnixMilli())
		query += fmt.Sprintf(" AND date_ms >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, f.To.UnixMilli())
		query += fmt.Sprintf(" AND date_ms <= $%d", len(args))
	}

	query += " ORDER BY seq"

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return query, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (models.Exercise, error) {
	var e models.Exercise
	var dateMs int64
	if err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &dateMs); err != nil {
		return models.Exercise{}, err
	}
	e.Date = time.UnixMilli(dateMs).UTC()
	return e, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%q: %w", id, store.ErrInvalidID)
	}
	return nil
}
