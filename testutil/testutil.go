// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store/sqlstore"
)

// SetupTestStore opens a private in-memory SQLite store with the full schema.
// The store is closed when the test ends.
func SetupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	st, err := sqlstore.Open(context.Background(), sqlstore.DialectSQLite, ":memory:")
	require.NoError(t, err, "failed to open test store")
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// CreateTestUser inserts a user directly through the store
func CreateTestUser(t *testing.T, st *sqlstore.Store, username string) models.User {
	t.Helper()

	user, err := st.CreateUser(context.Background(), username)
	require.NoError(t, err, "failed to create test user")

	return user
}

// CreateTestExercise inserts an exercise dated at the given ISO day
func CreateTestExercise(t *testing.T, st *sqlstore.Store, userID, description string, duration float64, day string) models.Exercise {
	t.Helper()

	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err, "bad test date")

	e, err := st.CreateExercise(context.Background(), models.Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	require.NoError(t, err, "failed to create test exercise")

	return e
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a urlencoded body, the
// way the landing page forms submit
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
