// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
	"github.com/danielhkuo/exercise-tracker/testutil"
)

// brokenStore fails every call, for exercising the 500 path.
type brokenStore struct {
	store.Store
}

var errBroken = errors.New("connection reset")

func (brokenStore) FindUserByID(context.Context, string) (models.User, error) {
	return models.User{}, errBroken
}

func (brokenStore) FindUserByUsername(context.Context, string) (models.User, error) {
	return models.User{}, errBroken
}

func (brokenStore) ListUsers(context.Context) ([]models.User, error) {
	return nil, errBroken
}

func (brokenStore) Ping(context.Context) error {
	return errBroken
}

func TestCreateUser(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewUserHandler(st)

	req := testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: "fcc_test"})
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "fcc_test", user.Username)

	stored, err := st.FindUserByUsername(context.Background(), "fcc_test")
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

func TestCreateUser_ExistingUsernameReturnsSameUser(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewUserHandler(st)

	first := httptest.NewRecorder()
	handler.CreateUser(first, testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: "repeat"}))
	testutil.AssertStatus(t, first, http.StatusCreated)

	second := httptest.NewRecorder()
	handler.CreateUser(second, testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: "repeat"}))
	testutil.AssertStatus(t, second, http.StatusOK)

	var a, b models.User
	testutil.AssertJSON(t, first, &a)
	testutil.AssertJSON(t, second, &b)
	assert.Equal(t, a, b)

	users, err := st.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUser_FormBody(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewUserHandler(st)

	req := testutil.MakeFormRequest("POST", "/api/users", url.Values{"username": {"from_form"}})
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	assert.Equal(t, "from_form", user.Username)
}

func TestCreateUser_InvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		req     *http.Request
		message string
	}{
		{
			name:    "missing username",
			req:     testutil.MakeRequest("POST", "/api/users", map[string]string{}),
			message: "username is required",
		},
		{
			name:    "empty username",
			req:     testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: ""}),
			message: "username is required",
		},
		{
			name:    "malformed body",
			req:     httptest.NewRequest("POST", "/api/users", nil),
			message: "Invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := testutil.SetupTestStore(t)
			handler := NewUserHandler(st)
			w := httptest.NewRecorder()

			handler.CreateUser(w, tc.req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tc.message, resp.Error)

			users, err := st.ListUsers(context.Background())
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestCreateUser_StoreFailure(t *testing.T) {
	handler := NewUserHandler(brokenStore{})

	w := httptest.NewRecorder()
	handler.CreateUser(w, testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: "x"}))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "Database error", resp.Error)
}

func TestListUsers(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewUserHandler(st)

	t.Run("empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListUsers(w, testutil.MakeRequest("GET", "/api/users", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	alice := testutil.CreateTestUser(t, st, "alice")
	bob := testutil.CreateTestUser(t, st, "bob")

	t.Run("every created user", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListUsers(w, testutil.MakeRequest("GET", "/api/users", nil))

		testutil.AssertStatus(t, w, http.StatusOK)

		var users []models.User
		testutil.AssertJSON(t, w, &users)
		assert.ElementsMatch(t, []models.User{alice, bob}, users)
	})
}

func TestListUsers_StoreFailure(t *testing.T) {
	handler := NewUserHandler(brokenStore{})

	w := httptest.NewRecorder()
	handler.ListUsers(w, testutil.MakeRequest("GET", "/api/users", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
