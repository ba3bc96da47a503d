//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/bissquit/store-rating/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testPassword = "Passw0rd!"

// signupUser registers a NORMAL user through the API and returns its
// credentials and id.
func signupUser(t *testing.T, client *testutil.Client) (id int64, email string) {
	t.Helper()

	email = testutil.RandomEmail()
	resp, err := client.POST("/api/v1/auth/signup", map[string]string{
		"name":     testutil.RandomName("Integration Test User"),
		"email":    email,
		"address":  "1 Test Street",
		"password": testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotZero(t, result.User.ID)
	return result.User.ID, email
}

// promote rewrites a user's role directly in the database. Role changes have
// no API surface, so tests stage ADMIN and OWNER accounts this way.
func promote(t *testing.T, userID int64, role string) {
	t.Helper()

	tag, err := testDB.Exec(context.Background(), "UPDATE users SET role = $1 WHERE id = $2", role, userID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// loginAsAdmin creates a fresh ADMIN account and logs the client in as it.
func loginAsAdmin(t *testing.T, client *testutil.Client) {
	t.Helper()

	id, email := signupUser(t, client)
	promote(t, id, "ADMIN")
	client.LoginAs(t, email, testPassword)
}

// loginAsOwner creates a fresh OWNER account and logs the client in,
// returning the owner's user id for store assignment.
func loginAsOwner(t *testing.T, client *testutil.Client) int64 {
	t.Helper()

	id, email := signupUser(t, client)
	promote(t, id, "OWNER")
	client.LoginAs(t, email, testPassword)
	return id
}

// loginAsUser creates a fresh NORMAL account and logs the client in.
func loginAsUser(t *testing.T, client *testutil.Client) {
	t.Helper()

	_, email := signupUser(t, client)
	client.LoginAs(t, email, testPassword)
}

// createStore creates a store as a fresh admin using a separate client, so
// the caller's login state is untouched. Returns the store id.
func createStore(t *testing.T, name string, ownerID *int64) int64 {
	t.Helper()

	admin := newTestClient(t)
	loginAsAdmin(t, admin)

	payload := map[string]interface{}{
		"name":    name,
		"email":   testutil.RandomEmail(),
		"address": "2 Market Square",
	}
	if ownerID != nil {
		payload["owner_id"] = *ownerID
	}

	resp, err := admin.POST("/api/v1/stores", payload)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Store struct {
			ID int64 `json:"id"`
		} `json:"store"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotZero(t, result.Store.ID)
	return result.Store.ID
}

// submitRating rates a store as the logged-in client.
func submitRating(t *testing.T, client *testutil.Client, storeID int64, value int) *http.Response {
	t.Helper()

	resp, err := client.POST("/api/v1/ratings", map[string]interface{}{
		"store_id":     storeID,
		"rating_value": value,
	})
	require.NoError(t, err)
	return resp
}
