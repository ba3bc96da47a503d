//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/bissquit/store-rating/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeSummary struct {
	StoreID       int64   `json:"store_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	AverageRating *string `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

type raterEntry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	RatingValue int    `json:"rating_value"`
}

func TestDashboard_StoreSummary(t *testing.T) {
	owner := newTestClient(t)
	ownerID := loginAsOwner(t, owner)
	storeName := testutil.RandomStoreName("Dashboard Store")
	storeID := createStore(t, storeName, &ownerID)

	first := newTestClient(t)
	loginAsUser(t, first)
	resp := submitRating(t, first, storeID, 5)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	second := newTestClient(t)
	loginAsUser(t, second)
	resp = submitRating(t, second, storeID, 4)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp2, err := owner.GET("/api/v1/dashboard/my-store/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var summary storeSummary
	testutil.DecodeJSON(t, resp2, &summary)
	assert.Equal(t, storeID, summary.StoreID)
	assert.Equal(t, storeName, summary.Name)
	assert.NotEmpty(t, summary.Address)
	require.NotNil(t, summary.AverageRating)
	assert.Equal(t, "4.5", *summary.AverageRating)
	assert.Equal(t, int64(2), summary.TotalRatings)
}

func TestDashboard_StoreSummary_Unrated(t *testing.T) {
	owner := newTestClient(t)
	ownerID := loginAsOwner(t, owner)
	storeID := createStore(t, testutil.RandomStoreName("Quiet Store"), &ownerID)

	resp, err := owner.GET("/api/v1/dashboard/my-store/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary storeSummary
	testutil.DecodeJSON(t, resp, &summary)
	assert.Equal(t, storeID, summary.StoreID)
	assert.Nil(t, summary.AverageRating)
	assert.Zero(t, summary.TotalRatings)
}

func TestDashboard_StoreSummary_NoStore(t *testing.T) {
	owner := newTestClient(t)
	loginAsOwner(t, owner)

	resp, err := owner.GET("/api/v1/dashboard/my-store/summary")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := testutil.ReadBody(t, resp)
	assert.Contains(t, body, "No store found for this owner.")
}

func TestDashboard_Raters(t *testing.T) {
	owner := newTestClient(t)
	ownerID := loginAsOwner(t, owner)
	storeID := createStore(t, testutil.RandomStoreName("Rated Store"), &ownerID)

	first := newTestClient(t)
	loginAsUser(t, first)
	resp := submitRating(t, first, storeID, 5)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	second := newTestClient(t)
	loginAsUser(t, second)
	resp = submitRating(t, second, storeID, 4)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp2, err := owner.GET("/api/v1/dashboard/my-store/raters")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var raters []raterEntry
	testutil.DecodeJSON(t, resp2, &raters)
	require.Len(t, raters, 2)

	// Most recently changed rating first
	assert.Equal(t, 4, raters[0].RatingValue)
	assert.Equal(t, 5, raters[1].RatingValue)
	assert.NotEmpty(t, raters[0].Name)
	assert.NotEmpty(t, raters[0].Email)
}

func TestDashboard_Raters_NoStore(t *testing.T) {
	owner := newTestClient(t)
	loginAsOwner(t, owner)

	resp, err := owner.GET("/api/v1/dashboard/my-store/raters")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raters []raterEntry
	testutil.DecodeJSON(t, resp, &raters)
	assert.Empty(t, raters)
}

func TestDashboard_Owner_RequiresOwnerRole(t *testing.T) {
	client := newTestClient(t)
	loginAsUser(t, client)

	for _, path := range []string{
		"/api/v1/dashboard/my-store/summary",
		"/api/v1/dashboard/my-store/raters",
	} {
		resp, err := client.GET(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		body := testutil.ReadBody(t, resp)
		assert.Contains(t, body, "Access denied. You must be an 'OWNER' to perform this action.")
	}
}

func TestDashboard_AdminStats_CountersGrow(t *testing.T) {
	admin := newTestClient(t)
	loginAsAdmin(t, admin)

	var before struct {
		TotalUsers   int64 `json:"total_users"`
		TotalStores  int64 `json:"total_stores"`
		TotalRatings int64 `json:"total_ratings"`
	}
	resp, err := admin.GET("/api/v1/dashboard/admin-stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &before)

	storeID := createStore(t, testutil.RandomStoreName("Counted Store"), nil)
	rater := newTestClient(t)
	loginAsUser(t, rater)
	resp = submitRating(t, rater, storeID, 3)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var after struct {
		TotalUsers   int64 `json:"total_users"`
		TotalStores  int64 `json:"total_stores"`
		TotalRatings int64 `json:"total_ratings"`
	}
	resp, err = admin.GET("/api/v1/dashboard/admin-stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &after)

	assert.Greater(t, after.TotalUsers, before.TotalUsers)
	assert.Equal(t, before.TotalStores+1, after.TotalStores)
	assert.Equal(t, before.TotalRatings+1, after.TotalRatings)
}

func TestDashboard_AdminStats_RequiresAdmin(t *testing.T) {
	client := newTestClient(t)
	loginAsUser(t, client)

	resp, err := client.GET("/api/v1/dashboard/admin-stats")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
