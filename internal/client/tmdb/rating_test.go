package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{7.3, 7.5},
		{7.8, 8.0},
		{0.1, 0.5},
		{10.4, 10.0},
		{11, 10.0},
		{-3, 0.5},
		{5.25, 5.5},
		{0.5, 0.5},
		{10, 10.0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRating(tt.raw))
		})
	}
}

func TestRateMovie_SendsClampedValue(t *testing.T) {
	var body map[string]float64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/movie/42/rating", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("session_id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"status_code":1,"status_message":"Success."}`))
	})

	ok, err := c.RateMovie(context.Background(), 42, 11, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10.0, body["value"])
}

func TestRateMovie_RemoteFailurePropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":3,"status_message":"Authentication failed."}`))
	})

	ok, err := c.RateMovie(context.Background(), 42, 7.5, "stale")
	assert.False(t, ok)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Authentication failed.", apiErr.StatusMessage)
}

func TestDeleteRating(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/movie/42/rating", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("session_id"))
		w.Write([]byte(`{"success":true,"status_code":13,"status_message":"The item/record was deleted successfully."}`))
	})

	ok, err := c.DeleteRating(context.Background(), 42, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccountState_Rated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550/account_states", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("session_id"))
		w.Write([]byte(`{"id":550,"favorite":false,"rated":{"value":9.0},"watchlist":false}`))
	})

	state, err := c.AccountState(context.Background(), 550, "tok")
	require.NoError(t, err)
	require.NotNil(t, state.Rated)
	assert.Equal(t, 9.0, state.Rated.Value)
}

func TestAccountState_NotRated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":550,"favorite":false,"rated":false,"watchlist":false}`))
	})

	state, err := c.AccountState(context.Background(), 550, "tok")
	require.NoError(t, err)
	assert.Nil(t, state.Rated)
}
