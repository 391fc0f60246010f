package tmdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kan-1337/movie-explorer/internal/common"
	"github.com/kan-1337/movie-explorer/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key", 5*time.Second, discardLogger())
}

func TestDo_SendsAPIKeyAndHeaders(t *testing.T) {
	var gotKey, gotRequestID, gotAccept string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	})

	var out struct{}
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/movie/popular", nil, nil, &out))

	assert.Equal(t, "test-key", gotKey)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotAccept)
}

func TestDo_RemoteRejectionUsesStatusMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	})

	err := c.do(context.Background(), http.MethodGet, "/movie/999", nil, nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Equal(t, 34, apiErr.StatusCode)
	assert.Equal(t, "The resource you requested could not be found.", apiErr.StatusMessage)
}

func TestDo_RemoteRejectionFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	})

	err := c.do(context.Background(), http.MethodGet, "/account", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.StatusMessage)
}

func TestDo_UnauthorizedMatchesSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":3,"status_message":"Authentication failed."}`))
	})

	err := c.do(context.Background(), http.MethodGet, "/account", nil, nil, nil)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestDo_TransportFailureMatchesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore
	c := New(srv.URL, "test-key", time.Second, discardLogger())

	err := c.do(context.Background(), http.MethodGet, "/movie/popular", nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestDo_DecodeFailureOnSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	})

	var out struct{}
	err := c.do(context.Background(), http.MethodGet, "/movie/popular", nil, nil, &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrUnavailable)
}
