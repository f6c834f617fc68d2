package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", time.Second)
}

func TestHTTPClient_Generate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc123", body["clientId"])
		assert.Equal(t, true, body["isGift"])

		_, _ = w.Write([]byte(`{"uuid":"U1","data":{"id":7,"uuid":"U1","created_at":"2026-10-19T12:00:00Z","client_id":"abc123","is_gift":true}}`))
	})

	res, err := c.Generate(t.Context(), "abc123", true)
	require.NoError(t, err)
	assert.Equal(t, "U1", res.UUID)
	assert.False(t, res.Collision)
	require.NotNil(t, res.Record)
	assert.Equal(t, int64(7), res.Record.ID)
	assert.True(t, res.Record.IsGift)
	assert.Equal(t, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), res.Record.CreatedAt.UTC())
}

func TestHTTPClient_Generate_Collision(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Collision detected","uuid":"DUP"}`))
	})

	res, err := c.Generate(t.Context(), "abc123", false)
	require.NoError(t, err)
	assert.True(t, res.Collision)
	assert.Equal(t, "DUP", res.UUID)
	assert.Nil(t, res.Record)
}

func TestHTTPClient_Generate_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to generate UUID"}`))
	})

	_, err := c.Generate(t.Context(), "abc123", false)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "Failed to generate UUID")
}

func TestHTTPClient_Generate_BadRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Generate(t.Context(), "", false)
	require.ErrorIs(t, err, common.ErrInvalidRequest)
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second).Stats(t.Context())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_BulkGenerate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bulk-generate", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["count"])
		_, _ = w.Write([]byte(`{"uuids":["a","b","c"]}`))
	})

	got, err := c.BulkGenerate(t.Context(), "abc123", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestHTTPClient_BulkGenerate_Collision(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Collision detected during bulk generation"}`))
	})

	_, err := c.BulkGenerate(t.Context(), "abc123", 3)
	require.ErrorIs(t, err, common.ErrCollision)
}

func TestHTTPClient_Stats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_generated":12,"collisions":1}`))
	})

	st, err := c.Stats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(12), st.TotalGenerated)
	assert.Equal(t, int64(1), st.Collisions)
}

func TestHTTPClient_History(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":2,"uuid":"B"},{"id":1,"uuid":"A"}]`))
	})

	items, err := c.History(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].UUID)
	assert.Empty(t, gotQuery)

	_, err = c.History(t.Context(), 5)
	require.NoError(t, err)
	assert.Equal(t, "limit=5", gotQuery)
}

func TestHTTPClient_FeedConfig(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config", r.URL.Path)
		assert.Equal(t, "a b", r.URL.Query().Get("clientId"))
		_, _ = w.Write([]byte(`{"feed_addr":"127.0.0.1:3200","feed_token":"tok","expires_at":"2026-10-19T13:00:00Z"}`))
	})

	fc, err := c.FeedConfig(t.Context(), "a b")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3200", fc.FeedAddr)
	assert.Equal(t, "tok", fc.FeedToken)
	assert.Equal(t, time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC), fc.ExpiresAt.UTC())
}

func TestHTTPClient_BadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	})

	_, err := c.Stats(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding response")
}
