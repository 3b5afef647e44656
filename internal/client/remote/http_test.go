package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jotsync/internal/client/models"
)

func testNote() *models.Note {
	return &models.Note{
		Id:        "id-1",
		UserId:    "u1",
		Content:   "hello",
		UpdatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
	}
}

func TestFetchLatest_RecordExists(t *testing.T) {
	note := testNote()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/notes", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "updated_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		assert.Equal(t, "key-123", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		assert.Equal(t, "u1", r.Header.Get("x-user-id"))

		require.NoError(t, json.NewEncoder(w).Encode([]*models.Note{note}))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "key-123", 0)
	got, err := c.FetchLatest(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *note, *got)
}

func TestFetchLatest_NoRecord_ReturnsNilNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "k", 0)
	got, err := c.FetchLatest(context.Background(), "u1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFetchLatest_Non2xx_IsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "k", 0)
	_, err := c.FetchLatest(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

func TestFetchLatest_MalformedPayload_IsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "k", 0)
	_, err := c.FetchLatest(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFetchLatest_TransportFailure_IsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, "k", 0)
	_, err := c.FetchLatest(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestInsert_PostsFullRecord(t *testing.T) {
	note := testNote()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/notes", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("on_conflict"))
		assert.Equal(t, "u1", r.Header.Get("x-user-id"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var got models.Note
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, *note, got)

		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "k", 0)
	require.NoError(t, c.Insert(context.Background(), note))
}

func TestUpsert_ConflictTargetAndMergeHeader(t *testing.T) {
	note := testNote()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, "resolution=merge-duplicates", r.Header.Get("Prefer"))
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "k", 0)
	require.NoError(t, c.Upsert(context.Background(), note))
}

func TestUpsert_Non2xx_IsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "k", 0)
	err := c.Upsert(context.Background(), testNote())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

func TestUpsert_ContextCancelled_IsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	c := NewHTTPClient(srv.URL, "k", 0)
	err := c.Upsert(ctx, testNote())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}
