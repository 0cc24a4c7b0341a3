package peopleapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitu/backend/internal/core/domain/search"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(&Config{BaseURL: srv.URL + "/", Timeout: time.Second}, nil)
}

func TestSearchFormatted_Success(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"document": map[string]any{"id": "u1", "full_name": "Jamie Poole", "company_name": "Bain"}},
				{"document": map[string]any{}},
			},
			"total": 42,
			"page":  2,
			"count": 20,
		})
	}))
	defer srv.Close()

	filters := search.Default()
	filters.Sector = "CONSULTING"
	filters.CurrentCompany = "Bain"
	filters.Page = 2

	envelope := newTestClient(srv).SearchFormatted(context.Background(), filters)

	require.True(t, envelope.Success)
	require.Len(t, envelope.Results, 1)
	assert.Equal(t, "Jamie Poole", envelope.Results[0].FullName)
	assert.Equal(t, 42, envelope.Total)
	assert.Equal(t, 2, envelope.Page)

	assert.Equal(t, []string{"CONSULTING"}, gotQuery["sector"])
	assert.Equal(t, []string{"Bain"}, gotQuery["current_company"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"20"}, gotQuery["count"])
	assert.NotContains(t, gotQuery, "name")
	assert.NotContains(t, gotQuery, "undergraduate_year")
}

func TestSearchFormatted_FillsMissingTotals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"document": map[string]any{"id": "u1", "full_name": "A"}},
				{"document": map[string]any{"id": "u2", "full_name": "B"}},
			},
		})
	}))
	defer srv.Close()

	envelope := newTestClient(srv).SearchFormatted(context.Background(), search.Default())

	require.True(t, envelope.Success)
	assert.Equal(t, 2, envelope.Total)
	assert.Equal(t, 1, envelope.Page)
	assert.Equal(t, 2, envelope.Count)
}

func TestSearchFormatted_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	filters := search.Default()
	filters.Page = 3
	envelope := newTestClient(srv).SearchFormatted(context.Background(), filters)

	require.False(t, envelope.Success)
	assert.Empty(t, envelope.Results)
	assert.Equal(t, 3, envelope.Page)
	assert.Contains(t, envelope.Error, "502")
	assert.Equal(t, filters, envelope.Filters)
}

func TestGetUser_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/people", r.URL.Path)
		require.Equal(t, "u1", r.URL.Query().Get("ids"))
		json.NewEncoder(w).Encode(map[string]any{
			"results": map[string]any{
				"u1": map[string]any{
					"linkedin": map[string]any{"full_name": "Jamie Poole", "occupation": "Consultant"},
				},
			},
		})
	}))
	defer srv.Close()

	user, err := newTestClient(srv).GetUser(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jamie Poole", user.FullName)
	// ID backfilled from the lookup key when the payload omits it
	assert.Equal(t, "u1", user.ID)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": map[string]any{}})
	}))
	defer srv.Close()

	user, err := newTestClient(srv).GetUser(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUser_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	user, err := newTestClient(srv).GetUser(context.Background(), "u1")
	require.Error(t, err)
	assert.Nil(t, user)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	require.NoError(t, newTestClient(srv).Ping(context.Background()))

	srv.Close()
	assert.Error(t, newTestClient(srv).Ping(context.Background()))
}
