package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/common"
)

type fakeSession struct {
	token   string
	cleared bool
}

func (f *fakeSession) Token(ctx context.Context) (string, error) { return f.token, nil }
func (f *fakeSession) Clear(ctx context.Context) error {
	f.cleared = true
	f.token = ""
	return nil
}

func respond(t *testing.T, w http.ResponseWriter, status int, env any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func okEnvelope(data any) map[string]any {
	return map[string]any{"success": true, "data": data, "message": ""}
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		respond(t, w, http.StatusOK, okEnvelope(nil))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: &fakeSession{token: "tok-123"}})
	require.NoError(t, c.Get(context.Background(), "/locations", nil, nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		respond(t, w, http.StatusOK, okEnvelope(nil))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: &fakeSession{}})
	require.NoError(t, c.Get(context.Background(), "/locations", nil, nil))

	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := &fakeSession{token: "stale"}
	hookFired := false
	c := New(Options{
		BaseURL:        srv.URL,
		Session:        session,
		OnUnauthorized: func() { hookFired = true },
	})

	err := c.Get(context.Background(), "/posts", nil, nil)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.True(t, session.cleared, "401 must wipe the persisted session")
	assert.True(t, hookFired, "401 must fire the OnUnauthorized hook")
}

func TestClient_NetworkFailureNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := New(Options{BaseURL: srv.URL})
	err := c.Get(context.Background(), "/locations", nil, nil)
	assert.ErrorIs(t, err, common.ErrConnection)
}

func TestClient_BackendMessagePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusNotFound, map[string]any{
			"success": false, "message": "location not found", "code": "NOT_FOUND",
		})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	err := c.Get(context.Background(), "/locations/x", nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "location not found", apiErr.Message)
}

func TestClient_FailureEnvelopeOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, map[string]any{"success": false, "message": "quota exceeded"})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	err := c.Post(context.Background(), "/posts", models.Post{Title: "t"}, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

func TestClient_ErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	err := c.Get(context.Background(), "/locations", nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, okEnvelope(models.Location{ID: "loc1", Name: "Cangshan"}))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	loc, err := c.Locations.Get(context.Background(), "loc1")
	require.NoError(t, err)
	assert.Equal(t, "Cangshan", loc.Name)
}

func TestClient_DecodesPaginatedData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "12", r.URL.Query().Get("limit"))
		respond(t, w, http.StatusOK, okEnvelope(models.Page[models.Location]{
			Items:      []models.Location{{ID: "loc1"}, {ID: "loc2"}},
			Total:      2,
			Page:       1,
			Limit:      12,
			TotalPages: 1,
		}))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	page, err := c.Locations.List(context.Background(), ListParams{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.TotalPages)
}

func TestClient_MetricsObserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, okEnvelope(nil))
	}))
	defer srv.Close()

	m := NewMetrics(nil)
	c := New(Options{BaseURL: srv.URL, Metrics: m})
	require.NoError(t, c.Get(context.Background(), "/locations", nil, nil))

	counter, err := m.requests.GetMetricWithLabelValues("GET", "200")
	require.NoError(t, err)
	assert.NotNil(t, counter)
}

func TestListParams_Values(t *testing.T) {
	p := ListParams{
		Page:    2,
		Limit:   20,
		Query:   "granite",
		Sort:    "difficulty",
		Filters: map[string]string{"type": "sport", "empty": ""},
	}
	v := p.Values()

	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "20", v.Get("limit"))
	assert.Equal(t, "granite", v.Get("q"))
	assert.Equal(t, "difficulty", v.Get("sort"))
	assert.Equal(t, "sport", v.Get("type"))
	assert.False(t, v.Has("empty"), "empty filter values are omitted")
}

func TestListParams_ZeroIsEmpty(t *testing.T) {
	assert.Empty(t, ListParams{}.Values())
}
