// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/sylvanlake-autopro/autopro/internal/dataapi"
	"github.com/sylvanlake-autopro/autopro/internal/testutil"
	"github.com/sylvanlake-autopro/autopro/internal/ui/notifier"
)

// TestResource is a canned data API response.
type TestResource struct {
	Status int
	Body   string
}

// FakeDataAPI serves canned PostgREST responses keyed by table name.
type FakeDataAPI struct {
	mu        sync.Mutex
	resources map[string]TestResource
	hits      map[string]int
}

func (f *FakeDataAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, dataapi.RESTPrefix)
	_, _ = io.Copy(io.Discard, r.Body)

	f.mu.Lock()
	res, ok := f.resources[table]
	f.hits[table]++
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"relation does not exist"}`)
		return
	}
	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, res.Body)
}

// Hits returns how often table was requested.
func (f *FakeDataAPI) Hits(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[table]
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	API          *dataapi.Client
	FakeAPI      *FakeDataAPI
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
}

// SetupTestFixture starts a fake data API serving resources and returns a
// client pointed at it.
func SetupTestFixture(t *testing.T, resources map[string]TestResource) *TestFixture {
	t.Helper()

	fake := &FakeDataAPI{resources: resources, hits: map[string]int{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := dataapi.New(dataapi.Config{
		BaseURL: srv.URL,
		APIKey:  "test-anon-key",
		Logger:  testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	return &TestFixture{
		API:          client,
		FakeAPI:      fake,
		Notifier:     notifier.New(),
		SessionStore: NewTestSessionStore(),
	}
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
