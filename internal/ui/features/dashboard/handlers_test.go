package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanlake-autopro/autopro/internal/testutil"
	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features"
	"github.com/sylvanlake-autopro/autopro/pkg/display"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

var invoiceView = View{
	Resource: "invoices?select=*&order=created_at.desc",
	Title:    "Recent invoices",
	Columns: []components.Column{
		{Key: "number", Label: "Invoice", Copy: true},
		{Key: "total", Label: "Total", Format: display.KindCurrency},
	},
}

func setupTestHandlers(t *testing.T, resources map[string]features.TestResource) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t, resources)
	handlers := NewHandlers(Config{
		Tabs:   tabs.Default(),
		Views:  map[string]View{"invoices": invoiceView, "statements": {Resource: "statements"}},
		Brand:  components.DefaultBrand,
		API:    fixture.API,
		Logger: testutil.NewTestLogger(t),
	}, fixture.SessionStore, false)

	return handlers, fixture
}

func getPage(h *Handlers, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/"+target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	req = features.RequestWithPathParam(req, "page", target)
	rec := httptest.NewRecorder()
	h.TabPage(rec, req)
	return rec
}

func getView(h *Handlers, tab string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/views/"+tab, nil)
	req = features.RequestWithPathParam(req, "tab", tab)
	rec := httptest.NewRecorder()
	h.ViewContent(rec, req)
	return rec
}

// =============================================================================
// TabPage Tests
// =============================================================================

func TestTabPage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "labelled tab",
			target:     "invoices.html",
			wantStatus: http.StatusOK,
			wantBody: []string{
				"<!doctype html>",
				"<title>Invoices - Sylvan Lake AutoPro</title>",
				`aria-current="page"`,
				"@get(&#34;/views/invoices&#34;)",
			},
		},
		{
			name:       "settings tab derives a title",
			target:     "settings.html",
			wantStatus: http.StatusOK,
			wantBody: []string{
				"<title>Settings - Sylvan Lake AutoPro</title>",
				"/views/settings",
			},
		},
		{
			name:       "unknown page",
			target:     "missing.html",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t, nil)

			rec := getPage(h, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want, "response should contain %q", want)
			}
		})
	}
}

func TestTabPage_NoReloadWatcherInProduction(t *testing.T) {
	h, _ := setupTestHandlers(t, nil)
	rec := getPage(h, "chat.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/reload")
}

// =============================================================================
// Index Tests
// =============================================================================

func TestIndex_RedirectsToFirstTab(t *testing.T) {
	h, _ := setupTestHandlers(t, nil)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/invoices.html", rec.Header().Get("Location"))
}

func TestIndex_RemembersLastTab(t *testing.T) {
	h, _ := setupTestHandlers(t, nil)

	page := getPage(h, "statements.html")
	require.Equal(t, http.StatusOK, page.Code)
	cookies := page.Result().Cookies()
	require.NotEmpty(t, cookies, "visiting a tab sets the session cookie")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/statements.html", rec.Header().Get("Location"))
}

// =============================================================================
// ViewContent Tests
// =============================================================================

func TestViewContent(t *testing.T) {
	tests := []struct {
		name      string
		tab       string
		resources map[string]features.TestResource
		wantBody  []string
		notBody   []string
	}{
		{
			name: "renders rows",
			tab:  "invoices",
			resources: map[string]features.TestResource{
				"invoices": {Body: `[{"number":"INV-1001","total":1234.5},{"number":"INV-1002","total":null}]`},
			},
			wantBody: []string{
				"datastar-patch-elements",
				`id="view-content"`,
				"Recent invoices",
				"INV-1001",
				"$1,234.50",
				"copyToClipboard",
			},
		},
		{
			name: "empty result",
			tab:  "statements",
			resources: map[string]features.TestResource{
				"statements": {Body: `[]`},
			},
			wantBody: []string{"No records found."},
			notBody:  []string{"<table"},
		},
		{
			name: "api failure is shown in place",
			tab:  "invoices",
			resources: map[string]features.TestResource{
				"invoices": {Status: http.StatusInternalServerError, Body: `{"message":"boom"}`},
			},
			wantBody: []string{`role="alert"`, "Could not load Invoices: HTTP 500"},
		},
		{
			name:     "tab without a view uses its label",
			tab:      "chat",
			wantBody: []string{"Nothing to show for Ask Protractor yet."},
		},
		{
			name:     "label-less tab uses its title-cased id",
			tab:      "settings",
			wantBody: []string{"Nothing to show for Settings yet."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t, tt.resources)

			rec := getView(h, tt.tab)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
			for _, not := range tt.notBody {
				assert.NotContains(t, body, not)
			}
		})
	}
}

func TestViewContent_UnknownTab(t *testing.T) {
	h, fixture := setupTestHandlers(t, nil)

	rec := getView(h, "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, fixture.FakeAPI.Hits("nope"))
}

func TestViewContent_NoDataAPI(t *testing.T) {
	h := NewHandlers(Config{
		Tabs:  tabs.Default(),
		Views: map[string]View{"invoices": invoiceView},
	}, features.NewTestSessionStore(), false)

	rec := getView(h, "invoices")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data API is not configured")
}

// =============================================================================
// Routes
// =============================================================================

func TestSetupRoutes(t *testing.T) {
	fixture := features.SetupTestFixture(t, map[string]features.TestResource{
		"invoices": {Body: `[{"number":"INV-7","total":5}]`},
	})
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, Config{
		Tabs:   tabs.Default(),
		Views:  map[string]View{"invoices": invoiceView},
		API:    fixture.API,
		Logger: testutil.NewTestLogger(t),
	}, fixture.SessionStore, false))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/views/invoices")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The event stream starts before the upstream fetch; the fetch is only
	// guaranteed once the stream has ended.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "INV-7")
	assert.Equal(t, 1, fixture.FakeAPI.Hits("invoices"))

	page, err := http.Get(srv.URL + "/cores-warranty.html")
	require.NoError(t, err)
	defer page.Body.Close()
	assert.Equal(t, http.StatusOK, page.StatusCode)
}

func TestSetupRoutes_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no tabs", Config{}},
		{"view without resource", Config{Tabs: tabs.Default(), Views: map[string]View{"invoices": {}}}},
		{"bad column format", Config{Tabs: tabs.Default(), Views: map[string]View{
			"invoices": {Resource: "invoices", Columns: []components.Column{{Key: "a", Format: "weird"}}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = testutil.NewTestLogger(t)
			err := SetupRoutes(chi.NewRouter(), tt.cfg, features.NewTestSessionStore(), false)
			assert.Error(t, err)
		})
	}
}

func TestTabTitle(t *testing.T) {
	assert.Equal(t, "Core & Warranty", TabTitle(tabs.Tab{ID: "cores_warranty", Label: "Core & Warranty"}))
	assert.Equal(t, "Cores Warranty", TabTitle(tabs.Tab{ID: "cores_warranty"}))
}
