package resources

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPath(t *testing.T) {
	assert.Equal(t, "/static/dashboard.js", StaticPath("dashboard.js"))
}

func TestHandler_ServesDashboardScript(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, StaticPath("dashboard.js"), nil)
	rec := httptest.NewRecorder()

	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "function copyToClipboard(text, btn)")
	assert.Contains(t, string(body), "COPY_REVERT_MS = 1000")
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
}

func TestHandler_MissingAsset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, StaticPath("missing.css"), nil)
	rec := httptest.NewRecorder()

	Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
