package router

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanlake-autopro/autopro/internal/testutil"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features"
	"github.com/sylvanlake-autopro/autopro/internal/ui/features/dashboard"
	"github.com/sylvanlake-autopro/autopro/internal/ui/notifier"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

func setupRouter(t *testing.T, isDev bool) (*httptest.Server, *notifier.Notifier) {
	t.Helper()
	notify := notifier.New()
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, dashboard.Config{
		Tabs:   tabs.Default(),
		Logger: testutil.NewTestLogger(t),
	}, features.NewTestSessionStore(), notify, isDev))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, notify
}

// readScripts reads SSE data lines until n reload scripts were seen.
func readScripts(t *testing.T, resp *http.Response, n int) {
	t.Helper()
	done := make(chan int, 1)
	go func() {
		seen := 0
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() && seen < n {
			if strings.Contains(sc.Text(), "window.location.reload()") {
				seen++
			}
		}
		done <- seen
	}()
	select {
	case seen := <-done:
		require.Equal(t, n, seen)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d reload scripts", n)
	}
}

func TestReload_OnChange(t *testing.T) {
	srv, notify := setupRouter(t, true)

	resp, err := http.Get(srv.URL + "/reload")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// First connection after start reloads once.
	readScripts(t, resp, 1)

	second, err := http.Get(srv.URL + "/reload")
	require.NoError(t, err)
	defer second.Body.Close()

	require.Eventually(t, func() bool { return notify.Len() == 2 }, time.Second, 10*time.Millisecond)
	notify.Broadcast(notifier.Change{Path: "static/dashboard.js"})
	readScripts(t, second, 1)
}

func TestHotReload_Broadcasts(t *testing.T) {
	srv, notify := setupRouter(t, true)

	sub := notify.Subscribe()
	defer sub.Close()

	resp, err := http.Post(srv.URL+"/hotreload", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case c := <-sub.C:
		assert.Equal(t, "manual", c.Path)
	case <-time.After(time.Second):
		t.Fatal("no change broadcast")
	}
}

func TestReload_DisabledOutsideDev(t *testing.T) {
	srv, _ := setupRouter(t, false)

	resp, err := http.Get(srv.URL + "/reload")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
