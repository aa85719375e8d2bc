// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	dashboardFeature "github.com/sylvanlake-autopro/autopro/internal/ui/features/dashboard"
	"github.com/sylvanlake-autopro/autopro/internal/ui/notifier"
	"github.com/sylvanlake-autopro/autopro/internal/ui/resources"
)

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(
	router chi.Router,
	cfg dashboardFeature.Config,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	isDev bool,
) error {
	// Live reload for dev mode
	if isDev {
		setupReload(router, notify)
	}

	router.Handle(resources.URLPrefix+"*", resources.Handler())

	return dashboardFeature.SetupRoutes(router, cfg, sessionStore, isDev)
}

// setupReload registers the live reload stream. The first browser to connect
// after a server start reloads once, picking up a rebuilt binary. After that
// every asset change reloads all connected browsers.
func setupReload(router chi.Router, notify *notifier.Notifier) {
	var restartOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sub := notify.Subscribe()
		defer sub.Close()

		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		restartOnce.Do(reload)

		select {
		case <-sub.C:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Post("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast(notifier.Change{Path: "manual"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
