package dashboard

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// SetupRoutes configures routes for the dashboard feature.
func SetupRoutes(router chi.Router, cfg Config, sessionStore sessions.Store, isDev bool) error {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Tabs.Validate(); err != nil {
		return err
	}
	for id, v := range cfg.Views {
		if _, ok := cfg.Tabs.Find(id); !ok {
			cfg.Logger.Warn("view configured for unknown tab", "tab", id)
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("view %q: %w", id, err)
		}
	}

	handlers := NewHandlers(cfg, sessionStore, isDev)

	router.Get("/", handlers.Index)
	router.Get("/views/{tab}", handlers.ViewContent)
	router.Get("/{page}", handlers.TabPage)

	return nil
}
