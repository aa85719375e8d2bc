package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/sylvanlake-autopro/autopro/internal/ui/components"
	"github.com/sylvanlake-autopro/autopro/pkg/tabs"
)

// ErrNoDataAPI is shown when a view is requested without a data API.
var ErrNoDataAPI = errors.New("data API is not configured")

// Handlers provides HTTP handlers for the dashboard feature.
type Handlers struct {
	cfg          Config
	sessionStore sessions.Store
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg Config, sessionStore sessions.Store, isDev bool) *Handlers {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Actions == nil {
		cfg.Actions = components.ScriptActions{}
	}
	return &Handlers{
		cfg:          cfg,
		sessionStore: sessionStore,
		isDev:        isDev,
	}
}

// Index redirects to the last visited tab, or to the first tab.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if len(h.cfg.Tabs) == 0 {
		http.NotFound(w, r)
		return
	}

	target := h.cfg.Tabs[0].Target
	if session, err := h.sessionStore.Get(r, SessionName); err == nil {
		if id, ok := session.Values[sessionTabKey].(string); ok {
			if tab, found := h.cfg.Tabs.Find(id); found {
				target = tab.Target
			}
		}
	}

	http.Redirect(w, r, "/"+target, http.StatusFound)
}

// TabPage renders the full page of the tab addressed by its target.
func (h *Handlers) TabPage(w http.ResponseWriter, r *http.Request) {
	tab, ok := h.cfg.Tabs.ByTarget(chi.URLParam(r, "page"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.rememberTab(w, r, tab)

	page := components.Page(components.PageProps{
		Title: TabTitle(tab),
		Header: components.HeaderProps{
			Brand:   h.cfg.Brand,
			Tabs:    h.cfg.Tabs,
			Active:  tab.ID,
			Actions: h.cfg.Actions,
		},
		Body: components.ViewPlaceholder("/views/" + tab.ID),
		Dev:  h.isDev,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ViewContent streams the tab's data view as a datastar element patch.
func (h *Handlers) ViewContent(w http.ResponseWriter, r *http.Request) {
	tab, ok := h.cfg.Tabs.Find(chi.URLParam(r, "tab"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(h.buildView(r, tab)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// buildView loads the rows for tab. Failures are rendered, not returned.
func (h *Handlers) buildView(r *http.Request, tab tabs.Tab) templ.Component {
	title := TabTitle(tab)

	view, ok := h.cfg.Views[tab.ID]
	if !ok {
		return components.ViewMessage(components.Empty("Nothing to show for " + title + " yet."))
	}
	if h.cfg.API == nil {
		return components.ViewMessage(components.ErrorBox(ErrNoDataAPI.Error()))
	}

	var rows []map[string]any
	if err := h.cfg.API.GetJSON(r.Context(), view.Resource, &rows); err != nil {
		h.cfg.Logger.Error("failed to load view", "tab", tab.ID, "resource", view.Resource, "error", err)
		return components.ViewMessage(components.ErrorBox("Could not load " + title + ": " + err.Error()))
	}

	if view.Title != "" {
		title = view.Title
	}
	return components.DataView(components.ViewData{
		Title:        title,
		Columns:      view.Columns,
		Rows:         rows,
		EmptyMessage: view.Empty,
		Formatter:    h.cfg.Formatter,
		Actions:      h.cfg.Actions,
	})
}

// rememberTab stores the visited tab in the session. Session failures only
// lose the preference and are logged.
func (h *Handlers) rememberTab(w http.ResponseWriter, r *http.Request, tab tabs.Tab) {
	session, err := h.sessionStore.Get(r, SessionName)
	if err != nil {
		h.cfg.Logger.Debug("discarding unreadable session", "error", err)
	}
	if session == nil {
		return
	}
	session.Values[sessionTabKey] = tab.ID
	if err := session.Save(r, w); err != nil {
		h.cfg.Logger.Warn("failed to save session", "error", err)
	}
}
