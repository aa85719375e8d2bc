package components

import (
	"encoding/json"

	"github.com/a-h/templ"
)

// Actions supplies the event wiring for interactive controls. Components
// never reference global handlers directly.
type Actions interface {
	// Reload wires a control that reloads the current page.
	Reload() templ.Attributes
	// Copy wires a control that copies value to the clipboard.
	Copy(value string) templ.Attributes
}

// ScriptActions wires controls to the handlers registered by
// /static/dashboard.js.
type ScriptActions struct{}

// Reload implements Actions.
func (ScriptActions) Reload() templ.Attributes {
	return templ.Attributes{"onclick": "location.reload()"}
}

// Copy implements Actions.
func (ScriptActions) Copy(value string) templ.Attributes {
	return templ.Attributes{
		"onclick": "event.stopPropagation(); copyToClipboard(" + jsString(value) + ", this)",
	}
}

// StaticActions renders controls without any event wiring, for markup that
// is not displayed in a browser.
type StaticActions struct{}

// Reload implements Actions.
func (StaticActions) Reload() templ.Attributes { return nil }

// Copy implements Actions.
func (StaticActions) Copy(string) templ.Attributes { return nil }

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

func actionsOrDefault(a Actions) Actions {
	if a == nil {
		return ScriptActions{}
	}
	return a
}
