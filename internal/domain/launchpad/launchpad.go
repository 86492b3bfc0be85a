// Package launchpad is the full-screen application launcher: a searchable
// grid of apps that open windows on the desktop.
package launchpad

import (
	"strings"
	"unicode"
)

// App is one launcher tile
type App struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Keywords []string `json:"keywords,omitempty"`
	AppID    string   `json:"app_id,omitempty"` // dock app to launch instead of a generic window
}

// WindowID returns the window id opened for this tile
func (a App) WindowID() string {
	if a.AppID != "" {
		return a.AppID
	}
	return "app-" + Slug(a.Name)
}

// Launchpad holds the launcher catalog
type Launchpad struct {
	apps []App
}

// New creates a launcher with apps in display order
func New(apps ...App) *Launchpad {
	return &Launchpad{apps: apps}
}

// Apps returns the whole catalog
func (l *Launchpad) Apps() []App {
	out := make([]App, len(l.apps))
	copy(out, l.apps)
	return out
}

// Search matches term against names and keywords, case-insensitively.
// An empty term returns everything.
func (l *Launchpad) Search(term string) []App {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return l.Apps()
	}

	out := []App{}
	for _, app := range l.apps {
		if matches(app, term) {
			out = append(out, app)
		}
	}
	return out
}

func matches(app App, term string) bool {
	if strings.Contains(strings.ToLower(app.Name), term) {
		return true
	}
	for _, kw := range app.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

// Resolve finds a tile by name (case-insensitive)
func (l *Launchpad) Resolve(name string) (App, bool) {
	for _, app := range l.apps {
		if strings.EqualFold(app.Name, name) {
			return app, true
		}
	}
	return App{}, false
}

// Slug lowercases a name and joins its words with hyphens
func Slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return sb.String()
}
