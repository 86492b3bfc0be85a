// Package dock maps the fixed dock catalog to window launches and
// reports which dock entries show the running indicator.
package dock

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// ErrUnknownApp is returned when activating an id not in the catalog
var ErrUnknownApp = errors.New("unknown dock app")

// ActionKind selects what a dock click does
type ActionKind string

const (
	ActionLaunch   ActionKind = "launch"
	ActionNavigate ActionKind = "navigate"
)

// Action describes the launch or navigation bound to an entry
type Action struct {
	Kind    ActionKind    `json:"kind"`
	Title   string        `json:"title,omitempty"`
	Content types.Content `json:"content"`
	Size    *types.Size   `json:"size,omitempty"`
	Route   string        `json:"route,omitempty"`
}

// App is one dock catalog entry
type App struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Action Action `json:"action"`
}

// Entry is an App plus its indicator state
type Entry struct {
	App
	Running bool `json:"running"`
}

// Result reports what an activation did
type Result struct {
	AppID    string `json:"app_id"`
	Launched bool   `json:"launched"`
	Navigate string `json:"navigate,omitempty"`
}

// Launcher is the window side of the bridge
type Launcher interface {
	Launch(id, title, icon string, content types.Content, size *types.Size)
	IsActive(id string) bool
}

// Bridge binds the catalog to a Launcher
type Bridge struct {
	apps     []App
	byID     map[string]int
	launcher Launcher
}

// NewBridge creates a bridge over an ordered catalog
func NewBridge(launcher Launcher, apps ...App) *Bridge {
	b := &Bridge{
		byID:     make(map[string]int, len(apps)),
		launcher: launcher,
	}
	for _, app := range apps {
		if _, dup := b.byID[app.ID]; dup {
			continue
		}
		b.byID[app.ID] = len(b.apps)
		b.apps = append(b.apps, app)
	}
	return b
}

// App looks up a catalog entry
func (b *Bridge) App(id string) (App, bool) {
	i, ok := b.byID[id]
	if !ok {
		return App{}, false
	}
	return b.apps[i], true
}

// IsRunning reports whether the app's window is open and focused.
// An open but unfocused window shows no indicator.
func (b *Bridge) IsRunning(id string) bool {
	if _, ok := b.byID[id]; !ok {
		return false
	}
	return b.launcher.IsActive(id)
}

// Entries returns the catalog in dock order with indicator state
func (b *Bridge) Entries() []Entry {
	out := make([]Entry, len(b.apps))
	for i, app := range b.apps {
		out[i] = Entry{App: app, Running: b.launcher.IsActive(app.ID)}
	}
	return out
}

// Activate performs the entry's action. Launching an app that is
// already open refocuses its window; the registry reuses ids.
func (b *Bridge) Activate(id string) (Result, error) {
	app, ok := b.App(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownApp, id)
	}

	switch app.Action.Kind {
	case ActionNavigate:
		return Result{AppID: id, Navigate: app.Action.Route}, nil
	case ActionLaunch, "":
		title := app.Action.Title
		if title == "" {
			title = app.Name
		}
		b.launcher.Launch(app.ID, title, app.Icon, app.Action.Content, app.Action.Size)
		return Result{AppID: id, Launched: true}, nil
	default:
		return Result{}, fmt.Errorf("dock app %s: unsupported action %q", id, app.Action.Kind)
	}
}
