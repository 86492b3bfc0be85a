package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/window"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// registryLauncher drives a real registry
type registryLauncher struct {
	reg *window.Registry[types.Content]
}

func (l registryLauncher) Launch(id, title, icon string, content types.Content, size *types.Size) {
	l.reg.Launch(window.LaunchRequest[types.Content]{ID: id, Title: title, Icon: icon, Content: content, Size: size})
}

func (l registryLauncher) IsActive(id string) bool {
	return l.reg.IsActive(id)
}

func testApps() []App {
	return []App{
		{ID: "finder", Name: "Finder", Icon: "folder-kanban", Action: Action{
			Kind: ActionLaunch, Content: types.Content{Kind: types.ContentFinder}, Size: &types.Size{Width: 800, Height: 600},
		}},
		{ID: "launchpad", Name: "Launchpad", Icon: "layout-grid", Action: Action{Kind: ActionNavigate, Route: "/launchpad"}},
		{ID: "notes", Name: "Notes", Icon: "sticky-note", Action: Action{Kind: ActionLaunch, Content: types.Content{Kind: types.ContentNotes}}},
		{ID: "system-preferences", Name: "System Settings", Icon: "settings", Action: Action{
			Kind: ActionLaunch, Content: types.Content{Kind: types.ContentSettings}, Size: &types.Size{Width: 860, Height: 580},
		}},
	}
}

func newTestBridge() (*Bridge, *window.Registry[types.Content]) {
	reg := window.NewRegistry[types.Content](window.DefaultOptions())
	return NewBridge(registryLauncher{reg: reg}, testApps()...), reg
}

func TestActivateLaunches(t *testing.T) {
	b, reg := newTestBridge()

	res, err := b.Activate("finder")
	require.NoError(t, err)
	assert.True(t, res.Launched)

	s, ok := reg.Get("finder")
	require.True(t, ok)
	assert.Equal(t, "Finder", s.Title)
	assert.Equal(t, types.Size{Width: 800, Height: 600}, s.Size)
	assert.Equal(t, types.ContentFinder, s.Content.Kind)
}

func TestActivateNavigate(t *testing.T) {
	b, reg := newTestBridge()

	res, err := b.Activate("launchpad")
	require.NoError(t, err)
	assert.False(t, res.Launched)
	assert.Equal(t, "/launchpad", res.Navigate)
	assert.Equal(t, 0, reg.Len())
}

func TestActivateUnknown(t *testing.T) {
	b, _ := newTestBridge()

	_, err := b.Activate("ghost")
	assert.ErrorIs(t, err, ErrUnknownApp)
}

func TestRunningIndicatorOnlyForFocused(t *testing.T) {
	b, reg := newTestBridge()

	b.Activate("finder")
	b.Activate("notes")

	assert.False(t, b.IsRunning("finder"), "open but unfocused shows no dot")
	assert.True(t, b.IsRunning("notes"))

	reg.ClearFocus()
	assert.False(t, b.IsRunning("notes"))
	assert.False(t, b.IsRunning("ghost"))
}

func TestRefocusFromDock(t *testing.T) {
	b, reg := newTestBridge()

	b.Activate("finder")
	b.Activate("system-preferences")
	b.Activate("finder")

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "finder", reg.FocusedID())

	finder, _ := reg.Get("finder")
	settings, _ := reg.Get("system-preferences")
	assert.Greater(t, finder.ZIndex, settings.ZIndex)

	var running []string
	for _, e := range b.Entries() {
		if e.Running {
			running = append(running, e.ID)
		}
	}
	assert.Equal(t, []string{"finder"}, running)
}

func TestEntriesKeepOrder(t *testing.T) {
	b, _ := newTestBridge()

	var ids []string
	for _, e := range b.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"finder", "launchpad", "notes", "system-preferences"}, ids)
}
