package launchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLaunchpad() *Launchpad {
	return New(
		App{Name: "Mail", Icon: "mail", Keywords: []string{"email", "messages", "outlook"}},
		App{Name: "Notes", Icon: "sticky-note", Keywords: []string{"text", "memos", "editor"}, AppID: "notes"},
		App{Name: "System Settings", Icon: "settings", Keywords: []string{"preferences", "control panel"}, AppID: "system-preferences"},
		App{Name: "Terminal", Icon: "terminal-square", Keywords: []string{"command line", "shell", "bash", "code"}},
		App{Name: "QuickTime Player", Icon: "play-circle", Keywords: []string{"video", "player", "media"}},
	)
}

func names(apps []App) []string {
	out := []string{}
	for _, a := range apps {
		out = append(out, a.Name)
	}
	return out
}

func TestSearch(t *testing.T) {
	lp := testLaunchpad()

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"Mail", "Notes", "System Settings", "Terminal", "QuickTime Player"}},
		{"  ", []string{"Mail", "Notes", "System Settings", "Terminal", "QuickTime Player"}},
		{"no", []string{"Notes"}},
		{"MESS", []string{"Mail"}},
		{"pl", []string{"QuickTime Player"}},
		{"e", []string{"Mail", "Notes", "System Settings", "Terminal", "QuickTime Player"}},
		{"shell", []string{"Terminal"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, names(lp.Search(tt.term)))
		})
	}
}

func TestResolve(t *testing.T) {
	lp := testLaunchpad()

	app, ok := lp.Resolve("system settings")
	require.True(t, ok)
	assert.Equal(t, "system-preferences", app.WindowID())

	app, ok = lp.Resolve("QuickTime Player")
	require.True(t, ok)
	assert.Equal(t, "app-quicktime-player", app.WindowID())

	_, ok = lp.Resolve("Safari")
	assert.False(t, ok)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "voice-memos", Slug("Voice Memos"))
	assert.Equal(t, "facetime", Slug("FaceTime"))
	assert.Equal(t, "app-store", Slug("  App  Store!"))
}

func TestAppsReturnsCopy(t *testing.T) {
	lp := testLaunchpad()
	apps := lp.Apps()
	apps[0].Name = "changed"
	assert.Equal(t, "Mail", lp.Apps()[0].Name)
}
