package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/dock"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/icons"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Dock, 5)
	assert.Equal(t, "finder", c.Dock[0].ID)
	assert.Equal(t, &types.Size{Width: 800, Height: 600}, c.Dock[0].Action.Size)
	assert.Equal(t, dock.ActionNavigate, c.Dock[1].Action.Kind)
	assert.Equal(t, "/launchpad-interface", c.Dock[1].Action.Route)
	assert.Nil(t, c.Dock[2].Action.Size, "notes uses the default size")
	assert.Equal(t, "System Settings", c.Dock[3].Name)

	require.Len(t, c.Icons, 3)
	assert.Equal(t, icons.KindFolder, c.Icons[0].Kind)
	assert.Equal(t, types.Point{X: 40, Y: 150}, c.Icons[1].Position)
	assert.Equal(t, icons.FileImage, c.Icons[2].FileType)

	assert.Len(t, c.FolderItems, 7)
	assert.Len(t, c.Launchpad, 18)

	titles := []string{}
	for _, m := range c.Menus {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"Apple", "File", "Edit", "View", "Go", "Window", "Help"}, titles)

	assert.Equal(t, "about-this-mac", c.About.ID)
	assert.Equal(t, types.Size{Width: 400, Height: 200}, c.About.Size)
}

func TestDefaultRecentItemsDisabled(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, it := range c.Menus[0].Items {
		if it.Label == "Recent Items" {
			assert.True(t, it.Disabled)
			return
		}
	}
	t.Fatal("Recent Items not found")
}

func TestLoadTOML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "minimal.toml"))
	require.NoError(t, err)

	require.Len(t, c.Dock, 2)
	assert.Equal(t, types.ContentFinder, c.Dock[0].Action.Content.Kind)
	require.Len(t, c.Menus, 1)
	require.Len(t, c.Menus[0].Items, 3)
	assert.True(t, c.Menus[0].Items[1].Separator)
	assert.True(t, c.Menus[0].Items[2].RequiresFocus)
	assert.Equal(t, []string{"math"}, c.Launchpad[0].Keywords)
}

func TestLoadJSON(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "minimal.json"))
	require.NoError(t, err)

	require.Len(t, c.Dock, 1)
	assert.Equal(t, dock.ActionLaunch, c.Dock[0].Action.Kind)
	assert.Equal(t, "Notes", c.Dock[0].Action.Content.Ref)
	assert.Equal(t, icons.FileDocument, c.Icons[0].FileType)
	assert.Equal(t, "notes", c.Launchpad[0].AppID)
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Dock, 5)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("catalog.ini")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad.yaml"))
	require.ErrorIs(t, err, ErrInvalid)

	msg := err.Error()
	for _, want := range []string{
		`unknown action "teleport"`,
		`duplicate dock id "finder"`,
		`unknown kind "shortcut"`,
		`unknown command "print"`,
		`launches unknown app "mail"`,
		`names unknown dock app "mail"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.toml": FormatTOML,
		"a.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("a.xml")
	assert.Error(t, err)
}
