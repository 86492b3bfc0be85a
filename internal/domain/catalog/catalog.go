// Package catalog loads the static desktop content: dock apps, desktop
// icons, Finder folder contents, menu tables, launcher apps and the
// about panel.
//
// The stock catalog is embedded; Load reads an override from disk and
// picks the decoder from the file extension.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/dock"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/icons"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/launchpad"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/menu"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid is returned when a catalog fails validation
var ErrInvalid = errors.New("invalid catalog")

// Menu commands a catalog may bind entries to
const (
	CmdClose    = "window.close"
	CmdMinimize = "window.minimize"
	CmdMaximize = "window.maximize"
	CmdLaunch   = "app.launch" // Arg: dock app id
	CmdOpen     = "app.open"   // Arg: about panel id
	CmdLog      = "log"        // not implemented: logged only
)

var knownCommands = map[string]bool{
	CmdClose: true, CmdMinimize: true, CmdMaximize: true,
	CmdLaunch: true, CmdOpen: true, CmdLog: true,
}

// Format is a catalog file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// About is a fixed-size informational panel opened from the menu bar
type About struct {
	ID    string
	Title string
	Icon  string
	Text  string
	Size  types.Size
}

// Catalog is the decoded, validated content in domain types
type Catalog struct {
	About       About
	Dock        []dock.App
	Icons       []icons.Icon
	FolderItems []icons.Icon
	Menus       []menu.Menu
	Launchpad   []launchpad.App
}

// Default returns the embedded stock catalog
func Default() (*Catalog, error) {
	return Parse(defaultYAML, FormatYAML)
}

// Load reads a catalog file. An empty path yields the stock catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// FormatOf maps a file extension to a Format
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// Parse decodes and validates catalog data
func Parse(data []byte, format Format) (*Catalog, error) {
	var f file
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSON:
		err = sonic.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s parse error: %w", format, err)
	}

	c := f.catalog()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks ids, kinds and command bindings
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	dockIDs := map[string]bool{}
	for _, app := range c.Dock {
		if app.ID == "" {
			add("dock app %q has no id", app.Name)
			continue
		}
		if dockIDs[app.ID] {
			add("duplicate dock id %q", app.ID)
		}
		dockIDs[app.ID] = true

		switch app.Action.Kind {
		case dock.ActionLaunch:
		case dock.ActionNavigate:
			if app.Action.Route == "" {
				add("dock app %q navigates nowhere", app.ID)
			}
		default:
			add("dock app %q has unknown action %q", app.ID, app.Action.Kind)
		}
	}

	checkIcons := func(section string, list []icons.Icon) {
		seen := map[string]bool{}
		for _, icon := range list {
			if icon.ID == "" {
				add("%s icon %q has no id", section, icon.Name)
				continue
			}
			if seen[icon.ID] {
				add("duplicate %s icon id %q", section, icon.ID)
			}
			seen[icon.ID] = true
			if !icon.Kind.Valid() {
				add("%s icon %q has unknown kind %q", section, icon.ID, icon.Kind)
			}
		}
	}
	checkIcons("desktop", c.Icons)
	checkIcons("folder", c.FolderItems)

	for _, m := range c.Menus {
		for _, it := range m.Items {
			if it.Separator {
				continue
			}
			if !knownCommands[it.Command] {
				add("menu %s/%s has unknown command %q", m.Title, it.Label, it.Command)
				continue
			}
			if it.Command == CmdLaunch && !dockIDs[it.Arg] {
				add("menu %s/%s launches unknown app %q", m.Title, it.Label, it.Arg)
			}
			if it.Command == CmdOpen && it.Arg != c.About.ID {
				add("menu %s/%s opens unknown panel %q", m.Title, it.Label, it.Arg)
			}
		}
	}

	names := map[string]bool{}
	for _, app := range c.Launchpad {
		key := strings.ToLower(app.Name)
		if names[key] {
			add("duplicate launchpad app %q", app.Name)
		}
		names[key] = true
		if app.AppID != "" && !dockIDs[app.AppID] {
			add("launchpad app %q names unknown dock app %q", app.Name, app.AppID)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
