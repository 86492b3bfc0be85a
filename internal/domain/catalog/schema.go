package catalog

import (
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/dock"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/icons"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/launchpad"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/menu"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// On-disk layout, shared by all three encodings

type file struct {
	About       aboutSpec       `yaml:"about" toml:"about" json:"about"`
	Dock        []dockSpec      `yaml:"dock" toml:"dock" json:"dock"`
	Icons       []iconSpec      `yaml:"icons" toml:"icons" json:"icons"`
	FolderItems []iconSpec      `yaml:"folder_items" toml:"folder_items" json:"folder_items"`
	Menus       []menuSpec      `yaml:"menus" toml:"menus" json:"menus"`
	Launchpad   []launchpadSpec `yaml:"launchpad" toml:"launchpad" json:"launchpad"`
}

type aboutSpec struct {
	ID     string `yaml:"id" toml:"id" json:"id"`
	Title  string `yaml:"title" toml:"title" json:"title"`
	Icon   string `yaml:"icon" toml:"icon" json:"icon"`
	Text   string `yaml:"text" toml:"text" json:"text"`
	Width  int    `yaml:"width" toml:"width" json:"width"`
	Height int    `yaml:"height" toml:"height" json:"height"`
}

type dockSpec struct {
	ID      string `yaml:"id" toml:"id" json:"id"`
	Name    string `yaml:"name" toml:"name" json:"name"`
	Icon    string `yaml:"icon" toml:"icon" json:"icon"`
	Action  string `yaml:"action" toml:"action" json:"action"`
	Title   string `yaml:"title" toml:"title" json:"title"`
	Content string `yaml:"content" toml:"content" json:"content"`
	Ref     string `yaml:"ref" toml:"ref" json:"ref"`
	Width   int    `yaml:"width" toml:"width" json:"width"`
	Height  int    `yaml:"height" toml:"height" json:"height"`
	Route   string `yaml:"route" toml:"route" json:"route"`
}

type iconSpec struct {
	ID       string `yaml:"id" toml:"id" json:"id"`
	Name     string `yaml:"name" toml:"name" json:"name"`
	Kind     string `yaml:"kind" toml:"kind" json:"kind"`
	FileType string `yaml:"file_type" toml:"file_type" json:"file_type"`
	X        int    `yaml:"x" toml:"x" json:"x"`
	Y        int    `yaml:"y" toml:"y" json:"y"`
}

type menuSpec struct {
	Title string     `yaml:"title" toml:"title" json:"title"`
	Items []itemSpec `yaml:"items" toml:"items" json:"items"`
}

type itemSpec struct {
	Label         string `yaml:"label" toml:"label" json:"label"`
	Shortcut      string `yaml:"shortcut" toml:"shortcut" json:"shortcut"`
	Command       string `yaml:"command" toml:"command" json:"command"`
	Arg           string `yaml:"arg" toml:"arg" json:"arg"`
	Disabled      bool   `yaml:"disabled" toml:"disabled" json:"disabled"`
	Separator     bool   `yaml:"separator" toml:"separator" json:"separator"`
	RequiresFocus bool   `yaml:"requires_focus" toml:"requires_focus" json:"requires_focus"`
}

type launchpadSpec struct {
	Name     string   `yaml:"name" toml:"name" json:"name"`
	Icon     string   `yaml:"icon" toml:"icon" json:"icon"`
	Keywords []string `yaml:"keywords" toml:"keywords" json:"keywords"`
	AppID    string   `yaml:"app_id" toml:"app_id" json:"app_id"`
}

func (f *file) catalog() *Catalog {
	c := &Catalog{
		About: About{
			ID:    f.About.ID,
			Title: f.About.Title,
			Icon:  f.About.Icon,
			Text:  f.About.Text,
			Size:  types.Size{Width: f.About.Width, Height: f.About.Height},
		},
		Icons:       convertIcons(f.Icons),
		FolderItems: convertIcons(f.FolderItems),
	}

	for _, d := range f.Dock {
		action := dock.Action{
			Kind:    dock.ActionKind(d.Action),
			Title:   d.Title,
			Content: types.Content{Kind: types.ContentKind(d.Content), Ref: d.Ref},
			Route:   d.Route,
		}
		if action.Kind == "" {
			action.Kind = dock.ActionLaunch
		}
		if d.Width > 0 && d.Height > 0 {
			action.Size = &types.Size{Width: d.Width, Height: d.Height}
		}
		c.Dock = append(c.Dock, dock.App{ID: d.ID, Name: d.Name, Icon: d.Icon, Action: action})
	}

	for _, m := range f.Menus {
		items := make([]menu.Item, len(m.Items))
		for i, it := range m.Items {
			items[i] = menu.Item{
				Label:         it.Label,
				Shortcut:      it.Shortcut,
				Command:       it.Command,
				Arg:           it.Arg,
				Disabled:      it.Disabled,
				Separator:     it.Separator,
				RequiresFocus: it.RequiresFocus,
			}
		}
		c.Menus = append(c.Menus, menu.Menu{Title: m.Title, Items: items})
	}

	for _, l := range f.Launchpad {
		c.Launchpad = append(c.Launchpad, launchpad.App{
			Name:     l.Name,
			Icon:     l.Icon,
			Keywords: l.Keywords,
			AppID:    l.AppID,
		})
	}

	return c
}

func convertIcons(specs []iconSpec) []icons.Icon {
	out := make([]icons.Icon, 0, len(specs))
	for _, s := range specs {
		out = append(out, icons.Icon{
			ID:       s.ID,
			Name:     s.Name,
			Kind:     icons.Kind(s.Kind),
			FileType: icons.FileType(s.FileType),
			Position: types.Point{X: s.X, Y: s.Y},
		})
	}
	return out
}
