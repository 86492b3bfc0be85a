// Package menu implements the menu bar as a declarative table of labeled
// entries bound to named commands.
//
// Commands that act on "the active window" read the focused id through
// the Invocation at the moment the entry is clicked, never when the menu
// was built or rendered.
package menu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a menu or entry label does not exist
	ErrNotFound = errors.New("menu entry not found")
	// ErrUnknownCommand is returned when an entry names an unregistered command
	ErrUnknownCommand = errors.New("unknown menu command")
)

// Item is one entry: a command or a separator
type Item struct {
	Label         string `json:"label,omitempty"`
	Shortcut      string `json:"shortcut,omitempty"`
	Command       string `json:"command,omitempty"`
	Arg           string `json:"arg,omitempty"`
	Disabled      bool   `json:"disabled,omitempty"`
	Separator     bool   `json:"separator,omitempty"`
	RequiresFocus bool   `json:"requires_focus,omitempty"`
}

// Menu is one top-level menu
type Menu struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// FocusResolver returns the currently focused window id ("" for none)
type FocusResolver func() string

// Invocation is passed to a handler when an entry fires
type Invocation struct {
	Menu  string
	Label string
	Arg   string
	focus FocusResolver
}

// FocusedID resolves the focused window now
func (inv Invocation) FocusedID() string {
	if inv.focus == nil {
		return ""
	}
	return inv.focus()
}

// Handler runs a command
type Handler func(Invocation) error

// Bar is the full menu bar
type Bar struct {
	menus    []Menu
	commands map[string]Handler
	focus    FocusResolver
}

// NewBar creates a bar over the given menus
func NewBar(focus FocusResolver, menus ...Menu) *Bar {
	return &Bar{
		menus:    menus,
		commands: make(map[string]Handler),
		focus:    focus,
	}
}

// Handle registers a command handler
func (b *Bar) Handle(name string, h Handler) {
	b.commands[name] = h
}

// Validate checks that every command entry names a registered handler
func (b *Bar) Validate() error {
	var missing []string
	for _, m := range b.menus {
		for _, it := range m.Items {
			if it.Separator {
				continue
			}
			if _, ok := b.commands[it.Command]; !ok {
				missing = append(missing, fmt.Sprintf("%s/%s:%q", m.Title, it.Label, it.Command))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, strings.Join(missing, ", "))
	}
	return nil
}

func (b *Bar) find(menuTitle, label string) (Item, bool) {
	for _, m := range b.menus {
		if m.Title != menuTitle {
			continue
		}
		for _, it := range m.Items {
			if !it.Separator && it.Label == label {
				return it, true
			}
		}
	}
	return Item{}, false
}

func (b *Bar) enabled(it Item, focused string) bool {
	if it.Separator || it.Disabled {
		return false
	}
	return !it.RequiresFocus || focused != ""
}

// Invoke fires an entry. Disabled entries, and focus-bound entries while
// nothing is focused, are inert: no handler runs and false is returned.
func (b *Bar) Invoke(menuTitle, label string) (bool, error) {
	it, ok := b.find(menuTitle, label)
	if !ok {
		return false, fmt.Errorf("%w: %s/%s", ErrNotFound, menuTitle, label)
	}

	if !b.enabled(it, b.resolve()) {
		return false, nil
	}

	h, ok := b.commands[it.Command]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, it.Command)
	}

	inv := Invocation{Menu: menuTitle, Label: label, Arg: it.Arg, focus: b.focus}
	if err := h(inv); err != nil {
		return false, fmt.Errorf("menu %s/%s: %w", menuTitle, label, err)
	}
	return true, nil
}

func (b *Bar) resolve() string {
	if b.focus == nil {
		return ""
	}
	return b.focus()
}

// ItemView is the display state of an entry
type ItemView struct {
	Label     string `json:"label,omitempty"`
	Shortcut  string `json:"shortcut,omitempty"`
	Separator bool   `json:"separator,omitempty"`
	Enabled   bool   `json:"enabled"`
}

// MenuView is the display state of a menu
type MenuView struct {
	Title string     `json:"title"`
	Items []ItemView `json:"items"`
}

// View returns display state for the current focus
func (b *Bar) View() []MenuView {
	focused := b.resolve()
	out := make([]MenuView, len(b.menus))
	for i, m := range b.menus {
		items := make([]ItemView, len(m.Items))
		for j, it := range m.Items {
			items[j] = ItemView{
				Label:     it.Label,
				Shortcut:  it.Shortcut,
				Separator: it.Separator,
				Enabled:   b.enabled(it, focused),
			}
		}
		out[i] = MenuView{Title: m.Title, Items: items}
	}
	return out
}
