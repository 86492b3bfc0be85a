// Package icons holds positionable, selectable items for one surface:
// the desktop itself or the icon view of a Finder window.
//
// A Store is not safe for concurrent use.
package icons

import (
	"strings"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/geometry"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// Kind is what activating an icon opens
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	return k == KindFolder || k == KindFile
}

// FileType chooses a glyph for file icons
type FileType string

const (
	FileDocument FileType = "document"
	FileImage    FileType = "image"
	FileArchive  FileType = "archive"
	FileCode     FileType = "code"
	FileGeneric  FileType = "generic"
)

// DefaultFootprint approximates a rendered icon with its label
var DefaultFootprint = types.Size{Width: 96, Height: 96}

// Icon is one entry on a surface
type Icon struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Kind     Kind        `json:"kind"`
	FileType FileType    `json:"file_type,omitempty"`
	Position types.Point `json:"position"`
	Selected bool        `json:"is_selected"`
}

// Store owns the icons of one surface
type Store struct {
	bounds    types.Rect
	footprint types.Size
	order     []string
	icons     map[string]*Icon
}

// NewStore creates a store from catalog entries. Incoming selection is
// dropped; duplicate ids keep the first entry.
func NewStore(bounds types.Rect, footprint types.Size, items ...Icon) *Store {
	s := &Store{
		bounds:    bounds,
		footprint: footprint,
		icons:     make(map[string]*Icon, len(items)),
	}
	for _, it := range items {
		if _, dup := s.icons[it.ID]; dup {
			continue
		}
		icon := it
		icon.Selected = false
		s.icons[icon.ID] = &icon
		s.order = append(s.order, icon.ID)
	}
	return s
}

// Select makes id the only selected icon. Unknown ids change nothing.
// Reports whether the selection changed.
func (s *Store) Select(id string) bool {
	target, ok := s.icons[id]
	if !ok {
		return false
	}
	changed := !target.Selected
	for _, icon := range s.icons {
		if icon != target && icon.Selected {
			icon.Selected = false
			changed = true
		}
	}
	target.Selected = true
	return changed
}

// DeselectAll clears the selection. Reports whether anything was selected.
func (s *Store) DeselectAll() bool {
	changed := false
	for _, icon := range s.icons {
		if icon.Selected {
			icon.Selected = false
			changed = true
		}
	}
	return changed
}

// DragEnd commits the release position of a drag, clamped to the surface
func (s *Store) DragEnd(id string, raw types.Point) bool {
	icon, ok := s.icons[id]
	if !ok {
		return false
	}
	icon.Position = geometry.Clamp(raw, s.bounds, s.footprint)
	return true
}

// SetBounds updates the surface rectangle used for clamping
func (s *Store) SetBounds(bounds types.Rect) {
	s.bounds = bounds
}

// Bounds returns the surface rectangle
func (s *Store) Bounds() types.Rect {
	return s.bounds
}

// Item returns a copy of one icon
func (s *Store) Item(id string) (Icon, bool) {
	icon, ok := s.icons[id]
	if !ok {
		return Icon{}, false
	}
	return *icon, true
}

// Selected returns the selected icon id, if any
func (s *Store) Selected() (string, bool) {
	for _, id := range s.order {
		if s.icons[id].Selected {
			return id, true
		}
	}
	return "", false
}

// Icons returns all icons in catalog order
func (s *Store) Icons() []Icon {
	out := make([]Icon, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.icons[id])
	}
	return out
}

// Filter returns icons whose name contains term, case-insensitively.
// An empty term matches everything.
func (s *Store) Filter(term string) []Icon {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.Icons()
	}

	var out []Icon
	for _, id := range s.order {
		icon := s.icons[id]
		if strings.Contains(strings.ToLower(icon.Name), term) {
			out = append(out, *icon)
		}
	}
	return out
}

// Len returns the number of icons
func (s *Store) Len() int {
	return len(s.order)
}
