package window

import "github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"

// Session is a read-only view of one open window
type Session[C any] struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Icon      string      `json:"icon,omitempty"`
	Content   C           `json:"content"`
	Position  types.Point `json:"position"`
	Size      types.Size  `json:"size"`
	ZIndex    int         `json:"z_index"`
	Active    bool        `json:"is_active"`
	Minimized bool        `json:"minimized"`
	Maximized bool        `json:"maximized"`
}

// LaunchRequest describes a window to open or refocus
type LaunchRequest[C any] struct {
	ID      string
	Title   string
	Icon    string
	Content C
	Size    *types.Size // nil selects Options.DefaultSize
}

// Stats contains registry statistics
type Stats struct {
	Open      int     `json:"open"`
	Minimized int     `json:"minimized"`
	Maximized int     `json:"maximized"`
	FocusedID *string `json:"focused_id,omitempty"`
	LastZ     int     `json:"last_z_index"`
}

// frame is a saved position and size
type frame struct {
	position types.Point
	size     types.Size
}

// entry is the mutable record behind a Session
type entry[C any] struct {
	id        string
	title     string
	icon      string
	content   C
	position  types.Point
	size      types.Size
	zIndex    int
	minimized bool
	maximized bool

	normal   frame      // frame before maximize
	restored types.Size // size before minimize
}

func (e *entry[C]) view(focused string) Session[C] {
	return Session[C]{
		ID:        e.id,
		Title:     e.title,
		Icon:      e.icon,
		Content:   e.content,
		Position:  e.position,
		Size:      e.size,
		ZIndex:    e.zIndex,
		Active:    e.id == focused,
		Minimized: e.minimized,
		Maximized: e.maximized,
	}
}
