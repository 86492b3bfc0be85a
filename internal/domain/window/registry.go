package window

import (
	"cmp"
	"slices"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/geometry"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// Options configures stacking and placement
type Options struct {
	ZBase        int         // counter seed; first drawn value is ZBase+1
	CascadeBase  types.Point // position of the first window
	CascadeStep  int         // diagonal offset between successive windows
	CascadeCycle int         // cascade repeats after this many windows
	DefaultSize  types.Size  // size used when a launch gives none
}

// DefaultOptions returns the stock desktop placement rules
func DefaultOptions() Options {
	return Options{
		ZBase:        10,
		CascadeBase:  types.Point{X: 100, Y: 100},
		CascadeStep:  30,
		CascadeCycle: 5,
		DefaultSize:  types.Size{Width: 720, Height: 480},
	}
}

// Registry tracks open windows, their stacking order, and focus
type Registry[C any] struct {
	opts     Options
	sessions map[string]*entry[C]
	focused  string // "" when nothing is focused
	nextZ    int
}

// NewRegistry creates an empty registry
func NewRegistry[C any](opts Options) *Registry[C] {
	if opts.CascadeCycle <= 0 {
		opts.CascadeCycle = 1
	}
	return &Registry[C]{
		opts:     opts,
		sessions: make(map[string]*entry[C]),
		nextZ:    opts.ZBase,
	}
}

// drawZ consumes the next stacking value
func (r *Registry[C]) drawZ() int {
	r.nextZ++
	return r.nextZ
}

// cascade returns the initial position for a new window
func (r *Registry[C]) cascade() types.Point {
	offset := (len(r.sessions) % r.opts.CascadeCycle) * r.opts.CascadeStep
	return types.Point{
		X: r.opts.CascadeBase.X + offset,
		Y: r.opts.CascadeBase.Y + offset,
	}
}

// Launch opens a window, or refocuses it if req.ID is already open.
// Either way the window ends up focused with a freshly drawn z-index.
// An empty id is rejected.
func (r *Registry[C]) Launch(req LaunchRequest[C]) (Session[C], bool) {
	if req.ID == "" {
		return Session[C]{}, false
	}

	if e, ok := r.sessions[req.ID]; ok {
		if e.minimized {
			// Re-launch replaces the inert placeholder
			e.content = req.Content
			e.size = e.restored
			if req.Size != nil && !e.maximized {
				e.size = *req.Size
			}
			e.minimized = false
		}
		e.zIndex = r.drawZ()
		r.focused = e.id
		return e.view(r.focused), true
	}

	size := r.opts.DefaultSize
	if req.Size != nil {
		size = *req.Size
	}

	e := &entry[C]{
		id:       req.ID,
		title:    req.Title,
		icon:     req.Icon,
		content:  req.Content,
		position: r.cascade(),
		size:     size,
		zIndex:   r.drawZ(),
	}
	r.sessions[e.id] = e
	r.focused = e.id

	return e.view(r.focused), true
}

// Focus raises a window and gives it focus. Focusing the window that
// already has focus is a no-op and draws no z-index.
func (r *Registry[C]) Focus(id string) bool {
	if id == r.focused {
		return false
	}
	e, ok := r.sessions[id]
	if !ok {
		return false
	}

	e.zIndex = r.drawZ()
	r.focused = id
	return true
}

// Close removes a window. Focus is cleared if it was focused.
func (r *Registry[C]) Close(id string) bool {
	if _, ok := r.sessions[id]; !ok {
		return false
	}

	delete(r.sessions, id)
	if r.focused == id {
		r.focused = ""
	}
	return true
}

// Minimize collapses a window: content becomes the zero value, size
// becomes zero and it loses focus. The session stays open.
func (r *Registry[C]) Minimize(id string) bool {
	e, ok := r.sessions[id]
	if !ok {
		return false
	}

	if !e.minimized {
		e.restored = e.size
	}
	var inert C
	e.content = inert
	e.size = types.Size{}
	e.minimized = true

	if r.focused == id {
		r.focused = ""
	}
	return true
}

// Maximize toggles a window between filling bounds and its previous frame.
// Minimized windows are left alone.
func (r *Registry[C]) Maximize(id string, bounds types.Rect) bool {
	e, ok := r.sessions[id]
	if !ok || e.minimized {
		return false
	}

	if e.maximized {
		e.position = e.normal.position
		e.size = e.normal.size
		e.maximized = false
		return true
	}

	e.normal = frame{position: e.position, size: e.size}
	e.position = types.Point{}
	e.size = bounds.Size()
	e.maximized = true
	return true
}

// DragEnd commits a drag release, clamped to bounds using the window size
// as footprint.
func (r *Registry[C]) DragEnd(id string, raw types.Point, bounds types.Rect) bool {
	e, ok := r.sessions[id]
	if !ok {
		return false
	}

	e.position = geometry.Clamp(raw, bounds, e.size)
	return true
}

// SetTitle renames a window
func (r *Registry[C]) SetTitle(id, title string) bool {
	e, ok := r.sessions[id]
	if !ok {
		return false
	}

	e.title = title
	return true
}

// ClearFocus leaves no window focused. Z-indices are untouched.
func (r *Registry[C]) ClearFocus() bool {
	if r.focused == "" {
		return false
	}
	r.focused = ""
	return true
}

// Sessions returns open windows in paint order (z-index ascending)
func (r *Registry[C]) Sessions() []Session[C] {
	out := make([]Session[C], 0, len(r.sessions))
	for _, e := range r.sessions {
		out = append(out, e.view(r.focused))
	}
	slices.SortFunc(out, func(a, b Session[C]) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return out
}

// Get returns one window
func (r *Registry[C]) Get(id string) (Session[C], bool) {
	e, ok := r.sessions[id]
	if !ok {
		return Session[C]{}, false
	}
	return e.view(r.focused), true
}

// Has reports whether id is open
func (r *Registry[C]) Has(id string) bool {
	_, ok := r.sessions[id]
	return ok
}

// IsActive reports whether id is open and focused
func (r *Registry[C]) IsActive(id string) bool {
	return id != "" && id == r.focused && r.Has(id)
}

// FocusedID returns the focused window id, or "" if none
func (r *Registry[C]) FocusedID() string {
	return r.focused
}

// Len returns the number of open windows
func (r *Registry[C]) Len() int {
	return len(r.sessions)
}

// LastZ returns the most recently drawn z-index (ZBase if none yet)
func (r *Registry[C]) LastZ() int {
	return r.nextZ
}

// Stats returns registry statistics
func (r *Registry[C]) Stats() Stats {
	var minimized, maximized int
	for _, e := range r.sessions {
		if e.minimized {
			minimized++
		}
		if e.maximized {
			maximized++
		}
	}

	var focusedID *string
	if r.focused != "" {
		id := r.focused
		focusedID = &id
	}

	return Stats{
		Open:      len(r.sessions),
		Minimized: minimized,
		Maximized: maximized,
		FocusedID: focusedID,
		LastZ:     r.nextZ,
	}
}
