package desktop

import (
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/dock"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/icons"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/launchpad"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/menu"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/window"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// ClockLayout formats the menu-bar clock
const ClockLayout = "Mon Jan 2 3:04 PM"

// Snapshot is everything the browser needs to render the desktop
type Snapshot struct {
	Version   uint64                          `json:"version"`
	Bounds    types.Rect                      `json:"bounds"`
	FocusedID *string                         `json:"focused_id"`
	LastZ     int                             `json:"last_z"`
	Windows   []window.Session[types.Content] `json:"windows"`
	Icons     []icons.Icon                    `json:"icons"`
	Dock      []dock.Entry                    `json:"dock"`
	Menus     []menu.MenuView                 `json:"menus"`
	Clock     string                          `json:"clock"`
}

// Snapshot captures the whole desktop at one version
func (d *Desktop) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	stats := d.windows.Stats()
	return Snapshot{
		Version:   d.version,
		Bounds:    d.bounds,
		FocusedID: stats.FocusedID,
		LastZ:     stats.LastZ,
		Windows:   d.windows.Sessions(),
		Icons:     d.icons.Icons(),
		Dock:      d.dock.Entries(),
		Menus:     d.bar.View(),
		Clock:     d.clock.Format(ClockLayout),
	}
}

// Windows returns open windows in paint order
func (d *Desktop) Windows() []window.Session[types.Content] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windows.Sessions()
}

// Window returns one open window
func (d *Desktop) Window(id string) (window.Session[types.Content], bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windows.Get(id)
}

// Stats returns registry statistics
func (d *Desktop) Stats() window.Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windows.Stats()
}

// Icons returns the desktop icons in catalog order
func (d *Desktop) Icons() []icons.Icon {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.icons.Icons()
}

// Dock returns dock entries with their indicator state
func (d *Desktop) Dock() []dock.Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dock.Entries()
}

// Menus returns the menu bar with enablement for the current focus
func (d *Desktop) Menus() []menu.MenuView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bar.View()
}

// Launchpad searches the launcher catalog
func (d *Desktop) Launchpad(term string) []launchpad.App {
	return d.pad.Search(term)
}

// Bounds returns the desktop surface rectangle
func (d *Desktop) Bounds() types.Rect {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bounds
}
