package desktop

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/dock"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/icons"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/menu"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/window"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// Window ids opened by double-clicking an icon
const (
	folderWindowPrefix = "folder-window-"
	fileWindowPrefix   = "file-window-"
)

func (d *Desktop) registerCommands() {
	d.bar.Handle(catalog.CmdClose, func(inv menu.Invocation) error {
		d.dirty = d.closeWindow(inv.FocusedID())
		return nil
	})
	d.bar.Handle(catalog.CmdMinimize, func(inv menu.Invocation) error {
		d.dirty = d.windows.Minimize(inv.FocusedID())
		return nil
	})
	d.bar.Handle(catalog.CmdMaximize, func(inv menu.Invocation) error {
		d.dirty = d.maximize(inv.FocusedID())
		return nil
	})
	d.bar.Handle(catalog.CmdLaunch, func(inv menu.Invocation) error {
		res, err := d.dock.Activate(inv.Arg)
		d.dirty = res.Launched
		return err
	})
	d.bar.Handle(catalog.CmdOpen, func(inv menu.Invocation) error {
		about := d.cat.About
		if inv.Arg != about.ID {
			return fmt.Errorf("%w: panel %s", ErrNotFound, inv.Arg)
		}
		size := about.Size
		_, d.dirty = d.launch(window.LaunchRequest[types.Content]{
			ID:      about.ID,
			Title:   about.Title,
			Icon:    about.Icon,
			Content: types.Content{Kind: types.ContentAbout, Text: about.Text},
			Size:    &size,
		})
		return nil
	})
	d.bar.Handle(catalog.CmdLog, func(inv menu.Invocation) error {
		d.log.Debug("menu entry not implemented", zap.String("menu", inv.Menu), zap.String("label", inv.Label))
		return nil
	})
}

// launch opens or refocuses a window and keeps its folder surface in
// step. Caller holds mu.
func (d *Desktop) launch(req window.LaunchRequest[types.Content]) (window.Session[types.Content], bool) {
	s, ok := d.windows.Launch(req)
	if !ok {
		return s, false
	}
	if s.Content.Kind == types.ContentFinder {
		d.syncFolder(s)
	}
	return s, true
}

// syncFolder creates or resizes the icon surface of a Finder window
func (d *Desktop) syncFolder(s window.Session[types.Content]) {
	rect := types.Rect{Width: s.Size.Width, Height: s.Size.Height}
	if f, ok := d.folders[s.ID]; ok {
		if !s.Size.IsZero() {
			f.SetBounds(rect)
		}
		return
	}
	d.folders[s.ID] = icons.NewStore(rect, icons.DefaultFootprint, d.cat.FolderItems...)
}

func (d *Desktop) closeWindow(id string) bool {
	if !d.windows.Close(id) {
		return false
	}
	delete(d.folders, id)
	return true
}

func (d *Desktop) maximize(id string) bool {
	if !d.windows.Maximize(id, d.bounds) {
		return false
	}
	if s, ok := d.windows.Get(id); ok && s.Content.Kind == types.ContentFinder {
		d.syncFolder(s)
	}
	return true
}

// open handles a double-click on an icon from any surface
func (d *Desktop) open(icon icons.Icon) (window.Session[types.Content], bool) {
	req := window.LaunchRequest[types.Content]{Title: icon.Name}
	if icon.Kind == icons.KindFolder {
		req.ID = folderWindowPrefix + icon.ID
		req.Icon = "folder"
		req.Content = types.Content{Kind: types.ContentFinder, Ref: icon.ID}
	} else {
		req.ID = fileWindowPrefix + icon.ID
		req.Icon = "file-text"
		req.Content = types.Content{Kind: types.ContentViewer, Ref: icon.ID, Text: icon.Name}
	}
	return d.launch(req)
}

// Launch opens a window or refocuses the one with the same id
func (d *Desktop) Launch(req types.LaunchRequest) (window.Session[types.Content], bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.launch(window.LaunchRequest[types.Content]{
		ID:      req.ID,
		Title:   req.Title,
		Icon:    req.Icon,
		Content: req.Content,
		Size:    req.Size,
	})
	d.record("launch", req.ID, ok)
	return s, ok
}

// LaunchApp opens the window of a dock catalog app regardless of where
// it is clicked from. Navigation-only apps report false.
func (d *Desktop) LaunchApp(appID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	app, ok := d.dock.App(appID)
	if !ok {
		d.record("launch_app", appID, false)
		return false, fmt.Errorf("%w: %s", dock.ErrUnknownApp, appID)
	}
	if app.Action.Kind == dock.ActionNavigate {
		return d.record("launch_app", appID, false), nil
	}

	res, err := d.dock.Activate(appID)
	if err != nil {
		return false, err
	}
	return d.record("launch_app", appID, res.Launched), nil
}

// Focus raises a window
func (d *Desktop) Focus(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("focus", id, d.windows.Focus(id))
}

// Close closes a window and drops its folder surface
func (d *Desktop) Close(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("close", id, d.closeWindow(id))
}

// Minimize collapses a window
func (d *Desktop) Minimize(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("minimize", id, d.windows.Minimize(id))
}

// Maximize toggles a window between the desktop bounds and its frame
func (d *Desktop) Maximize(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("maximize", id, d.maximize(id))
}

// DragWindow commits a window drag release at a viewport position
func (d *Desktop) DragWindow(id string, raw types.Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("drag_window", id, d.windows.DragEnd(id, raw, d.bounds))
}

// SetTitle renames a window
func (d *Desktop) SetTitle(id, title string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("set_title", id, d.windows.SetTitle(id, title))
}

// SelectIcon selects a desktop icon. Selecting also leaves no window focused.
func (d *Desktop) SelectIcon(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.icons.Item(id); !ok {
		return d.record("select_icon", id, false)
	}
	selected := d.icons.Select(id)
	unfocused := d.windows.ClearFocus()
	return d.record("select_icon", id, selected || unfocused)
}

// DragIcon commits a desktop icon drag release
func (d *Desktop) DragIcon(id string, raw types.Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record("drag_icon", id, d.icons.DragEnd(id, raw))
}

// OpenIcon handles a double-click on a desktop icon: folders open a
// Finder window, files open a viewer
func (d *Desktop) OpenIcon(id string) (window.Session[types.Content], bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	icon, ok := d.icons.Item(id)
	if !ok {
		d.record("open_icon", id, false)
		return window.Session[types.Content]{}, false
	}
	s, ok := d.open(icon)
	d.record("open_icon", id, ok)
	return s, ok
}

// SelectFolderItem selects an item inside a Finder window
func (d *Desktop) SelectFolderItem(windowID, itemID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.folders[windowID]
	return d.record("select_folder_item", itemID, ok && f.Select(itemID))
}

// DragFolderItem commits a drag inside a Finder window. Positions are
// relative to the window content.
func (d *Desktop) DragFolderItem(windowID, itemID string, raw types.Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.folders[windowID]
	return d.record("drag_folder_item", itemID, ok && f.DragEnd(itemID, raw))
}

// OpenFolderItem handles a double-click inside a Finder window
func (d *Desktop) OpenFolderItem(windowID, itemID string) (window.Session[types.Content], bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var icon icons.Icon
	f, ok := d.folders[windowID]
	if ok {
		icon, ok = f.Item(itemID)
	}
	if !ok {
		d.record("open_folder_item", itemID, false)
		return window.Session[types.Content]{}, false
	}
	s, ok := d.open(icon)
	d.record("open_folder_item", itemID, ok)
	return s, ok
}

// FolderItems returns the items of a Finder window matching term
func (d *Desktop) FolderItems(windowID, term string) ([]icons.Icon, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, ok := d.folders[windowID]
	if !ok {
		return nil, false
	}
	return f.Filter(term), true
}

// DeselectAll handles a click on the bare desktop: no window focused and
// no icon selected on any surface, in one step
func (d *Desktop) DeselectAll() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed := d.windows.ClearFocus()
	if d.icons.DeselectAll() {
		changed = true
	}
	for _, f := range d.folders {
		if f.DeselectAll() {
			changed = true
		}
	}
	return d.record("deselect_all", "", changed)
}

// InvokeMenu fires a menu entry and reports whether a handler ran.
// Only entries that changed state publish. Unknown entries wrap
// menu.ErrNotFound.
func (d *Desktop) InvokeMenu(menuTitle, label string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dirty = false
	applied, err := d.bar.Invoke(menuTitle, label)
	d.metrics.RecordCommand("menu", applied && err == nil)
	if err != nil {
		return false, err
	}
	if d.dirty {
		d.commit()
	} else if applied {
		d.log.Debug("menu entry changed nothing", zap.String("menu", menuTitle), zap.String("label", label))
	}
	return applied, nil
}

// ActivateDock performs a dock click
func (d *Desktop) ActivateDock(id string) (dock.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.dock.Activate(id)
	if err != nil {
		d.record("dock", id, false)
		return res, err
	}
	d.record("dock", id, res.Launched)
	return res, nil
}

// LaunchFromLaunchpad opens the window for a launcher entry. Entries
// tied to a dock app launch that app; others open a generic window.
func (d *Desktop) LaunchFromLaunchpad(name string) (window.Session[types.Content], error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	app, ok := d.pad.Resolve(name)
	if !ok {
		d.record("launchpad", name, false)
		return window.Session[types.Content]{}, fmt.Errorf("%w: launchpad app %q", ErrNotFound, name)
	}

	if app.AppID != "" {
		if _, err := d.dock.Activate(app.AppID); err != nil {
			d.record("launchpad", name, false)
			return window.Session[types.Content]{}, err
		}
		s, _ := d.windows.Get(app.AppID)
		d.record("launchpad", name, true)
		return s, nil
	}

	s, ok := d.launch(window.LaunchRequest[types.Content]{
		ID:      app.WindowID(),
		Title:   app.Name,
		Icon:    app.Icon,
		Content: types.Content{Kind: types.ContentGeneric, Ref: app.Name},
	})
	d.record("launchpad", name, ok)
	return s, nil
}

// SetBounds records a resized desktop surface. Existing positions are
// kept; later drags clamp to the new bounds.
func (d *Desktop) SetBounds(r types.Rect) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r == d.bounds {
		return d.record("set_bounds", "", false)
	}
	d.bounds = r
	d.icons.SetBounds(r)
	return d.record("set_bounds", "", true)
}

// IsNotFound reports whether err means an unknown id or entry
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, dock.ErrUnknownApp) || errors.Is(err, menu.ErrNotFound)
}
