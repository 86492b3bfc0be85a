// Package window provides the window session registry for the desktop.
//
// The registry is the state machine behind every open application window:
// which windows are open, how they stack, and which one has focus.
//
// Stacking:
//   - Every focus-affecting operation draws the next value from a
//     monotonic counter owned by the registry instance
//   - Values are never reused, so no two open sessions share a z-index
//   - Paint order is computed when listing (z-index ascending)
//
// Focus:
//   - At most one session is active; Active is derived from the tracker
//   - Focusing the already-focused window draws nothing
//   - Closing or minimizing the focused window leaves nothing focused;
//     the next-topmost window is not promoted
//
// Content is a type parameter. The registry stores it and hands it back
// without looking inside.
//
// A Registry is not safe for concurrent use. Callers serialize access the
// way a UI event loop would (see package desktop).
//
// Example Usage:
//
//	reg := window.NewRegistry[types.Content](window.DefaultOptions())
//	reg.Launch(window.LaunchRequest[types.Content]{ID: "finder", Title: "Finder"})
//	reg.Focus("finder")
//	for _, s := range reg.Sessions() {
//	    fmt.Println(s.ID, s.ZIndex, s.Active)
//	}
package window
