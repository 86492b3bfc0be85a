// Package types provides shared data structures for the desktop backend.
//
// This package defines value types used by the domain packages and the
// HTTP/WebSocket transports, so both sides agree on one wire shape.
//
// Geometry:
//   - Point: a position in some coordinate space
//   - Size: a footprint (width, height)
//   - Rect: a container with its top-left offset in viewport coordinates
//
// Content:
//   - Content: opaque handle to a window's application content; the
//     window registry stores it and never interprets it
//
// Request Types:
//   - LaunchRequest, DragRequest, TitleRequest, BoundsRequest
//   - MenuRequest, LaunchpadRequest
//   - WSMessage: WebSocket communication
//
// Example Usage:
//
//	bounds := types.Rect{X: 0, Y: 28, Width: 1280, Height: 720}
//	content := types.Content{Kind: types.ContentFinder, Ref: "docs-folder"}
package types
