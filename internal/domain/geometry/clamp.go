// Package geometry constrains drag-release positions to their container.
package geometry

import "github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"

// Clamp translates raw from viewport coordinates into container-relative
// coordinates and constrains it so an item of the given footprint stays
// inside the container. When the container is smaller than the footprint
// the result is pinned to 0 on that axis rather than going negative.
func Clamp(raw types.Point, container types.Rect, footprint types.Size) types.Point {
	return types.Point{
		X: clampAxis(raw.X-container.X, container.Width-footprint.Width),
		Y: clampAxis(raw.Y-container.Y, container.Height-footprint.Height),
	}
}

func clampAxis(v, limit int) int {
	if limit < 0 {
		limit = 0
	}
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}
