package types

// LaunchRequest opens or refocuses a window
type LaunchRequest struct {
	ID      string  `json:"id" binding:"required"`
	Title   string  `json:"title" binding:"required"`
	Icon    string  `json:"icon,omitempty"`
	Content Content `json:"content"`
	Size    *Size   `json:"size,omitempty"`
}

// DragRequest carries a raw viewport position at drag release
type DragRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// Point returns the release position
func (r DragRequest) Point() Point {
	return Point{X: *r.X, Y: *r.Y}
}

// TitleRequest renames a window
type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// BoundsRequest reports the desktop surface rectangle
type BoundsRequest struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width" binding:"required,gt=0"`
	Height int `json:"height" binding:"required,gt=0"`
}

// Rect converts the request into a Rect
func (r BoundsRequest) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// MenuRequest invokes a menu entry
type MenuRequest struct {
	Menu  string `json:"menu" binding:"required"`
	Label string `json:"label" binding:"required"`
}

// LaunchpadRequest launches a launcher entry by name
type LaunchpadRequest struct {
	Name string `json:"name" binding:"required"`
}

// WSMessage represents a WebSocket command from the browser
type WSMessage struct {
	Type    string   `json:"type"`
	ID      string   `json:"id,omitempty"`
	Window  string   `json:"window,omitempty"`
	Title   string   `json:"title,omitempty"`
	Icon    string   `json:"icon,omitempty"`
	Content *Content `json:"content,omitempty"`
	Size    *Size    `json:"size,omitempty"`
	X       int      `json:"x,omitempty"`
	Y       int      `json:"y,omitempty"`
	Menu    string   `json:"menu,omitempty"`
	Label   string   `json:"label,omitempty"`
}
