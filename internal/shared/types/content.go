package types

// ContentKind names the presentational component that renders a window
type ContentKind string

const (
	ContentNone     ContentKind = ""
	ContentFinder   ContentKind = "finder"
	ContentNotes    ContentKind = "notes"
	ContentSettings ContentKind = "settings"
	ContentGeneric  ContentKind = "generic"
	ContentViewer   ContentKind = "viewer"
	ContentAbout    ContentKind = "about"
)

// Content is an opaque handle resolved by the browser. Kind selects the
// component, Ref is a component-specific key (folder id, file id, app name).
type Content struct {
	Kind ContentKind `json:"kind"`
	Ref  string      `json:"ref,omitempty"`
	Text string      `json:"text,omitempty"`
}

// IsInert reports whether the content is the empty placeholder
func (c Content) IsInert() bool {
	return c == Content{}
}
