package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

func desktopIcons() []Icon {
	return []Icon{
		{ID: "docs-folder", Name: "Documents", Kind: KindFolder, Position: types.Point{X: 40, Y: 40}},
		{ID: "notes-file", Name: "My Notes.txt", Kind: KindFile, FileType: FileDocument, Position: types.Point{X: 40, Y: 150}},
		{ID: "wallpaper-img", Name: "Background.jpg", Kind: KindFile, FileType: FileImage, Position: types.Point{X: 40, Y: 260}, Selected: true},
	}
}

func newTestStore() *Store {
	return NewStore(types.Rect{Width: 400, Height: 300}, DefaultFootprint, desktopIcons()...)
}

func selected(s *Store) []string {
	var ids []string
	for _, icon := range s.Icons() {
		if icon.Selected {
			ids = append(ids, icon.ID)
		}
	}
	return ids
}

func TestNewStoreDropsSelectionAndDuplicates(t *testing.T) {
	items := append(desktopIcons(), Icon{ID: "docs-folder", Name: "Duplicate"})
	s := NewStore(types.Rect{Width: 400, Height: 300}, DefaultFootprint, items...)

	assert.Equal(t, 3, s.Len())
	assert.Empty(t, selected(s))
	icon, ok := s.Item("docs-folder")
	require.True(t, ok)
	assert.Equal(t, "Documents", icon.Name)
}

func TestSelectionExclusivity(t *testing.T) {
	s := newTestStore()

	require.True(t, s.Select("docs-folder"))
	require.True(t, s.Select("notes-file"))
	assert.False(t, s.Select("notes-file"), "already the selection")

	a, _ := s.Item("docs-folder")
	b, _ := s.Item("notes-file")
	assert.False(t, a.Selected)
	assert.True(t, b.Selected)
	assert.Equal(t, []string{"notes-file"}, selected(s))

	assert.True(t, s.DeselectAll())
	a, _ = s.Item("docs-folder")
	b, _ = s.Item("notes-file")
	assert.False(t, a.Selected)
	assert.False(t, b.Selected)
	assert.False(t, s.DeselectAll(), "nothing left to clear")
}

func TestSelectUnknownKeepsSelection(t *testing.T) {
	s := newTestStore()
	s.Select("notes-file")

	assert.False(t, s.Select("ghost"))
	id, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "notes-file", id)
}

func TestDragEndClamps(t *testing.T) {
	s := newTestStore()

	require.True(t, s.DragEnd("docs-folder", types.Point{X: -50, Y: 500}))
	icon, _ := s.Item("docs-folder")
	assert.Equal(t, types.Point{X: 0, Y: 204}, icon.Position)

	other, _ := s.Item("notes-file")
	assert.Equal(t, types.Point{X: 40, Y: 150}, other.Position, "positions are independent")

	assert.False(t, s.DragEnd("ghost", types.Point{}))
}

func TestDragEndUsesCurrentBounds(t *testing.T) {
	s := newTestStore()
	s.SetBounds(types.Rect{X: 0, Y: 28, Width: 200, Height: 200})

	s.DragEnd("notes-file", types.Point{X: 500, Y: 500})
	icon, _ := s.Item("notes-file")
	assert.Equal(t, types.Point{X: 104, Y: 104}, icon.Position)
	assert.Equal(t, 200, s.Bounds().Width)
}

func TestFilter(t *testing.T) {
	s := newTestStore()

	assert.Len(t, s.Filter(""), 3)
	got := s.Filter("NOTES")
	require.Len(t, got, 1)
	assert.Equal(t, "notes-file", got[0].ID)
	assert.Empty(t, s.Filter("zip"))
}

func TestIconsReturnsCopies(t *testing.T) {
	s := newTestStore()

	list := s.Icons()
	list[0].Name = "mutated"

	icon, _ := s.Item(list[0].ID)
	assert.Equal(t, "Documents", icon.Name)
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindFolder.Valid())
	assert.True(t, KindFile.Valid())
	assert.False(t, Kind("link").Valid())
}
