package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileMenu() Menu {
	return Menu{Title: "File", Items: []Item{
		{Label: "New Finder Window", Shortcut: "⌘N", Command: "app.launch", Arg: "finder"},
		{Separator: true},
		{Label: "Recent Items", Command: "log", Disabled: true},
		{Label: "Close Window", Shortcut: "⌘W", Command: "window.close", RequiresFocus: true},
	}}
}

func TestInvokeResolvesFocusAtClickTime(t *testing.T) {
	focused := "finder"
	bar := NewBar(func() string { return focused }, fileMenu())

	var closed []string
	bar.Handle("window.close", func(inv Invocation) error {
		closed = append(closed, inv.FocusedID())
		return nil
	})
	bar.Handle("app.launch", func(Invocation) error { return nil })
	bar.Handle("log", func(Invocation) error { return nil })

	// rendered while finder was focused, clicked after notes took focus
	_ = bar.View()
	focused = "notes"

	ok, err := bar.Invoke("File", "Close Window")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"notes"}, closed)
}

func TestInvokePassesArg(t *testing.T) {
	bar := NewBar(nil, fileMenu())

	var arg string
	bar.Handle("app.launch", func(inv Invocation) error {
		arg = inv.Arg
		return nil
	})

	ok, err := bar.Invoke("File", "New Finder Window")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "finder", arg)
}

func TestDisabledEntriesAreInert(t *testing.T) {
	bar := NewBar(func() string { return "" }, fileMenu())

	fired := 0
	bar.Handle("log", func(Invocation) error { fired++; return nil })
	bar.Handle("window.close", func(Invocation) error { fired++; return nil })

	ok, err := bar.Invoke("File", "Recent Items")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = bar.Invoke("File", "Close Window")
	require.NoError(t, err)
	assert.False(t, ok, "no focused window to close")

	assert.Zero(t, fired)
}

func TestInvokeErrors(t *testing.T) {
	bar := NewBar(nil, fileMenu())

	_, err := bar.Invoke("File", "Print")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = bar.Invoke("Edit", "Close Window")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = bar.Invoke("File", "New Finder Window")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	boom := errors.New("boom")
	bar.Handle("app.launch", func(Invocation) error { return boom })
	_, err = bar.Invoke("File", "New Finder Window")
	assert.ErrorIs(t, err, boom)
}

func TestValidate(t *testing.T) {
	bar := NewBar(nil, fileMenu())
	bar.Handle("app.launch", func(Invocation) error { return nil })

	err := bar.Validate()
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "window.close")

	bar.Handle("window.close", func(Invocation) error { return nil })
	bar.Handle("log", func(Invocation) error { return nil })
	assert.NoError(t, bar.Validate())
}

func TestViewEnablement(t *testing.T) {
	focused := ""
	bar := NewBar(func() string { return focused }, fileMenu())

	items := bar.View()[0].Items
	require.Len(t, items, 4)
	assert.True(t, items[0].Enabled)
	assert.True(t, items[1].Separator)
	assert.False(t, items[1].Enabled)
	assert.False(t, items[2].Enabled)
	assert.False(t, items[3].Enabled)

	focused = "finder"
	assert.True(t, bar.View()[0].Items[3].Enabled)
}
