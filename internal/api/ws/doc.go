// Package ws streams desktop state to the browser and accepts commands
// over a WebSocket.
//
// On connect the server sends a snapshot, then another after every
// committed change. Slow clients skip intermediate versions.
//
// Message Types (Client → Server):
//   - launch: open or refocus a window (id, title, icon, content, size)
//   - focus, close, minimize, maximize: window commands (id)
//   - drag_window, drag_icon: drag release (id, x, y)
//   - select_icon, open_icon: desktop icon commands (id)
//   - deselect_all: click on the bare desktop
//   - menu: fire a menu entry (menu, label)
//   - dock: dock click (id)
//   - ping: keep-alive
//
// Message Types (Server → Client):
//   - snapshot: full desktop state
//   - ack: command outcome with "applied"
//   - error: malformed or failed command
//   - pong: reply to ping
//
// Example Usage:
//
//	handler := ws.NewHandler(desk, logger, metrics, origins)
//	router.GET("/stream", handler.HandleConnection)
package ws
