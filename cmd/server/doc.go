// Package main is the entry point for the WebDesk backend server.
//
// The server owns the desktop session: open windows, desktop icons,
// dock, menu bar and launchpad. The browser renders what it is told
// and sends user actions back.
//
// Architecture:
//
//	Browser → REST (commands, queries)  → Desktop
//	        ↔ WebSocket /stream (snapshots, commands)
//
// The server provides:
//   - REST API for windows, icons, folders, dock, menus and launchpad
//   - WebSocket snapshot streaming
//   - Prometheus metrics
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -catalog desktop.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
