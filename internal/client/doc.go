// Package client is a typed HTTP client for the desktop server API.
//
// Example Usage:
//
//	c := client.New("http://localhost:8000", client.DefaultTimeout)
//	snap, err := c.Desktop(ctx)
package client
