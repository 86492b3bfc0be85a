// Package cli implements deskctl, a command-line remote for a running
// desktop server. Every command maps to one API call and prints the
// JSON response, except status which renders a window table.
package cli
