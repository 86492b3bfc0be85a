// Package main is deskctl, a command-line remote for a running WebDesk
// server.
//
// Usage:
//
//	deskctl status
//	deskctl dock finder
//	deskctl menu Window Minimize
//	deskctl launchpad calc
//	deskctl --server http://desk:8000 --pretty windows
package main
