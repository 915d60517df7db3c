// Package server runs the HTTP transport of the user-keeper API.
//
// It owns the server lifecycle: startup, SIGINT/SIGTERM/SIGQUIT handling and
// graceful shutdown that lets in-flight requests finish.
package server
