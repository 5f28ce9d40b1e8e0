package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A server stopped through Shutdown returns nil.
	RunServer() error

	// Shutdown gracefully stops the server, giving up when ctx is done.
	Shutdown(ctx context.Context) error
}
