package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Run blocks until ctx is cancelled or a transport fails, then shuts every
// transport down. It satisfies workers.Worker so the server shares its
// lifetime with the background workers.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
