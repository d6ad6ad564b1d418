// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTPS and gRPC server lifecycles,
// including TLS setup, startup and graceful shutdown of all enabled
// transports. A [Server] runs until its context is cancelled.
package server
