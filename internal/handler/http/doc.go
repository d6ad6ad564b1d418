// Package http implements the HTTP transport layer of the chat server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and by the live message streams (server-sent events and WebSocket).
// Cross-cutting concerns such as authentication, request tracing, access
// logging, and response compression are handled in this package before
// requests are delegated to the service layer. Every failure is answered
// with a JSON [models.ErrorResponse] whose kind tells clients how to react.
package http
