// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyStreamToken is returned by the stream endpoints when neither
	// the token query parameter nor an "Authorization" header is present.
	ErrEmptyStreamToken = errors.New("empty `token` query parameter")
)

// Request decoding errors, reported as validation failures.
var (
	errInvalidJSON      = errors.New("invalid JSON was passed")
	errInvalidPathParam = errors.New("invalid path parameter")
	errInvalidGzipBody  = errors.New("invalid gzip data")
)

// errStreamingUnsupported is returned when the response writer cannot flush.
var errStreamingUnsupported = errors.New("streaming is not supported by the connection")
