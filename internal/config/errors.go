package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or non-positive backlog limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing TLS certificate path).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidHubConfigs indicates invalid live subscription settings.
	ErrInvalidHubConfigs = errors.New("invalid hub configuration")
)
