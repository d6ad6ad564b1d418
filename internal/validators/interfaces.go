// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// Services hold a [Validator] and call it first in every write operation.
// The optional field names restrict a check to part of a payload, so login
// can validate credentials without demanding a public key.
package validators

import "context"

// Validator validates value, either completely or only the named fields.
// A failed check returns an error wrapping one of the package sentinels.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
