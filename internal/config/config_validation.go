// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violation is reported; the returned error joins them and matches the
// group sentinel of each one with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordCheckLockTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: password check lock timeout must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.BacklogLimit <= 0 {
		errs = append(errs, fmt.Errorf("%w: backlog limit must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs))
	}
	if cfg.Server.TLSCertFile == "" || cfg.Server.TLSKeyFile == "" {
		errs = append(errs, fmt.Errorf("%w: tls certificate and key are required", ErrInvalidServerConfigs))
	}

	if cfg.Hub.SubscriberBuffer < 0 {
		errs = append(errs, fmt.Errorf("%w: subscriber buffer must not be negative", ErrInvalidHubConfigs))
	}

	return errors.Join(errs...)
}
