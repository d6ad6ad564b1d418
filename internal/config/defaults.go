// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const defaultDotEnvPath = ".env"

// defaults returns the lowest priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:              "go-cipher-rooms",
			TokenDuration:            24 * time.Hour,
			PasswordCheckLockTimeout: 30 * time.Second,
			BacklogLimit:             10000,
			BcryptCost:               10,
		},
		Server: Server{
			HTTPAddress:    ":8443",
			RequestTimeout: 30 * time.Second,
		},
		Hub: Hub{
			SubscriberBuffer: 64,
			SSERetry:         3 * time.Second,
		},
	}
}
