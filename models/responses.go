// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every failed request.
//
// Kind is one of validation, unauthorized, forbidden, conflict,
// password_check_locked, not_found or internal. Clients branch on Kind;
// Error is a human readable message.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DeleteAccountRequest confirms account deletion with the current password.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// ProfileUpdateRequest is the body of the profile update endpoint.
// CurrentPassword is required when Password is set.
type ProfileUpdateRequest struct {
	UserUpdate
	CurrentPassword string `json:"currentPassword,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
