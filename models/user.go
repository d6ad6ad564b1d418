// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// User represents a chat account.
//
// The account carries the public half of the user's asymmetric key pair.
// Other members use it to encrypt room passwords and room keys addressed to
// this user; the private half never leaves the client.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Avatar is an opaque avatar reference (URL or encoded image).
	Avatar string `json:"avatar,omitempty"`

	// PublicKey is the user's public key in an opaque client-defined encoding.
	PublicKey string `json:"publicKey,omitempty"`

	// Password is the plaintext password supplied on registration and login.
	// It is never persisted and never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted in storage.
	PasswordHash string `json:"-"`

	// Settings holds free-form client settings as a JSON document.
	Settings json.RawMessage `json:"settings,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a partial profile update. Only non-nil fields are applied.
type UserUpdate struct {
	UserID    int64            `json:"-"`
	Name      *string          `json:"name,omitempty"`
	Avatar    *string          `json:"avatar,omitempty"`
	PublicKey *string          `json:"publicKey,omitempty"`
	Password  *string          `json:"password,omitempty"`
	Settings  *json.RawMessage `json:"settings,omitempty"`

	// PasswordHash is filled by the service layer when Password is set.
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no field at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Avatar == nil && u.PublicKey == nil && u.Password == nil && u.Settings == nil
}

// PublicKeyResponse is returned by the public key lookup endpoint.
type PublicKeyResponse struct {
	UserID    int64  `json:"id"`
	PublicKey string `json:"publicKey"`
}
