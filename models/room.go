// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Room represents a chat channel.
//
// A room may be protected by a password verifier; the verifier itself is never
// serialized, only the HasPassword flag is. AdminID is nullable: a room becomes
// adminless when its admin leaves or is removed, until a member claims it.
type Room struct {
	// RoomID is the unique identifier of the room.
	RoomID int64 `json:"id"`

	// Name is the display name of the room.
	Name string `json:"name"`

	// Description is an optional free text shown next to the name.
	Description string `json:"description"`

	// Avatar is an opaque avatar reference (URL or encoded image).
	Avatar string `json:"avatar,omitempty"`

	// PasswordHash is the bcrypt verifier of the room password, empty if none.
	PasswordHash string `json:"-"`

	// HasPassword reports whether the room is protected by a password.
	HasPassword bool `json:"hasPassword"`

	// IsPrivate marks rooms that cannot be joined directly.
	IsPrivate bool `json:"isPrivate"`

	// IsVisible marks rooms listed to non-members.
	IsVisible bool `json:"isVisible"`

	// AdminID references the current admin, nil for an adminless room.
	AdminID *int64 `json:"idAdmin"`

	// Settings holds free-form room settings as a JSON document.
	Settings json.RawMessage `json:"settings,omitempty"`

	// CreatedAt is the timestamp when the room was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Room model.
func (r Room) TableName() string {
	return "rooms"
}

// IsPublic reports whether users may join the room without negotiation.
func (r Room) IsPublic() bool {
	return !r.IsPrivate && r.PasswordHash == "" && !r.HasPassword
}

// IsAdmin reports whether userID is the current admin of the room.
func (r Room) IsAdmin(userID int64) bool {
	return r.AdminID != nil && *r.AdminID == userID
}

// CreateRoomRequest is the payload of the room creation endpoint.
type CreateRoomRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar,omitempty"`
	Password    string          `json:"password,omitempty"`
	IsPrivate   bool            `json:"isPrivate"`
	IsVisible   bool            `json:"isVisible"`
	Settings    json.RawMessage `json:"settings,omitempty"`

	// EncryptedRoomKey is the room key encrypted for the creator. It is stored
	// in the creator's accepted access request when the room has a password.
	EncryptedRoomKey string `json:"encryptedRoomKey,omitempty"`
}

// RoomUpdate is a partial room update. Only non-nil fields are applied.
//
// Name, Description, Avatar and Settings are content fields any member may
// change. Password, IsPrivate and IsVisible are security fields reserved to
// the admin, or to anyone while the room is adminless.
type RoomUpdate struct {
	RoomID      int64            `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Avatar      *string          `json:"avatar,omitempty"`
	Settings    *json.RawMessage `json:"settings,omitempty"`

	// Password sets a new room password; an empty string removes it.
	Password  *string `json:"password,omitempty"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
	IsVisible *bool   `json:"isVisible,omitempty"`

	// PasswordHash is filled by the service layer from Password.
	// A non-nil pointer to an empty string clears the verifier.
	PasswordHash *string `json:"-"`
}

// ChangesSecurity reports whether the update touches admin-only fields.
func (u RoomUpdate) ChangesSecurity() bool {
	return u.Password != nil || u.IsPrivate != nil || u.IsVisible != nil
}

// IsEmpty reports whether the update carries no field at all.
func (u RoomUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Avatar == nil && u.Settings == nil && !u.ChangesSecurity()
}

// RoomMember is a member of a room as listed by the members endpoint.
type RoomMember struct {
	UserID    int64     `json:"id"`
	Login     string    `json:"login"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	PublicKey string    `json:"publicKey,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// MemberRequest identifies the target user of add-user and remove-user.
type MemberRequest struct {
	UserID int64 `json:"userId"`
}

// JoinResult reports the outcome of joining a public room.
type JoinResult struct {
	RoomID        int64 `json:"roomId"`
	AlreadyInRoom bool  `json:"alreadyInRoom"`
}
