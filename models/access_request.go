// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// AccessStatus is the negotiation state of an [AccessRequest].
type AccessStatus string

const (
	// AccessStatusPending is the admin-approval state of the legacy path.
	AccessStatusPending AccessStatus = "pending"
	// AccessStatusRequestJoin means the user asked to enter a password protected room.
	AccessStatusRequestJoin AccessStatus = "requestJoin"
	// AccessStatusDeclaredPasswordCheck means a member holds the verification lock.
	AccessStatusDeclaredPasswordCheck AccessStatus = "declaredPasswordCheck"
	// AccessStatusPasswordReadyToCheck means the encrypted password proof was submitted.
	AccessStatusPasswordReadyToCheck AccessStatus = "passwordReadyToCheck"
	// AccessStatusWaitingForKey means an accepted member asked for a fresh key delivery.
	AccessStatusWaitingForKey AccessStatus = "waitingForKey"
	// AccessStatusAccepted means access was granted.
	AccessStatusAccepted AccessStatus = "accepted"
	// AccessStatusRejected is the terminal refusal of the legacy path.
	AccessStatusRejected AccessStatus = "rejected"
	// AccessStatusInRoom is synthesized for members that have no request row.
	AccessStatusInRoom AccessStatus = "inRoom"
)

// ActiveAccessStatuses lists the non-terminal statuses shown on the room dashboard.
var ActiveAccessStatuses = []AccessStatus{
	AccessStatusPending,
	AccessStatusRequestJoin,
	AccessStatusDeclaredPasswordCheck,
	AccessStatusPasswordReadyToCheck,
	AccessStatusWaitingForKey,
}

// IsActive reports whether the status is non-terminal.
func (s AccessStatus) IsActive() bool {
	for _, active := range ActiveAccessStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// AccessPayload is the state-specific data attached to an access request.
// The concrete type is determined by the status:
//
//   - declaredPasswordCheck carries [CheckerLock]
//   - passwordReadyToCheck carries [PasswordProof]
//   - accepted carries [RoomKey] once a key was delivered
//
// Every other status carries no payload.
type AccessPayload interface {
	accessPayload()
}

// CheckerLock names the member that declared the password check.
type CheckerLock struct {
	CheckerID int64
}

// PasswordProof is the joiner's password encrypted for the checker.
type PasswordProof struct {
	CheckerID         int64
	EncryptedPassword string
}

// RoomKey is the room key encrypted for the requester.
type RoomKey struct {
	EncryptedRoomKey string
}

func (CheckerLock) accessPayload()   {}
func (PasswordProof) accessPayload() {}
func (RoomKey) accessPayload()       {}

// NewAccessPayload builds the payload matching status from its stored columns.
// Columns that do not belong to the status are ignored.
func NewAccessPayload(status AccessStatus, checkerID *int64, encryptedPassword, encryptedRoomKey *string) AccessPayload {
	switch status {
	case AccessStatusDeclaredPasswordCheck:
		if checkerID != nil {
			return CheckerLock{CheckerID: *checkerID}
		}
	case AccessStatusPasswordReadyToCheck:
		if checkerID != nil && encryptedPassword != nil {
			return PasswordProof{CheckerID: *checkerID, EncryptedPassword: *encryptedPassword}
		}
	case AccessStatusAccepted:
		if encryptedRoomKey != nil {
			return RoomKey{EncryptedRoomKey: *encryptedRoomKey}
		}
	}
	return nil
}

// AccessRequest is the per (room, user) negotiation record.
type AccessRequest struct {
	RoomID    int64         `json:"roomId"`
	UserID    int64         `json:"userId"`
	Status    AccessStatus  `json:"status"`
	Payload   AccessPayload `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the AccessRequest model.
func (a AccessRequest) TableName() string {
	return "room_access_requests"
}

type accessRequestJSON struct {
	RoomID            int64        `json:"roomId"`
	UserID            int64        `json:"userId"`
	Status            AccessStatus `json:"status"`
	CheckerID         *int64       `json:"checkerId,omitempty"`
	EncryptedPassword *string      `json:"encryptedPassword,omitempty"`
	EncryptedRoomKey  *string      `json:"encryptedRoomKey,omitempty"`
	CreatedAt         *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time   `json:"updatedAt,omitempty"`
}

// MarshalJSON flattens the payload into the fields clients read for the
// current status.
func (a AccessRequest) MarshalJSON() ([]byte, error) {
	out := accessRequestJSON{
		RoomID: a.RoomID,
		UserID: a.UserID,
		Status: a.Status,
	}
	if !a.CreatedAt.IsZero() {
		out.CreatedAt = &a.CreatedAt
	}
	if !a.UpdatedAt.IsZero() {
		out.UpdatedAt = &a.UpdatedAt
	}

	switch p := a.Payload.(type) {
	case CheckerLock:
		out.CheckerID = &p.CheckerID
	case PasswordProof:
		out.CheckerID = &p.CheckerID
		out.EncryptedPassword = &p.EncryptedPassword
	case RoomKey:
		out.EncryptedRoomKey = &p.EncryptedRoomKey
	}

	return json.Marshal(out)
}

// UserRoomStatus describes one user as seen by the room status dashboard.
type UserRoomStatus struct {
	UserID    int64        `json:"userId"`
	Login     string       `json:"login"`
	Name      string       `json:"name"`
	Status    AccessStatus `json:"status"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
}

// AskForAccessRequest is the payload of the legacy ask-for-access endpoint.
type AskForAccessRequest struct {
	RoomID int64 `json:"roomId"`
}

// DeclarePasswordCheckRequest names the joiner whose password is checked.
type DeclarePasswordCheckRequest struct {
	UserID int64 `json:"userId"`
}

// SendEncryptedPasswordRequest carries the joiner's password proof.
type SendEncryptedPasswordRequest struct {
	EncryptedPassword string `json:"encryptedPassword"`
}

// SendRoomKeyRequest carries the room key encrypted for UserID.
type SendRoomKeyRequest struct {
	UserID           int64  `json:"userId"`
	EncryptedRoomKey string `json:"encryptedRoomKey"`
}

// RespondRequest is the admin decision on a pending legacy request.
type RespondRequest struct {
	Accept           bool   `json:"accept"`
	EncryptedRoomKey string `json:"encryptedRoomKey,omitempty"`
}
