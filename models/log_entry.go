// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Audit event names written to the logs table.
const (
	EventRoomCreated    = "room.created"
	EventRoomDeleted    = "room.deleted"
	EventMemberRemoved  = "member.removed"
	EventMemberLeft     = "member.left"
	EventAccessGranted  = "access.granted"
	EventAccessRejected = "access.rejected"
	EventAdminClaimed   = "admin.claimed"
	EventAdminReleased  = "admin.released"
	EventUserDeleted    = "user.deleted"
)

// LogEntry is an append-only audit record.
type LogEntry struct {
	LogID     int64           `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Level     string          `json:"level"`
	Event     string          `json:"event"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// TableName returns the name of the database table
// associated with the LogEntry model.
func (l LogEntry) TableName() string {
	return "logs"
}
