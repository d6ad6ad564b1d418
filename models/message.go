// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MessageEntry is one message of a send batch as submitted by a client.
// Data and AdditionalData are opaque to the server.
type MessageEntry struct {
	Type           string          `json:"type"`
	Data           json.RawMessage `json:"data"`
	AdditionalData json.RawMessage `json:"additionalData,omitempty"`

	// Timestamp is optional; the server assigns the current time when absent.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// SendMessagesRequest is the batch envelope of the send endpoint.
type SendMessagesRequest struct {
	RoomID   int64          `json:"roomId"`
	Messages []MessageEntry `json:"messages"`

	// Envelope is the request body exactly as received. It is what live
	// subscribers receive.
	Envelope json.RawMessage `json:"-"`
}

// Message is a stored chat message. AuthorID becomes nil once the author is
// removed from the room.
type Message struct {
	MessageID      int64           `json:"id"`
	RoomID         int64           `json:"roomId"`
	AuthorID       *int64          `json:"authorId"`
	Type           string          `json:"type"`
	Data           json.RawMessage `json:"data"`
	AdditionalData json.RawMessage `json:"additionalData,omitempty"`
	CreatedAt      time.Time       `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// RoomMessagesRequest is the payload of request-last and ack-last.
type RoomMessagesRequest struct {
	RoomID        int64 `json:"roomId"`
	LastMessageID int64 `json:"lastMessageId,omitempty"`
}

// SendMessagesResponse reports the identifiers assigned to a batch.
type SendMessagesResponse struct {
	MessageIDs []int64 `json:"messageIds"`
}
