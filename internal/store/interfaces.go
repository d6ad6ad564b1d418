package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// RoomRepository persists rooms and their admin reference.
type RoomRepository interface {
	// CreateRoom inserts the room and the creator's membership in one
	// transaction. For password rooms it also seeds an accepted access
	// request carrying creatorKey.
	CreateRoom(ctx context.Context, room models.Room, creatorKey string) (models.Room, error)
	GetRoom(ctx context.Context, roomID int64) (models.Room, error)
	ListVisibleRooms(ctx context.Context, userID int64) ([]models.Room, error)
	ListUserRooms(ctx context.Context, userID int64) ([]models.Room, error)
	// UpdateRoom applies a partial update. A non-nil adminGuard restricts the
	// write to a room that is adminless or administered by *adminGuard.
	UpdateRoom(ctx context.Context, update models.RoomUpdate, adminGuard *int64) (models.Room, error)
	DeleteRoom(ctx context.Context, roomID, adminID int64) error
	ClaimAdmin(ctx context.Context, roomID, userID int64) error
	ReleaseAdmin(ctx context.Context, roomID, userID int64) error
}

// MembershipRepository persists the room × user membership relation.
type MembershipRepository interface {
	IsMember(ctx context.Context, roomID, userID int64) (bool, error)
	// AddMember reports false when the user already was a member.
	AddMember(ctx context.Context, roomID, userID int64) (bool, error)
	// RemoveMember deletes the membership and access request of the pair,
	// detaches the user's messages in the room and clears the admin reference
	// if the user held it. It reports whether the user was the admin.
	RemoveMember(ctx context.Context, roomID, userID int64) (bool, error)
	ListMembers(ctx context.Context, roomID int64) ([]models.RoomMember, error)
}

// AccessRequestRepository persists access requests and runs their
// conditional state transitions.
type AccessRequestRepository interface {
	CreateRequest(ctx context.Context, roomID, userID int64, status models.AccessStatus) (models.AccessRequest, error)
	GetRequest(ctx context.Context, roomID, userID int64) (models.AccessRequest, error)
	ListRoomRequests(ctx context.Context, roomID int64, statuses []models.AccessStatus) ([]models.AccessRequest, error)
	RoomUsersStatus(ctx context.Context, roomID int64) ([]models.UserRoomStatus, error)
	DeleteRequest(ctx context.Context, roomID, userID int64) (bool, error)

	DeclarePasswordCheck(ctx context.Context, roomID, userID, checkerID int64, lockTimeout time.Duration) error
	ResetPasswordCheck(ctx context.Context, roomID, userID int64) error
	SubmitEncryptedPassword(ctx context.Context, roomID, userID int64, encryptedPassword string) error
	RejectPassword(ctx context.Context, roomID, userID int64) error
	DeliverRoomKey(ctx context.Context, roomID, userID int64, encryptedRoomKey string) error
	RequestKeyAgain(ctx context.Context, roomID, userID int64) error
	Respond(ctx context.Context, roomID, userID int64, accept bool, encryptedRoomKey string) error
}

// MessageRepository persists the append-only message log.
type MessageRepository interface {
	AppendMessages(ctx context.Context, roomID, authorID int64, entries []models.MessageEntry) ([]int64, error)
	LastMessages(ctx context.Context, roomID int64, limit int) ([]models.Message, error)
}

// AuditLogRepository appends records to the audit log.
type AuditLogRepository interface {
	AppendLog(ctx context.Context, entry models.LogEntry) error
}
