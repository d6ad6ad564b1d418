package service

import (
	"context"

	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, request models.ProfileUpdateRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID int64, password string) error
	GetPublicKey(ctx context.Context, userID int64) (models.PublicKeyResponse, error)
}

// RoomService manages room lifecycle and membership.
//
// Every method takes the acting user first. Authorization is checked against
// the current state in storage; nothing is cached between calls.
type RoomService interface {
	CreateRoom(ctx context.Context, userID int64, request models.CreateRoomRequest) (models.Room, error)
	GetRoom(ctx context.Context, userID, roomID int64) (models.Room, error)
	ListVisibleRooms(ctx context.Context, userID int64) ([]models.Room, error)
	ListMyRooms(ctx context.Context, userID int64) ([]models.Room, error)
	UpdateRoom(ctx context.Context, userID int64, update models.RoomUpdate) (models.Room, error)
	DeleteRoom(ctx context.Context, userID, roomID int64) error
	ListMembers(ctx context.Context, userID, roomID int64) ([]models.RoomMember, error)

	AddUser(ctx context.Context, adminID, roomID, userID int64) error
	RemoveUser(ctx context.Context, adminID, roomID, userID int64) error
	Leave(ctx context.Context, userID, roomID int64) error
	ClaimAdmin(ctx context.Context, userID, roomID int64) error
	ReleaseAdmin(ctx context.Context, userID, roomID int64) error
	Join(ctx context.Context, userID, roomID int64) (models.JoinResult, error)
}

// AccessRequestService drives the key exchange protocol between a joiner and
// the members of a room. The server only relays ciphertexts.
type AccessRequestService interface {
	AskForAccess(ctx context.Context, userID, roomID int64) (models.AccessRequest, error)
	RequestJoinByPassword(ctx context.Context, userID, roomID int64) (models.AccessRequest, error)

	DeclarePasswordCheck(ctx context.Context, checkerID, roomID, userID int64) error
	ResetPasswordCheck(ctx context.Context, memberID, roomID, userID int64) error
	SendEncryptedPassword(ctx context.Context, userID, roomID int64, encryptedPassword string) error
	RejectPassword(ctx context.Context, memberID, roomID, userID int64) error
	SendRoomKey(ctx context.Context, memberID, roomID int64, request models.SendRoomKeyRequest) error
	RequestKeyAgain(ctx context.Context, userID, roomID int64) error
	RespondToRequest(ctx context.Context, adminID, roomID, userID int64, request models.RespondRequest) error

	GetMyRequest(ctx context.Context, userID, roomID int64) (models.AccessRequest, error)
	CancelMyRequest(ctx context.Context, userID, roomID int64) error
	ListRoomRequests(ctx context.Context, memberID, roomID int64) ([]models.AccessRequest, error)
	RoomUsersStatus(ctx context.Context, memberID, roomID int64) ([]models.UserRoomStatus, error)
}

// MessageService appends messages to the durable log and relays them to live
// subscribers.
type MessageService interface {
	Send(ctx context.Context, userID int64, request models.SendMessagesRequest) (models.SendMessagesResponse, error)
	RequestLast(ctx context.Context, userID int64, request models.RoomMessagesRequest) ([]models.Message, error)
	AckLast(ctx context.Context, userID int64, request models.RoomMessagesRequest) error

	// Subscribe checks membership once and registers a live subscriber.
	// Callers must release it with Unsubscribe.
	Subscribe(ctx context.Context, userID, roomID int64) (*hub.Subscriber, error)
	Unsubscribe(subscriber *hub.Subscriber)
}

// AuditService records audit events. Recording never fails the caller.
type AuditService interface {
	Record(ctx context.Context, event string, details map[string]any)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}
