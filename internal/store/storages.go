package store

import "github.com/MKhiriev/go-cipher-rooms/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository          UserRepository
	RoomRepository          RoomRepository
	MembershipRepository    MembershipRepository
	AccessRequestRepository AccessRequestRepository
	MessageRepository       MessageRepository
	AuditLogRepository      AuditLogRepository
}

// NewStorages builds all PostgreSQL repositories over a single connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		RoomRepository:          NewRoomRepository(db, log),
		MembershipRepository:    NewMembershipRepository(db, log),
		AccessRequestRepository: NewAccessRequestRepository(db, log),
		MessageRepository:       NewMessageRepository(db, log),
		AuditLogRepository:      NewAuditLogRepository(db, log),
	}
}
