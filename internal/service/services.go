package service

import (
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
)

type Services struct {
	AuthService          AuthService
	UserService          UserService
	RoomService          RoomService
	AccessRequestService AccessRequestService
	MessageService       MessageService
	AuditService         AuditService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, pinger Pinger, h *hub.Hub, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, pinger, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	audit := NewAuditService(storages.AuditLogRepository, logger)

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:          NewUserService(storages.UserRepository, audit, cfg.App, logger),
		RoomService:          NewRoomService(storages.RoomRepository, storages.MembershipRepository, audit, cfg.App, logger),
		AccessRequestService: NewAccessRequestService(storages, audit, cfg.App, logger),
		MessageService:       NewMessageService(storages.MessageRepository, storages.MembershipRepository, h, cfg.App, logger),
		AuditService:         audit,
		AppInfoService:       appInfoService,
	}, nil
}
