package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

type auditService struct {
	auditLogRepository store.AuditLogRepository

	logger *logger.Logger
}

func NewAuditService(auditLogRepository store.AuditLogRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditLogRepository: auditLogRepository,
		logger:             logger,
	}
}

// Record appends an info level entry. Marshalling and storage failures are
// logged and swallowed so that audit problems never fail a request.
func (a *auditService) Record(ctx context.Context, event string, details map[string]any) {
	log := logger.FromContext(ctx)

	var raw json.RawMessage
	if len(details) > 0 {
		encoded, err := json.Marshal(details)
		if err != nil {
			log.Err(err).Str("func", "*auditService.Record").Str("event", event).Msg("error encoding audit details")
		} else {
			raw = encoded
		}
	}

	entry := models.LogEntry{Level: "info", Event: event, Details: raw}
	if err := a.auditLogRepository.AppendLog(ctx, entry); err != nil {
		log.Err(err).Str("func", "*auditService.Record").Str("event", event).Msg("error recording audit event")
	}
}
