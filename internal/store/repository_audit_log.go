package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// auditLogRepository writes append-only records to the "logs" table.
type auditLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditLogRepository constructs an [AuditLogRepository].
func NewAuditLogRepository(db *DB, logger *logger.Logger) AuditLogRepository {
	logger.Debug().Msg("creating audit log repository")
	return &auditLogRepository{
		db:     db,
		logger: logger,
	}
}

func (a *auditLogRepository) AppendLog(ctx context.Context, entry models.LogEntry) error {
	level := strings.ToLower(entry.Level)
	if level == "" {
		level = "info"
	}

	if _, err := a.db.ExecContext(ctx, appendLogEntry, level, entry.Event, jsonArg(entry.Details)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "auditLogRepository.AppendLog").Str("event", entry.Event).Msg("error appending audit log entry")
		return a.db.wrapDBError(ErrExecutingStatement, err)
	}

	return nil
}
