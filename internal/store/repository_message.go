package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/jackc/pgerrcode"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository] over the append-only "messages" table.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewMessageRepository constructs a [MessageRepository].
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// AppendMessages stores a batch attributed to authorID and returns the ids
// assigned, in submitted order.
//
// Appends to one room are serialized by a transaction-scoped advisory lock
// keyed by the room id, so batches of concurrent senders never interleave.
func (m *messageRepository) AppendMessages(ctx context.Context, roomID, authorID int64, entries []models.MessageEntry) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMessagesQuery(roomID, authorID, entries, m.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "messageRepository.AppendMessages").Msg("error building insert query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.AppendMessages").Msg("failed to begin transaction")
		return nil, m.db.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockRoomMessages, roomID); err != nil {
		log.Err(err).Str("func", "messageRepository.AppendMessages").Int64("room_id", roomID).Msg("error locking room messages")
		return nil, m.db.wrapDBError(ErrExecutingStatement, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.AppendMessages").Int64("room_id", roomID).Msg("error inserting messages")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return nil, ErrReferencedEntityNotFound
		}
		return nil, m.db.wrapDBError(ErrExecutingQuery, err)
	}

	ids := make([]int64, 0, len(entries))
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		log.Err(err).Str("func", "messageRepository.AppendMessages").Msg("error reading inserted ids")
		return nil, m.db.wrapDBError(ErrScanningRows, err)
	}
	rows.Close()

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "messageRepository.AppendMessages").Msg("failed to commit transaction")
		return nil, m.db.wrapDBError(ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "messageRepository.AppendMessages").Int64("room_id", roomID).Int("count", len(ids)).Msg("messages appended")

	return ids, nil
}

// LastMessages returns the newest limit messages of a room, oldest first.
func (m *messageRepository) LastMessages(ctx context.Context, roomID int64, limit int) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastMessagesQuery(roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.LastMessages").Int64("room_id", roomID).Msg("error querying messages")
		return nil, m.db.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var (
			message        models.Message
			authorID       sql.NullInt64
			data           []byte
			additionalData []byte
		)
		if err = rows.Scan(&message.MessageID, &message.RoomID, &authorID, &message.CreatedAt, &message.Type, &data, &additionalData); err != nil {
			log.Err(err).Str("func", "messageRepository.LastMessages").Msg("error scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		message.AuthorID = nullInt64Ptr(authorID)
		message.Data = json.RawMessage(data)
		if len(additionalData) > 0 {
			message.AdditionalData = json.RawMessage(additionalData)
		}
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
