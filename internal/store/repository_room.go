package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/jackc/pgerrcode"
)

// roomRepository is the PostgreSQL-backed implementation of [RoomRepository].
type roomRepository struct {
	logger *logger.Logger
	db     *DB
}

// errNoCreator is returned when CreateRoom receives a room without admin.
var errNoCreator = errors.New("room has no creator")

// NewRoomRepository constructs a [RoomRepository] backed by the provided
// database connection and logger.
func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	logger.Debug().Msg("creating room repository")
	return &roomRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRoom inserts the room, makes its creator (room.AdminID) the first
// member and, for password rooms, seeds the creator's accepted access request
// holding creatorKey. All three writes share one transaction.
func (r *roomRepository) CreateRoom(ctx context.Context, room models.Room, creatorKey string) (models.Room, error) {
	log := logger.FromContext(ctx)

	if room.AdminID == nil {
		return models.Room{}, errNoCreator
	}
	creatorID := *room.AdminID

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "roomRepository.CreateRoom").Msg("failed to begin transaction")
		return models.Room{}, r.db.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createRoom,
		room.Name, room.Description, room.Avatar, nullString(room.PasswordHash),
		room.IsPrivate, room.IsVisible, creatorID, jsonArg(room.Settings))
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "roomRepository.CreateRoom").Msg("error inserting room")
		return models.Room{}, r.mapWriteError(err)
	}

	created, err := scanRoom(row)
	if err != nil {
		log.Err(err).Str("func", "roomRepository.CreateRoom").Msg("error scanning created room")
		if postgresError(err) != "" {
			return models.Room{}, r.mapWriteError(err)
		}
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if _, err = tx.ExecContext(ctx, addMember, created.RoomID, creatorID); err != nil {
		log.Err(err).Str("func", "roomRepository.CreateRoom").Int64("room_id", created.RoomID).Msg("error adding creator as member")
		return models.Room{}, r.mapWriteError(err)
	}

	if created.HasPassword {
		_, err = tx.ExecContext(ctx, createAccessRequest, created.RoomID, creatorID, models.AccessStatusAccepted, nullString(creatorKey))
		if err != nil {
			log.Err(err).Str("func", "roomRepository.CreateRoom").Int64("room_id", created.RoomID).Msg("error seeding creator access request")
			return models.Room{}, r.mapWriteError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "roomRepository.CreateRoom").Msg("failed to commit transaction")
		return models.Room{}, r.db.wrapDBError(ErrCommitingTransaction, err)
	}

	return created, nil
}

// GetRoom returns a room by id or [ErrRoomNotFound].
func (r *roomRepository) GetRoom(ctx context.Context, roomID int64) (models.Room, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getRoom, roomID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "roomRepository.GetRoom").Int64("room_id", roomID).Msg("error querying room")
		return models.Room{}, r.db.wrapDBError(ErrExecutingQuery, err)
	}

	room, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "roomRepository.GetRoom").Int64("room_id", roomID).Msg("error scanning room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return room, nil
}

// ListVisibleRooms returns every visible room plus the hidden rooms userID
// belongs to.
func (r *roomRepository) ListVisibleRooms(ctx context.Context, userID int64) ([]models.Room, error) {
	query, args, err := buildListVisibleRoomsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.listRooms(ctx, "roomRepository.ListVisibleRooms", query, args)
}

// ListUserRooms returns the rooms userID is a member of.
func (r *roomRepository) ListUserRooms(ctx context.Context, userID int64) ([]models.Room, error) {
	query, args, err := buildListUserRoomsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.listRooms(ctx, "roomRepository.ListUserRooms", query, args)
}

func (r *roomRepository) listRooms(ctx context.Context, funcName, query string, args []any) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing rooms")
		return nil, r.db.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		room, scanErr := scanRoom(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("error scanning room row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating room rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rooms, nil
}

// UpdateRoom applies the non-nil fields of update.
//
// With a non-nil adminGuard the statement only matches while the room is
// adminless or administered by *adminGuard; when it does not match but the
// room exists, [ErrAdminMismatch] is returned.
func (r *roomRepository) UpdateRoom(ctx context.Context, update models.RoomUpdate, adminGuard *int64) (models.Room, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetRoom(ctx, update.RoomID)
	}

	query, args, err := buildUpdateRoomQuery(update, adminGuard)
	if err != nil {
		log.Err(err).Str("func", "roomRepository.UpdateRoom").Msg("error building update query")
		return models.Room{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "roomRepository.UpdateRoom").Int64("room_id", update.RoomID).Msg("error updating room")
		return models.Room{}, r.db.wrapDBError(ErrExecutingQuery, err)
	}

	updated, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		if adminGuard == nil {
			return models.Room{}, ErrRoomNotFound
		}
		// the guard or the id did not match; tell them apart
		if _, getErr := r.GetRoom(ctx, update.RoomID); getErr != nil {
			return models.Room{}, getErr
		}
		return models.Room{}, ErrAdminMismatch
	}
	if err != nil {
		log.Err(err).Str("func", "roomRepository.UpdateRoom").Int64("room_id", update.RoomID).Msg("error scanning updated room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteRoom deletes a room administered by adminID. Memberships, messages
// and access requests cascade.
func (r *roomRepository) DeleteRoom(ctx context.Context, roomID, adminID int64) error {
	return r.guardedRoomWrite(ctx, "roomRepository.DeleteRoom", deleteRoom, roomID, adminID, ErrAdminMismatch)
}

// ClaimAdmin makes userID the admin of an adminless room.
func (r *roomRepository) ClaimAdmin(ctx context.Context, roomID, userID int64) error {
	return r.guardedRoomWrite(ctx, "roomRepository.ClaimAdmin", claimAdmin, roomID, userID, ErrAdminAlreadySet)
}

// ReleaseAdmin clears the admin reference if userID currently holds it.
func (r *roomRepository) ReleaseAdmin(ctx context.Context, roomID, userID int64) error {
	return r.guardedRoomWrite(ctx, "roomRepository.ReleaseAdmin", releaseAdmin, roomID, userID, ErrAdminMismatch)
}

// guardedRoomWrite runs one of the (exists, affected id) CTE statements and
// maps "room exists but the guard failed" to guardErr.
func (r *roomRepository) guardedRoomWrite(ctx context.Context, funcName, query string, roomID, userID int64, guardErr error) error {
	log := logger.FromContext(ctx)

	var (
		exists     bool
		affectedID sql.NullInt64
	)

	err := r.db.QueryRowContext(ctx, query, roomID, userID).Scan(&exists, &affectedID)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("room_id", roomID).Int64("user_id", userID).Msg("error executing guarded room write")
		return r.db.wrapDBError(ErrExecutingQuery, err)
	}

	switch {
	case !exists:
		return ErrRoomNotFound
	case !affectedID.Valid:
		log.Debug().Str("func", funcName).Int64("room_id", roomID).Int64("user_id", userID).Msg("guard rejected room write")
		return guardErr
	}

	return nil
}

func (r *roomRepository) mapWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedEntityNotFound
	default:
		return r.db.wrapDBError(ErrExecutingStatement, err)
	}
}

func scanRoom(row rowScanner) (models.Room, error) {
	var (
		room         models.Room
		passwordHash sql.NullString
		adminID      sql.NullInt64
		settings     []byte
	)

	err := row.Scan(&room.RoomID, &room.Name, &room.Description, &room.Avatar, &passwordHash,
		&room.IsPrivate, &room.IsVisible, &adminID, &settings, &room.CreatedAt)
	if err != nil {
		return models.Room{}, err
	}

	room.PasswordHash = passwordHash.String
	room.HasPassword = passwordHash.Valid && passwordHash.String != ""
	if adminID.Valid {
		id := adminID.Int64
		room.AdminID = &id
	}
	if len(settings) > 0 {
		room.Settings = json.RawMessage(settings)
	}

	return room, nil
}
