package store

import (
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

const (
	createUser = `INSERT INTO users (login, name, avatar, public_key, password_hash, settings)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, login, name, avatar, public_key, password_hash, settings, created_at;`

	findUserByLogin = `SELECT id, login, name, avatar, public_key, password_hash, settings, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT id, login, name, avatar, public_key, password_hash, settings, created_at
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createRoom = `INSERT INTO rooms (name, description, avatar, password_hash, is_private, is_visible, admin_id, settings)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, name, description, avatar, password_hash, is_private, is_visible, admin_id, settings, created_at;`

	getRoom = `SELECT id, name, description, avatar, password_hash, is_private, is_visible, admin_id, settings, created_at
    FROM rooms
    WHERE id = $1;`

	// deleteRoom and the admin statements report whether the room exists at
	// all next to the id of the affected row, so a missing room and a failed
	// guard are told apart in one round trip.
	deleteRoom = `WITH target AS (
        SELECT id FROM rooms WHERE id = $1
    ), deleted AS (
        DELETE FROM rooms WHERE id = $1 AND admin_id = $2 RETURNING id
    )
    SELECT EXISTS (SELECT 1 FROM target), (SELECT id FROM deleted);`

	claimAdmin = `WITH target AS (
        SELECT id FROM rooms WHERE id = $1
    ), updated AS (
        UPDATE rooms SET admin_id = $2 WHERE id = $1 AND admin_id IS NULL RETURNING id
    )
    SELECT EXISTS (SELECT 1 FROM target), (SELECT id FROM updated);`

	releaseAdmin = `WITH target AS (
        SELECT id FROM rooms WHERE id = $1
    ), updated AS (
        UPDATE rooms SET admin_id = NULL WHERE id = $1 AND admin_id = $2 RETURNING id
    )
    SELECT EXISTS (SELECT 1 FROM target), (SELECT id FROM updated);`

	isMember = `SELECT EXISTS (SELECT 1 FROM room_users WHERE room_id = $1 AND user_id = $2);`

	addMember = `INSERT INTO room_users (room_id, user_id) VALUES ($1, $2)
    ON CONFLICT (room_id, user_id) DO NOTHING;`

	deleteMember = `DELETE FROM room_users WHERE room_id = $1 AND user_id = $2;`

	deleteMemberRequest = `DELETE FROM room_access_requests WHERE room_id = $1 AND user_id = $2;`

	detachMemberMessages = `UPDATE messages SET author_id = NULL WHERE room_id = $1 AND author_id = $2;`

	clearRoomAdmin = `UPDATE rooms SET admin_id = NULL WHERE id = $1 AND admin_id = $2;`

	listMembers = `SELECT u.id, u.login, u.name, u.avatar, u.public_key, r.admin_id IS NOT NULL AND r.admin_id = u.id, m.joined_at
    FROM room_users m
    JOIN users u ON u.id = m.user_id
    JOIN rooms r ON r.id = m.room_id
    WHERE m.room_id = $1
    ORDER BY m.joined_at, u.id;`

	createAccessRequest = `INSERT INTO room_access_requests (room_id, user_id, status, encrypted_room_key)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (room_id, user_id) DO NOTHING
    RETURNING room_id, user_id, status, checker_id, encrypted_password, encrypted_room_key, created_at, updated_at;`

	getAccessRequest = `SELECT room_id, user_id, status, checker_id, encrypted_password, encrypted_room_key, created_at, updated_at
    FROM room_access_requests
    WHERE room_id = $1 AND user_id = $2;`

	deleteAccessRequest = `DELETE FROM room_access_requests WHERE room_id = $1 AND user_id = $2;`

	roomUsersStatus = `SELECT u.id, u.login, u.name, COALESCE(r.status, 'inRoom'), r.updated_at
    FROM users u
    LEFT JOIN room_users m ON m.room_id = $1 AND m.user_id = u.id
    LEFT JOIN room_access_requests r ON r.room_id = $1 AND r.user_id = u.id
    WHERE m.user_id IS NOT NULL OR r.user_id IS NOT NULL
    ORDER BY u.id;`

	// Access request transitions. Each one is a single conditional statement;
	// the result row carries the status written (NULL when the guard failed)
	// and the status the row had before the statement (NULL when no row).

	declarePasswordCheck = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), updated AS (
        UPDATE room_access_requests
        SET status = 'declaredPasswordCheck', checker_id = $3,
            encrypted_password = NULL, encrypted_room_key = NULL, updated_at = now()
        WHERE room_id = $1 AND user_id = $2
          AND (status = 'requestJoin'
            OR (status = 'declaredPasswordCheck' AND updated_at < now() - make_interval(secs => $4)))
        RETURNING status
    )
    SELECT (SELECT status FROM updated), (SELECT status FROM target);`

	resetPasswordCheck = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), updated AS (
        UPDATE room_access_requests
        SET status = 'requestJoin', checker_id = NULL, updated_at = now()
        WHERE room_id = $1 AND user_id = $2 AND status = 'declaredPasswordCheck'
        RETURNING status
    )
    SELECT (SELECT status FROM updated), (SELECT status FROM target);`

	submitEncryptedPassword = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), updated AS (
        UPDATE room_access_requests
        SET status = 'passwordReadyToCheck', encrypted_password = $3, updated_at = now()
        WHERE room_id = $1 AND user_id = $2 AND status = 'declaredPasswordCheck'
        RETURNING status
    )
    SELECT (SELECT status FROM updated), (SELECT status FROM target);`

	rejectPassword = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), deleted AS (
        DELETE FROM room_access_requests
        WHERE room_id = $1 AND user_id = $2 AND status IN ('declaredPasswordCheck', 'passwordReadyToCheck')
        RETURNING status
    )
    SELECT (SELECT status FROM deleted), (SELECT status FROM target);`

	deliverRoomKey = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), updated AS (
        UPDATE room_access_requests
        SET status = 'accepted', checker_id = NULL, encrypted_password = NULL,
            encrypted_room_key = $3, updated_at = now()
        WHERE room_id = $1 AND user_id = $2 AND status IN ('waitingForKey', 'passwordReadyToCheck')
        RETURNING status
    )
    SELECT (SELECT status FROM updated), (SELECT status FROM target);`

	requestKeyAgain = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), updated AS (
        UPDATE room_access_requests
        SET status = 'waitingForKey', encrypted_room_key = NULL, updated_at = now()
        WHERE room_id = $1 AND user_id = $2 AND status = 'accepted'
        RETURNING status
    )
    SELECT (SELECT status FROM updated), (SELECT status FROM target);`

	respondToRequest = `WITH target AS (
        SELECT status FROM room_access_requests WHERE room_id = $1 AND user_id = $2
    ), updated AS (
        UPDATE room_access_requests
        SET status = $3, encrypted_room_key = $4, updated_at = now()
        WHERE room_id = $1 AND user_id = $2 AND status = 'pending'
        RETURNING status
    )
    SELECT (SELECT status FROM updated), (SELECT status FROM target);`

	lockRoomMessages = `SELECT pg_advisory_xact_lock($1);`

	appendLogEntry = `INSERT INTO logs (level, event, details) VALUES ($1, $2, $3);`
)

var errEmptyBatch = errors.New("empty message batch")

var (
	userColumns = []string{"id", "login", "name", "avatar", "public_key", "password_hash", "settings", "created_at"}

	roomColumns = []string{"id", "name", "description", "avatar", "password_hash", "is_private", "is_visible", "admin_id", "settings", "created_at"}

	accessRequestColumns = []string{"room_id", "user_id", "status", "checker_id", "encrypted_password", "encrypted_room_key", "created_at", "updated_at"}

	messageColumns = []string{"id", "room_id", "author_id", "created_at", "type", "data", "additional_data"}
)

// buildUpdateUserQuery builds the UPDATE for the non-nil fields of update.
// It returns RETURNING the full row so the caller gets the stored profile.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}
	if update.PublicKey != nil {
		builder = builder.Set("public_key", *update.PublicKey)
	}
	if update.Settings != nil {
		builder = builder.Set("settings", jsonArg(*update.Settings))
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	return builder.
		Where(sq.Eq{"id": update.UserID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// buildUpdateRoomQuery builds the UPDATE for the non-nil fields of update.
//
// When adminGuard is set the row is only updated while the room is adminless
// or administered by *adminGuard.
func buildUpdateRoomQuery(update models.RoomUpdate, adminGuard *int64) (string, []any, error) {
	builder := psql.Update("rooms")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}
	if update.Settings != nil {
		builder = builder.Set("settings", jsonArg(*update.Settings))
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", nullString(*update.PasswordHash))
	}
	if update.IsPrivate != nil {
		builder = builder.Set("is_private", *update.IsPrivate)
	}
	if update.IsVisible != nil {
		builder = builder.Set("is_visible", *update.IsVisible)
	}

	builder = builder.Where(sq.Eq{"id": update.RoomID})
	if adminGuard != nil {
		builder = builder.Where(sq.Or{sq.Eq{"admin_id": nil}, sq.Eq{"admin_id": *adminGuard}})
	}

	return builder.Suffix("RETURNING " + strings.Join(roomColumns, ", ")).ToSql()
}

// buildListVisibleRoomsQuery lists rooms shown to userID: every visible room
// plus the hidden ones userID is a member of.
func buildListVisibleRoomsQuery(userID int64) (string, []any, error) {
	membership := sq.Select("room_id").From("room_users").Where(sq.Eq{"user_id": userID})
	membershipSQL, membershipArgs, err := membership.ToSql()
	if err != nil {
		return "", nil, err
	}

	return psql.Select(roomColumns...).
		From("rooms").
		Where(sq.Or{
			sq.Eq{"is_visible": true},
			sq.Expr("id IN ("+membershipSQL+")", membershipArgs...),
		}).
		OrderBy("id").
		ToSql()
}

// buildListUserRoomsQuery lists the rooms userID is a member of.
func buildListUserRoomsQuery(userID int64) (string, []any, error) {
	return psql.Select(prefixColumns("r", roomColumns)...).
		From("rooms r").
		Join("room_users m ON m.room_id = r.id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("r.id").
		ToSql()
}

// buildListRoomRequestsQuery lists the access requests of a room, optionally
// filtered by status.
func buildListRoomRequestsQuery(roomID int64, statuses []models.AccessStatus) (string, []any, error) {
	builder := psql.Select(accessRequestColumns...).
		From("room_access_requests").
		Where(sq.Eq{"room_id": roomID})

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		builder = builder.Where(sq.Eq{"status": values})
	}

	return builder.OrderBy("updated_at", "user_id").ToSql()
}

// buildInsertMessagesQuery builds one multi-row INSERT for a whole batch so
// the batch gets contiguous ids in submitted order.
func buildInsertMessagesQuery(roomID, authorID int64, entries []models.MessageEntry, now time.Time) (string, []any, error) {
	if len(entries) == 0 {
		return "", nil, errEmptyBatch
	}

	builder := psql.Insert("messages").
		Columns("room_id", "author_id", "created_at", "type", "data", "additional_data")

	for _, entry := range entries {
		createdAt := now
		if entry.Timestamp != nil {
			createdAt = *entry.Timestamp
		}
		builder = builder.Values(roomID, authorID, createdAt, entry.Type, jsonArg(entry.Data), jsonArg(entry.AdditionalData))
	}

	return builder.Suffix("RETURNING id").ToSql()
}

// buildLastMessagesQuery selects the newest limit messages of a room and
// returns them oldest first.
func buildLastMessagesQuery(roomID int64, limit int) (string, []any, error) {
	// nested builders must keep '?' placeholders; the outer one renumbers them
	recent := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("id DESC").
		Limit(uint64(limit))

	return psql.Select(messageColumns...).
		FromSelect(recent, "recent").
		OrderBy("id ASC").
		ToSql()
}

func prefixColumns(alias string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, column := range columns {
		out = append(out, alias+"."+column)
	}
	return out
}

// jsonArg passes a JSON document as text so the driver does not send it as
// bytea; an empty document is stored as NULL.
func jsonArg(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
