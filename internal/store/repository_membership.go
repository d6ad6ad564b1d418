package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/jackc/pgerrcode"
)

// membershipRepository is the PostgreSQL-backed implementation of
// [MembershipRepository] over the "room_users" table.
type membershipRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMembershipRepository constructs a [MembershipRepository].
func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		db:     db,
		logger: logger,
	}
}

func (m *membershipRepository) IsMember(ctx context.Context, roomID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var member bool
	if err := m.db.QueryRowContext(ctx, isMember, roomID, userID).Scan(&member); err != nil {
		log.Err(err).Str("func", "membershipRepository.IsMember").Int64("room_id", roomID).Int64("user_id", userID).Msg("error checking membership")
		return false, m.db.wrapDBError(ErrExecutingQuery, err)
	}

	return member, nil
}

func (m *membershipRepository) AddMember(ctx context.Context, roomID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := m.db.ExecContext(ctx, addMember, roomID, userID)
	if err != nil {
		log.Err(err).Str("func", "membershipRepository.AddMember").Int64("room_id", roomID).Int64("user_id", userID).Msg("error adding member")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return false, ErrReferencedEntityNotFound
		}
		return false, m.db.wrapDBError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// RemoveMember runs the whole departure in one transaction so a crash never
// leaves a non-member holding the admin reference or an access request.
func (m *membershipRepository) RemoveMember(ctx context.Context, roomID, userID int64) (bool, error) {
	log := logger.FromContext(ctx).With().Str("func", "membershipRepository.RemoveMember").
		Int64("room_id", roomID).Int64("user_id", userID).Logger()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return false, m.db.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteMember, roomID, userID)
	if err != nil {
		log.Err(err).Msg("error deleting membership")
		return false, m.db.wrapDBError(ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return false, ErrMembershipNotFound
	}

	if _, err = tx.ExecContext(ctx, deleteMemberRequest, roomID, userID); err != nil {
		log.Err(err).Msg("error deleting access request of member")
		return false, m.db.wrapDBError(ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, detachMemberMessages, roomID, userID); err != nil {
		log.Err(err).Msg("error detaching member messages")
		return false, m.db.wrapDBError(ErrExecutingStatement, err)
	}

	result, err = tx.ExecContext(ctx, clearRoomAdmin, roomID, userID)
	if err != nil {
		log.Err(err).Msg("error clearing room admin")
		return false, m.db.wrapDBError(ErrExecutingStatement, err)
	}
	wasAdmin, _ := result.RowsAffected()

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return false, m.db.wrapDBError(ErrCommitingTransaction, err)
	}

	return wasAdmin > 0, nil
}

func (m *membershipRepository) ListMembers(ctx context.Context, roomID int64) ([]models.RoomMember, error) {
	log := logger.FromContext(ctx)

	rows, err := m.db.QueryContext(ctx, listMembers, roomID)
	if err != nil {
		log.Err(err).Str("func", "membershipRepository.ListMembers").Int64("room_id", roomID).Msg("error listing members")
		return nil, m.db.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.RoomMember, 0)
	for rows.Next() {
		var (
			member    models.RoomMember
			publicKey sql.NullString
		)
		if err = rows.Scan(&member.UserID, &member.Login, &member.Name, &member.Avatar, &publicKey, &member.IsAdmin, &member.JoinedAt); err != nil {
			log.Err(err).Str("func", "membershipRepository.ListMembers").Msg("error scanning member row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		member.PublicKey = publicKey.String
		members = append(members, member)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}
