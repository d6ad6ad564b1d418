package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/jackc/pgerrcode"
)

// accessRequestRepository is the PostgreSQL-backed implementation of
// [AccessRequestRepository] over the "room_access_requests" table.
//
// Every transition is a single conditional statement. The store resolves
// concurrent transitions on one (room, user) pair: of two racing callers
// only one matches the expected status.
type accessRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

// queryRower is satisfied by *DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// transition is what a conditional transition statement observed: the
// status it wrote (invalid when the guard failed) and the status the row
// had before (invalid when there was no row).
type transition struct {
	written  sql.NullString
	previous sql.NullString
}

// err maps the observation onto the store sentinels. With lockable set, a
// row found in requestJoin or declaredPasswordCheck that did not match means
// another member holds the password-check lock.
func (t transition) err(lockable bool) error {
	switch {
	case t.written.Valid:
		return nil
	case !t.previous.Valid:
		return ErrAccessRequestNotFound
	case lockable && (t.previous.String == string(models.AccessStatusDeclaredPasswordCheck) ||
		t.previous.String == string(models.AccessStatusRequestJoin)):
		return ErrPasswordCheckLocked
	default:
		return fmt.Errorf("%w: current status %s", ErrInvalidAccessRequestState, t.previous.String)
	}
}

// NewAccessRequestRepository constructs an [AccessRequestRepository].
func NewAccessRequestRepository(db *DB, logger *logger.Logger) AccessRequestRepository {
	logger.Debug().Msg("creating access request repository")
	return &accessRequestRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRequest inserts a new request in status. It fails with
// [ErrAccessRequestExists] when the pair already has a row of any status.
func (a *accessRequestRepository) CreateRequest(ctx context.Context, roomID, userID int64, status models.AccessStatus) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	row := a.db.QueryRowContext(ctx, createAccessRequest, roomID, userID, status, nil)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "accessRequestRepository.CreateRequest").Int64("room_id", roomID).Int64("user_id", userID).Msg("error inserting access request")
		return models.AccessRequest{}, a.mapWriteError(err)
	}

	request, err := scanAccessRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		// ON CONFLICT DO NOTHING returned no row
		return models.AccessRequest{}, ErrAccessRequestExists
	}
	if err != nil {
		log.Err(err).Str("func", "accessRequestRepository.CreateRequest").Msg("error scanning access request")
		if postgresError(err) != "" {
			return models.AccessRequest{}, a.mapWriteError(err)
		}
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return request, nil
}

func (a *accessRequestRepository) GetRequest(ctx context.Context, roomID, userID int64) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	row := a.db.QueryRowContext(ctx, getAccessRequest, roomID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "accessRequestRepository.GetRequest").Msg("error querying access request")
		return models.AccessRequest{}, a.db.wrapDBError(ErrExecutingQuery, err)
	}

	request, err := scanAccessRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccessRequest{}, ErrAccessRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accessRequestRepository.GetRequest").Msg("error scanning access request")
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return request, nil
}

// ListRoomRequests lists the requests of a room. An empty statuses slice
// lists every row.
func (a *accessRequestRepository) ListRoomRequests(ctx context.Context, roomID int64, statuses []models.AccessStatus) ([]models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRoomRequestsQuery(roomID, statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accessRequestRepository.ListRoomRequests").Int64("room_id", roomID).Msg("error listing access requests")
		return nil, a.db.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.AccessRequest, 0)
	for rows.Next() {
		request, scanErr := scanAccessRequest(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accessRequestRepository.ListRoomRequests").Msg("error scanning access request row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		requests = append(requests, request)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

// RoomUsersStatus lists every member and every requester of a room. Members
// without a request row are reported as inRoom.
func (a *accessRequestRepository) RoomUsersStatus(ctx context.Context, roomID int64) ([]models.UserRoomStatus, error) {
	log := logger.FromContext(ctx)

	rows, err := a.db.QueryContext(ctx, roomUsersStatus, roomID)
	if err != nil {
		log.Err(err).Str("func", "accessRequestRepository.RoomUsersStatus").Int64("room_id", roomID).Msg("error querying room users status")
		return nil, a.db.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	statuses := make([]models.UserRoomStatus, 0)
	for rows.Next() {
		var (
			status    models.UserRoomStatus
			updatedAt sql.NullTime
		)
		if err = rows.Scan(&status.UserID, &status.Login, &status.Name, &status.Status, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			status.UpdatedAt = &t
		}
		statuses = append(statuses, status)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return statuses, nil
}

// DeleteRequest removes the row of the pair, reporting whether one existed.
func (a *accessRequestRepository) DeleteRequest(ctx context.Context, roomID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := a.db.ExecContext(ctx, deleteAccessRequest, roomID, userID)
	if err != nil {
		log.Err(err).Str("func", "accessRequestRepository.DeleteRequest").Msg("error deleting access request")
		return false, a.db.wrapDBError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// DeclarePasswordCheck moves requestJoin to declaredPasswordCheck with
// checkerID as lock holder. A declaration older than lockTimeout is taken
// over; a fresher one yields [ErrPasswordCheckLocked].
func (a *accessRequestRepository) DeclarePasswordCheck(ctx context.Context, roomID, userID, checkerID int64, lockTimeout time.Duration) error {
	t, err := a.runTransition(ctx, a.db, "accessRequestRepository.DeclarePasswordCheck", declarePasswordCheck,
		roomID, userID, checkerID, lockTimeout.Seconds())
	if err != nil {
		return err
	}
	return t.err(true)
}

// ResetPasswordCheck moves declaredPasswordCheck back to requestJoin.
func (a *accessRequestRepository) ResetPasswordCheck(ctx context.Context, roomID, userID int64) error {
	t, err := a.runTransition(ctx, a.db, "accessRequestRepository.ResetPasswordCheck", resetPasswordCheck, roomID, userID)
	if err != nil {
		return err
	}
	return t.err(false)
}

// SubmitEncryptedPassword moves declaredPasswordCheck to passwordReadyToCheck
// storing the joiner's proof next to the lock holder.
func (a *accessRequestRepository) SubmitEncryptedPassword(ctx context.Context, roomID, userID int64, encryptedPassword string) error {
	t, err := a.runTransition(ctx, a.db, "accessRequestRepository.SubmitEncryptedPassword", submitEncryptedPassword,
		roomID, userID, encryptedPassword)
	if err != nil {
		return err
	}
	return t.err(false)
}

// RejectPassword deletes a row under password check so the joiner can
// restart from requestJoin.
func (a *accessRequestRepository) RejectPassword(ctx context.Context, roomID, userID int64) error {
	t, err := a.runTransition(ctx, a.db, "accessRequestRepository.RejectPassword", rejectPassword, roomID, userID)
	if err != nil {
		return err
	}
	return t.err(false)
}

// DeliverRoomKey accepts a row in waitingForKey or passwordReadyToCheck,
// stores the encrypted room key and inserts the membership.
func (a *accessRequestRepository) DeliverRoomKey(ctx context.Context, roomID, userID int64, encryptedRoomKey string) error {
	return a.transitionWithMembership(ctx, "accessRequestRepository.DeliverRoomKey", deliverRoomKey,
		roomID, userID, encryptedRoomKey)
}

// RequestKeyAgain moves accepted back to waitingForKey, dropping the stored
// key. Membership is kept (and restored if missing).
func (a *accessRequestRepository) RequestKeyAgain(ctx context.Context, roomID, userID int64) error {
	return a.transitionWithMembership(ctx, "accessRequestRepository.RequestKeyAgain", requestKeyAgain, roomID, userID)
}

// Respond resolves a pending request. Accepting stores the optional key and
// inserts the membership; rejecting leaves a rejected row.
func (a *accessRequestRepository) Respond(ctx context.Context, roomID, userID int64, accept bool, encryptedRoomKey string) error {
	if !accept {
		t, err := a.runTransition(ctx, a.db, "accessRequestRepository.Respond", respondToRequest,
			roomID, userID, models.AccessStatusRejected, nil)
		if err != nil {
			return err
		}
		return t.err(false)
	}

	return a.transitionWithMembership(ctx, "accessRequestRepository.Respond", respondToRequest,
		roomID, userID, models.AccessStatusAccepted, nullString(encryptedRoomKey))
}

// transitionWithMembership runs a transition and, when it matched, inserts
// the (room, user) membership in the same transaction.
func (a *accessRequestRepository) transitionWithMembership(ctx context.Context, funcName, query string, roomID, userID int64, extra ...any) error {
	log := logger.FromContext(ctx)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return a.db.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	args := append([]any{roomID, userID}, extra...)
	t, err := a.runTransition(ctx, tx, funcName, query, args...)
	if err != nil {
		return err
	}
	if err = t.err(false); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, addMember, roomID, userID); err != nil {
		log.Err(err).Str("func", funcName).Int64("room_id", roomID).Int64("user_id", userID).Msg("error inserting membership")
		return a.mapWriteError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return a.db.wrapDBError(ErrCommitingTransaction, err)
	}

	return nil
}

func (a *accessRequestRepository) runTransition(ctx context.Context, q queryRower, funcName, query string, args ...any) (transition, error) {
	log := logger.FromContext(ctx)

	var t transition
	if err := q.QueryRowContext(ctx, query, args...).Scan(&t.written, &t.previous); err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing transition")
		return transition{}, a.db.wrapDBError(ErrExecutingQuery, err)
	}

	log.Debug().Str("func", funcName).
		Str("previous", t.previous.String).
		Str("written", t.written.String).
		Msg("access request transition")

	return t, nil
}

func (a *accessRequestRepository) mapWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedEntityNotFound
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", ErrInvalidAccessRequestState, err)
	default:
		return a.db.wrapDBError(ErrExecutingStatement, err)
	}
}

func scanAccessRequest(row rowScanner) (models.AccessRequest, error) {
	var (
		request           models.AccessRequest
		checkerID         sql.NullInt64
		encryptedPassword sql.NullString
		encryptedRoomKey  sql.NullString
	)

	err := row.Scan(&request.RoomID, &request.UserID, &request.Status, &checkerID,
		&encryptedPassword, &encryptedRoomKey, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return models.AccessRequest{}, err
	}

	request.Payload = models.NewAccessPayload(request.Status,
		nullInt64Ptr(checkerID), nullStringPtr(encryptedPassword), nullStringPtr(encryptedRoomKey))

	return request, nil
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
