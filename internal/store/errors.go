package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRoomNotFound is returned when a query or update targets a room that
	// does not exist.
	ErrRoomNotFound = errors.New("room was not found")

	// ErrMembershipNotFound is returned when a membership removal targets a
	// user who is not a member of the room.
	ErrMembershipNotFound = errors.New("membership was not found")

	// ErrAdminAlreadySet is returned when a user tries to claim administration
	// of a room that already has an administrator.
	ErrAdminAlreadySet = errors.New("room admin already set")

	// ErrAdminMismatch is returned when an admin-only write is guarded by an
	// admin id that no longer matches the room's current administrator.
	ErrAdminMismatch = errors.New("user is not the room admin")

	// ErrAccessRequestNotFound is returned when no access request exists for
	// the (room, user) pair.
	ErrAccessRequestNotFound = errors.New("access request was not found")

	// ErrAccessRequestExists is returned when a user already has an access
	// request row for the room.
	ErrAccessRequestExists = errors.New("access request already exists")

	// ErrInvalidAccessRequestState is returned when a conditional transition
	// finds the request in a status the transition does not start from.
	ErrInvalidAccessRequestState = errors.New("access request is in a wrong state")

	// ErrPasswordCheckLocked is returned when another member holds a fresh
	// password-check lock on the request.
	ErrPasswordCheckLocked = errors.New("password check is locked by another member")

	// ErrReferencedEntityNotFound is returned when an insert references a user
	// or room that does not exist (foreign key violation).
	ErrReferencedEntityNotFound = errors.New("referenced entity was not found")

	// ErrTransient marks failures that the client may retry later, such as
	// connection losses, deadlocks or serialization failures.
	ErrTransient = errors.New("temporary storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
