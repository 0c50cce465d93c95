package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a Tx can hand out the same repos bound to the
// transaction.
type Store interface {
	Users() Users
	Courses() Courses
	Roles() Roles
	Departments() Departments
	SessionTokens() SessionTokens
	RemoteTokens() RemoteTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. A non-nil error from fn rolls
	// back, nil commits.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByAPCID looks a user up by the identity provider's natural key.
	GetUserByAPCID(ctx context.Context, apcID string) (domain.User, error)

	// CreateUser inserts u. Returns ErrAlreadyExists when the apc_id is taken.
	CreateUser(ctx context.Context, u domain.User) error

	CountUsers(ctx context.Context) (int64, error)
}

type Courses interface {
	GetCourseByID(ctx context.Context, id string) (domain.Course, error)
	GetCourseByAcronym(ctx context.Context, acronym string) (domain.Course, error)

	// CreateCourse inserts c. Returns ErrAlreadyExists when the acronym is taken.
	CreateCourse(ctx context.Context, c domain.Course) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

type Departments interface {
	GetDepartmentByID(ctx context.Context, id string) (domain.Department, error)
	GetDepartmentByAcronym(ctx context.Context, acronym string) (domain.Department, error)
}

type SessionTokens interface {
	CreateSessionToken(ctx context.Context, t domain.SessionToken) error
	GetSessionTokenByID(ctx context.Context, id string) (domain.SessionToken, error)

	// TouchSessionToken records usage of a token.
	TouchSessionToken(ctx context.Context, id string, usedAt time.Time) error

	// DeleteSessionToken removes one token. Returns ErrNotFound when absent.
	DeleteSessionToken(ctx context.Context, id string) error

	// DeleteUserSessionTokens removes every token of a user and reports how many.
	DeleteUserSessionTokens(ctx context.Context, userID string) (int64, error)

	CountUserSessionTokens(ctx context.Context, userID string) (int64, error)

	// DeleteExpiredSessionTokens is housekeeping, removing tokens expiring at
	// or before cutoff.
	DeleteExpiredSessionTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

type RemoteTokens interface {
	CreateRemoteToken(ctx context.Context, t domain.RemoteToken) error

	// ListUserRemoteTokens returns the user's records, newest first.
	ListUserRemoteTokens(ctx context.Context, userID string) ([]domain.RemoteToken, error)

	DeleteUserRemoteTokens(ctx context.Context, userID string) (int64, error)
	DeleteExpiredRemoteTokens(ctx context.Context, cutoff time.Time) (int64, error)
}
