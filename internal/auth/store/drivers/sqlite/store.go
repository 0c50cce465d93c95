package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite/gen"

	moderncsqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// DSN builds a modernc connection string for path with foreign keys on,
// a busy timeout and a lexically sortable time format. path may be ":memory:".
func DSN(path string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite",
		path,
	)
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection keeps per-connection pragmas and :memory: databases
	// coherent, and sqlite serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users                 { return &usersRepo{q: s.q} }
func (s *Store) Courses() store.Courses             { return &coursesRepo{q: s.q} }
func (s *Store) Roles() store.Roles                 { return &rolesRepo{q: s.q} }
func (s *Store) Departments() store.Departments     { return &departmentsRepo{q: s.q} }
func (s *Store) SessionTokens() store.SessionTokens { return &sessionTokensRepo{q: s.q} }
func (s *Store) RemoteTokens() store.RemoteTokens   { return &remoteTokensRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique and primary key violations into
// store.ErrAlreadyExists.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var se *moderncsqlite.Error
	if !errors.As(err, &se) {
		return false
	}

	switch se.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}

	// Without extended result codes only the primary code is reported.
	return se.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT &&
		strings.Contains(se.Error(), "UNIQUE constraint failed")
}

func mapAffected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

// utc strips location and monotonic readings so stored values compare
// lexically.
func utc(t time.Time) time.Time { return t.UTC() }

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		APCID:        row.ApcID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		CourseID:     mapNullStringPtr(row.CourseID),
		DepartmentID: mapNullStringPtr(row.DepartmentID),
		RoleID:       row.UserRoleID,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

func mapCourse(row gen.Course) domain.Course {
	return domain.Course{
		ID:            row.ID,
		CourseAcronym: row.CourseAcronym,
		CourseName:    row.Course,
		CreatedAt:     row.CreatedAt.UTC(),
	}
}

func mapRole(row gen.Role) domain.Role {
	return domain.Role{
		ID:          row.ID,
		Name:        row.Role,
		Description: row.Description,
	}
}

func mapDepartment(row gen.Department) domain.Department {
	return domain.Department{
		ID:      row.ID,
		Acronym: row.DepartmentAcronym,
		Name:    row.Department,
	}
}

func mapSessionToken(row gen.PersonalAccessToken) domain.SessionToken {
	return domain.SessionToken{
		ID:         row.ID,
		UserID:     row.UserID,
		Name:       row.Name,
		Abilities:  splitAbilities(row.Abilities),
		TokenHash:  row.TokenHash,
		ExpiresAt:  row.ExpiresAt.UTC(),
		LastUsedAt: mapNullTimePtr(row.LastUsedAt),
		CreatedAt:  row.CreatedAt.UTC(),
	}
}

func mapRemoteToken(row gen.ApcisToken) domain.RemoteToken {
	return domain.RemoteToken{
		ID:          row.ID,
		UserID:      row.UserID,
		SealedToken: row.Token,
		ExpiresAt:   row.ExpiresAt.UTC(),
		CreatedAt:   row.CreatedAt.UTC(),
	}
}

func splitAbilities(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
