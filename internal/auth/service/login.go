package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/apcis"
	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/metrics"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// LoginState names the stages of a login attempt. Terminal failure states
// are carried by *LoginError.
type LoginState string

const (
	StateStart                  LoginState = "start"
	StateRemoteCallPending      LoginState = "remote_call_pending"
	StateRemoteDenied           LoginState = "remote_denied"
	StateRemoteError            LoginState = "remote_error"
	StateMalformedRemoteToken   LoginState = "malformed_remote_token"
	StateUserResolved           LoginState = "user_resolved"
	StateUserCreationFailed     LoginState = "user_creation_failed"
	StateTokenIssued            LoginState = "token_issued"
	StateTokenPersistenceFailed LoginState = "token_persistence_failed"
	StateComplete               LoginState = "complete"
	StateUnexpected             LoginState = "unexpected"
)

// LoginError is returned for every failed login.
type LoginError struct {
	State LoginState
	Err   error

	// Denied is set for StateRemoteDenied.
	Denied *apcis.DeniedError
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login %s: %v", e.State, e.Err)
}

func (e *LoginError) Unwrap() error { return e.Err }

// RemoteIdentity is the identity provider.
type RemoteIdentity interface {
	Login(ctx context.Context, creds apcis.Credentials) (*apcis.LoginEnvelope, error)
}

// LoginResult is everything the login response needs.
type LoginResult struct {
	User              domain.User
	RoleName          string
	DepartmentCode    *string
	PlainTextToken    string
	RemoteAccessToken string
	ExpiresAt         time.Time
	Created           bool
}

// LoginService orchestrates a login: provider call, course and user
// resolution, then token issuance.
type LoginService struct {
	Remote  RemoteIdentity
	Users   *UserService
	Tokens  *TokenService
	Lookups *LookupService
	Metrics *metrics.Metrics
}

// Login authenticates creds against the provider and issues a session token
// expiring with the provider token. Every failure is a *LoginError, panics
// included.
func (s *LoginService) Login(ctx context.Context, creds apcis.Credentials) (result *LoginResult, err error) {
	l := slogx.FromContext(ctx).With("apc_id", creds.APCID)
	state := StateStart

	defer func() {
		if r := recover(); r != nil {
			l.Error("login panicked", "state", state, "panic", r, "stack", string(debug.Stack()))
			result = nil
			err = &LoginError{State: StateUnexpected, Err: fmt.Errorf("panic: %v", r)}
		}

		outcome := StateComplete
		var le *LoginError
		if errors.As(err, &le) {
			outcome = le.State
		}
		s.Metrics.ObserveLogin(string(outcome))
	}()

	state = StateRemoteCallPending
	start := time.Now()
	env, err := s.Remote.Login(ctx, creds)
	if err != nil {
		var denied *apcis.DeniedError
		switch {
		case errors.As(err, &denied):
			s.Metrics.ObserveRemoteCall(start, "denied")
			l.Info("apcis rejected login")
			return nil, &LoginError{State: StateRemoteDenied, Err: err, Denied: denied}
		case errors.Is(err, apcis.ErrUnavailable):
			s.Metrics.ObserveRemoteCall(start, "unavailable")
			l.Error("apcis login request failed", "error", err)
			return nil, &LoginError{State: StateRemoteError, Err: err}
		default:
			s.Metrics.ObserveRemoteCall(start, "malformed")
			l.Error("unexpected apcis response", "error", err)
			return nil, &LoginError{State: StateUnexpected, Err: err}
		}
	}
	s.Metrics.ObserveRemoteCall(start, "ok")

	expiresAt, err := s.Tokens.ParseRemoteExpiry(env.Data.Token.ExpiresAt)
	if err != nil {
		l.Error("apcis token expiry unparseable", "error", err)
		return nil, &LoginError{State: StateMalformedRemoteToken, Err: err}
	}

	course, err := s.Users.FindOrCreateCourse(ctx, env.Data.Course.Profile())
	if err != nil {
		l.Error("failed to resolve course", "error", err)
		return nil, &LoginError{State: StateUserCreationFailed, Err: err}
	}

	user, created, err := s.Users.FindOrCreateUser(ctx, env.Data.User.Profile(), course)
	if err != nil {
		l.Error("failed to resolve user", "error", err)
		return nil, &LoginError{State: StateUserCreationFailed, Err: err}
	}
	state = StateUserResolved
	l = l.With("user_id", user.ID)

	issued, err := s.Tokens.Issue(ctx, user.ID, env.Data.Token.AccessToken, expiresAt)
	if err != nil {
		l.Error("failed to issue tokens", "error", err)
		return nil, &LoginError{State: StateTokenPersistenceFailed, Err: err}
	}
	state = StateTokenIssued

	roleName, err := s.Lookups.RoleName(ctx, user.RoleID)
	if err != nil {
		l.Error("failed to resolve role", "role_id", user.RoleID, "error", err)
		return nil, &LoginError{State: StateUnexpected, Err: err}
	}

	deptCode, err := s.Lookups.DepartmentCode(ctx, user.DepartmentID)
	if err != nil {
		l.Error("failed to resolve department", "error", err)
		return nil, &LoginError{State: StateUnexpected, Err: err}
	}

	state = StateComplete
	l.Info("login complete", "created", created, "expires_at", expiresAt)

	return &LoginResult{
		User:              user,
		RoleName:          roleName,
		DepartmentCode:    deptCode,
		PlainTextToken:    issued.PlainTextToken,
		RemoteAccessToken: env.Data.Token.AccessToken,
		ExpiresAt:         expiresAt,
		Created:           created,
	}, nil
}
