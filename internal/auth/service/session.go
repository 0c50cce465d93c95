package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/pahiram/internal/auth/metrics"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// LogoutAllResult reports what a logout-all removed.
type LogoutAllResult struct {
	SessionTokens int64
	RemoteTokens  int64
}

// SessionService ends sessions.
type SessionService struct {
	Store   store.Store
	Metrics *metrics.Metrics
}

// Logout deletes exactly the token used for the request. A token already
// gone, e.g. by a concurrent logout, is not an error.
func (s *SessionService) Logout(ctx context.Context, tokenID string) error {
	err := s.Store.SessionTokens().DeleteSessionToken(ctx, tokenID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete session token: %w", err)
	}

	s.Metrics.IncLogout("current")
	slogx.FromContext(ctx).Info("session logged out", "token_id", tokenID)
	return nil
}

// LogoutAll deletes every session token and provider token record of userID
// atomically.
func (s *SessionService) LogoutAll(ctx context.Context, userID string) (LogoutAllResult, error) {
	var res LogoutAllResult

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if res.SessionTokens, err = tx.SessionTokens().DeleteUserSessionTokens(ctx, userID); err != nil {
			return fmt.Errorf("delete session tokens: %w", err)
		}
		if res.RemoteTokens, err = tx.RemoteTokens().DeleteUserRemoteTokens(ctx, userID); err != nil {
			return fmt.Errorf("delete remote tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return LogoutAllResult{}, err
	}

	s.Metrics.IncLogout("all")
	slogx.FromContext(ctx).Info("all sessions logged out",
		"user_id", userID,
		"session_tokens", res.SessionTokens,
		"remote_tokens", res.RemoteTokens,
	)
	return res, nil
}
