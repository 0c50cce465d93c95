package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/apcis"
	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/cryptox"
	"github.com/aussiebroadwan/pahiram/pkg/idx"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// IssuedTokens is the result of a successful token issuance.
type IssuedTokens struct {
	// PlainTextToken is "{id}|{secret}" and is only ever available here.
	PlainTextToken string
	Session        domain.SessionToken
	Remote         domain.RemoteToken
}

// TokenService issues and verifies local session tokens and records the
// provider tokens they mirror.
type TokenService struct {
	Store  store.Store
	Sealer *cryptox.Sealer

	// Location interprets the provider's zone-less expires_at. Nil means UTC.
	Location *time.Location
	Now      func() time.Time
}

// ParseRemoteExpiry parses the provider's expires_at.
func (s *TokenService) ParseRemoteExpiry(raw string) (time.Time, error) {
	t, err := apcis.ParseExpiry(raw, s.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedRemoteToken, err)
	}
	return t, nil
}

// Issue stores the provider token record and a new session token for userID
// in one transaction. Both carry expiresAt.
func (s *TokenService) Issue(
	ctx context.Context,
	userID, remoteAccessToken string,
	expiresAt time.Time,
) (*IssuedTokens, error) {
	var issued IssuedTokens

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		issued.PlainTextToken, issued.Session, err = s.IssueSessionToken(ctx, tx, userID, expiresAt)
		if err != nil {
			return err
		}
		issued.Remote, err = s.PersistRemoteToken(ctx, tx, userID, remoteAccessToken, expiresAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return &issued, nil
}

// IssueSessionToken creates a session token for userID inside tx and returns
// its plaintext form alongside the stored record.
func (s *TokenService) IssueSessionToken(
	ctx context.Context,
	tx store.Tx,
	userID string,
	expiresAt time.Time,
) (string, domain.SessionToken, error) {
	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.SessionToken{}, fmt.Errorf("generate session secret: %w", err)
	}

	session := domain.SessionToken{
		ID:        idx.New().String(),
		UserID:    userID,
		Name:      domain.SessionTokenName,
		Abilities: []string{domain.AbilityAll},
		TokenHash: cryptox.FingerprintToken(secret),
		ExpiresAt: expiresAt,
		CreatedAt: nowFrom(s.Now),
	}
	if err := tx.SessionTokens().CreateSessionToken(ctx, session); err != nil {
		return "", domain.SessionToken{}, fmt.Errorf("create session token: %w", err)
	}

	return cryptox.JoinToken(session.ID, secret), session, nil
}

// PersistRemoteToken seals accessToken and records it for userID inside tx.
func (s *TokenService) PersistRemoteToken(
	ctx context.Context,
	tx store.Tx,
	userID, accessToken string,
	expiresAt time.Time,
) (domain.RemoteToken, error) {
	sealed, err := s.Sealer.Seal([]byte(accessToken))
	if err != nil {
		return domain.RemoteToken{}, fmt.Errorf("seal remote token: %w", err)
	}

	remote := domain.RemoteToken{
		ID:          idx.New().String(),
		UserID:      userID,
		SealedToken: sealed,
		ExpiresAt:   expiresAt,
		CreatedAt:   nowFrom(s.Now),
	}
	if err := tx.RemoteTokens().CreateRemoteToken(ctx, remote); err != nil {
		return domain.RemoteToken{}, fmt.Errorf("create remote token: %w", err)
	}

	return remote, nil
}

// Authenticate resolves a presented "{id}|{secret}" token. Unknown,
// mismatched and expired tokens all return ErrInvalidToken. Usage is
// recorded on success.
func (s *TokenService) Authenticate(ctx context.Context, plain string) (domain.SessionToken, error) {
	id, secret, ok := cryptox.SplitToken(plain)
	if !ok {
		return domain.SessionToken{}, ErrInvalidToken
	}

	tok, err := s.Store.SessionTokens().GetSessionTokenByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.SessionToken{}, ErrInvalidToken
	}
	if err != nil {
		return domain.SessionToken{}, fmt.Errorf("lookup session token: %w", err)
	}

	if !cryptox.FingerprintMatches(secret, tok.TokenHash) {
		return domain.SessionToken{}, ErrInvalidToken
	}

	now := nowFrom(s.Now)
	if tok.Expired(now) {
		return domain.SessionToken{}, ErrInvalidToken
	}

	if err := s.Store.SessionTokens().TouchSessionToken(ctx, tok.ID, now); err != nil {
		slogx.FromContext(ctx).Warn("failed to record token usage", "token_id", tok.ID, "error", err)
	} else {
		tok.LastUsedAt = &now
	}

	return tok, nil
}

// OpenRemoteToken decrypts a stored provider token.
func (s *TokenService) OpenRemoteToken(t domain.RemoteToken) (string, error) {
	plain, err := s.Sealer.Open(t.SealedToken)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
