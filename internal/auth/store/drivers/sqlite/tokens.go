package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite/gen"
)

type sessionTokensRepo struct {
	q *gen.Queries
}

func (r *sessionTokensRepo) CreateSessionToken(ctx context.Context, t domain.SessionToken) error {
	return mapConstraint(r.q.CreatePersonalAccessToken(ctx, gen.CreatePersonalAccessTokenParams{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Abilities: strings.Join(t.Abilities, " "),
		TokenHash: t.TokenHash,
		ExpiresAt: utc(t.ExpiresAt),
		CreatedAt: utc(t.CreatedAt),
	}))
}

func (r *sessionTokensRepo) GetSessionTokenByID(ctx context.Context, id string) (domain.SessionToken, error) {
	row, err := r.q.GetPersonalAccessTokenByID(ctx, id)
	if err != nil {
		return domain.SessionToken{}, mapNotFound(err)
	}
	return mapSessionToken(row), nil
}

func (r *sessionTokensRepo) TouchSessionToken(ctx context.Context, id string, usedAt time.Time) error {
	return r.q.TouchPersonalAccessToken(ctx, gen.TouchPersonalAccessTokenParams{
		LastUsedAt: sql.NullTime{Time: utc(usedAt), Valid: true},
		ID:         id,
	})
}

func (r *sessionTokensRepo) DeleteSessionToken(ctx context.Context, id string) error {
	n, err := mapAffected(r.q.DeletePersonalAccessToken(ctx, id))
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *sessionTokensRepo) DeleteUserSessionTokens(ctx context.Context, userID string) (int64, error) {
	return mapAffected(r.q.DeleteUserPersonalAccessTokens(ctx, userID))
}

func (r *sessionTokensRepo) CountUserSessionTokens(ctx context.Context, userID string) (int64, error) {
	return r.q.CountUserPersonalAccessTokens(ctx, userID)
}

func (r *sessionTokensRepo) DeleteExpiredSessionTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	return mapAffected(r.q.DeleteExpiredPersonalAccessTokens(ctx, utc(cutoff)))
}

type remoteTokensRepo struct {
	q *gen.Queries
}

func (r *remoteTokensRepo) CreateRemoteToken(ctx context.Context, t domain.RemoteToken) error {
	return mapConstraint(r.q.CreateApcisToken(ctx, gen.CreateApcisTokenParams{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.SealedToken,
		ExpiresAt: utc(t.ExpiresAt),
		CreatedAt: utc(t.CreatedAt),
	}))
}

func (r *remoteTokensRepo) ListUserRemoteTokens(ctx context.Context, userID string) ([]domain.RemoteToken, error) {
	rows, err := r.q.ListUserApcisTokens(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RemoteToken, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRemoteToken(row))
	}
	return out, nil
}

func (r *remoteTokensRepo) DeleteUserRemoteTokens(ctx context.Context, userID string) (int64, error) {
	return mapAffected(r.q.DeleteUserApcisTokens(ctx, userID))
}

func (r *remoteTokensRepo) DeleteExpiredRemoteTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	return mapAffected(r.q.DeleteExpiredApcisTokens(ctx, utc(cutoff)))
}
