package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/cryptox"
	"github.com/aussiebroadwan/pahiram/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st store.Store, apcID string) domain.User {
	t.Helper()
	ctx := context.Background()

	role, err := st.Roles().GetRoleByName(ctx, domain.RoleBorrower)
	require.NoError(t, err)

	u := domain.NewUser(idx.New().String(), domain.Profile{APCID: apcID}, domain.UserDefaults{RoleID: role.ID}, testNow)
	require.NoError(t, st.Users().CreateUser(ctx, u))
	return u
}

func TestTokenService_ParseRemoteExpiry(t *testing.T) {
	svc := &TokenService{}

	got, err := svc.ParseRemoteExpiry("2026-03-01 20:00:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), got)

	_, err = svc.ParseRemoteExpiry("2026/03/01")
	require.ErrorIs(t, err, ErrMalformedRemoteToken)
}

func TestTokenService_Authenticate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, st, "2021-140001")

	svc := &TokenService{Store: st, Sealer: newTestSealer(t), Now: fixedClock}
	issued, err := svc.Issue(ctx, u.ID, "remote", testNow.Add(time.Hour))
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		tok, err := svc.Authenticate(ctx, issued.PlainTextToken)
		require.NoError(t, err)
		require.Equal(t, issued.Session.ID, tok.ID)
		require.Equal(t, u.ID, tok.UserID)
		require.NotNil(t, tok.LastUsedAt)

		stored, err := st.SessionTokens().GetSessionTokenByID(ctx, tok.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastUsedAt)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, cryptox.JoinToken(issued.Session.ID, "not-the-secret"))
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, cryptox.JoinToken(idx.New().String(), "x"))
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{"", "no-separator", "|secret", "id|"} {
			_, err := svc.Authenticate(ctx, in)
			require.ErrorIs(t, err, ErrInvalidToken, "input %q", in)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later := &TokenService{Store: st, Sealer: svc.Sealer, Now: func() time.Time { return testNow.Add(time.Hour) }}
		_, err := later.Authenticate(ctx, issued.PlainTextToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenService_IssueUnknownUser(t *testing.T) {
	st := newTestStore(t)
	svc := &TokenService{Store: st, Sealer: newTestSealer(t), Now: fixedClock}

	_, err := svc.Issue(context.Background(), "no-such-user", "remote", testNow.Add(time.Hour))
	require.ErrorIs(t, err, ErrPersistence)
}
