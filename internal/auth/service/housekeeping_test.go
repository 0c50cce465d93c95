package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeeping_RunOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, st, "2021-140001")

	tokens := &TokenService{Store: st, Sealer: newTestSealer(t), Now: fixedClock}
	_, err := tokens.Issue(ctx, u.ID, "old", testNow.Add(-time.Minute))
	require.NoError(t, err)
	live, err := tokens.Issue(ctx, u.ID, "new", testNow.Add(time.Hour))
	require.NoError(t, err)

	hk := NewHousekeepingService(st, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, time.Hour)
	hk.Now = fixedClock

	stats, err := hk.RunOnce(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.SessionTokens)
	require.EqualValues(t, 1, stats.RemoteTokens)

	_, err = st.SessionTokens().GetSessionTokenByID(ctx, live.Session.ID)
	require.NoError(t, err)
}

func TestHousekeeping_StartStop(t *testing.T) {
	st := newTestStore(t)
	hk := NewHousekeepingService(st, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, 0)
	require.Equal(t, time.Hour, hk.Interval)

	hk.Start()
	hk.Stop()
	hk.Stop()
}
