package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/apcis"
	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/pahiram/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(":memory:"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func newTestSealer(t *testing.T) *cryptox.Sealer {
	t.Helper()
	s, err := cryptox.NewSealer([]byte("service-test-key"))
	require.NoError(t, err)
	return s
}

// fakeRemote is a scripted identity provider.
type fakeRemote struct {
	mu    sync.Mutex
	calls atomic.Int32
	fn    func(creds apcis.Credentials) (*apcis.LoginEnvelope, error)
}

func (f *fakeRemote) Login(_ context.Context, creds apcis.Credentials) (*apcis.LoginEnvelope, error) {
	f.calls.Add(1)
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()
	return fn(creds)
}

func envelope(apcID, course, expiresAt string) *apcis.LoginEnvelope {
	return &apcis.LoginEnvelope{
		Status: true,
		Data: apcis.LoginData{
			User: apcis.User{
				APCID:     apcis.FlexString(apcID),
				FirstName: "Ana",
				LastName:  "Cruz",
				Email:     apcID + "@student.apc.edu.ph",
			},
			Course: apcis.Course{Acronym: course, Name: course + " program"},
			Token:  apcis.Token{AccessToken: "remote-" + apcID, ExpiresAt: expiresAt},
		},
	}
}

func succeedWith(env *apcis.LoginEnvelope) func(apcis.Credentials) (*apcis.LoginEnvelope, error) {
	return func(apcis.Credentials) (*apcis.LoginEnvelope, error) { return env, nil }
}

func failWith(err error) func(apcis.Credentials) (*apcis.LoginEnvelope, error) {
	return func(apcis.Credentials) (*apcis.LoginEnvelope, error) { return nil, err }
}

type loginFixture struct {
	store  store.Store
	remote *fakeRemote
	login  *LoginService
	tokens *TokenService
	users  *UserService
}

func newLoginFixture(t *testing.T, st store.Store, policy PolicyConfig) *loginFixture {
	t.Helper()

	remote := &fakeRemote{fn: succeedWith(envelope("2021-140001", "BSCS", "2026-03-01 20:00:00"))}
	users := &UserService{
		Store:    st,
		Defaults: &LookupDefaultsPolicy{Store: st, Config: policy},
		Now:      fixedClock,
	}
	tokens := &TokenService{Store: st, Sealer: newTestSealer(t), Now: fixedClock}
	lookups := &LookupService{Store: st, Cache: cache.NewMemory("test", time.Minute), TTL: time.Minute}

	return &loginFixture{
		store:  st,
		remote: remote,
		users:  users,
		tokens: tokens,
		login: &LoginService{
			Remote:  remote,
			Users:   users,
			Tokens:  tokens,
			Lookups: lookups,
		},
	}
}

func countRows(t *testing.T, st store.Store, apcID string) (users int64, sessions int64, remotes int) {
	t.Helper()
	ctx := context.Background()

	users, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)

	u, err := st.Users().GetUserByAPCID(ctx, apcID)
	if errors.Is(err, store.ErrNotFound) {
		return users, 0, 0
	}
	require.NoError(t, err)

	sessions, err = st.SessionTokens().CountUserSessionTokens(ctx, u.ID)
	require.NoError(t, err)
	list, err := st.RemoteTokens().ListUserRemoteTokens(ctx, u.ID)
	require.NoError(t, err)
	return users, sessions, len(list)
}

// failingRemoteTokensStore makes every RemoteTokens insert inside a
// transaction fail.
type failingRemoteTokensStore struct {
	store.Store
}

func (s failingRemoteTokensStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(failingRemoteTokensTx{baseTx: tx})
	})
}

// baseTx lets failingRemoteTokensTx embed store.Tx without its field name
// shadowing the Tx method.
type baseTx = store.Tx

type failingRemoteTokensTx struct {
	baseTx
}

func (t failingRemoteTokensTx) RemoteTokens() store.RemoteTokens {
	return failingRemoteTokens{RemoteTokens: t.baseTx.RemoteTokens()}
}

type failingRemoteTokens struct {
	store.RemoteTokens
}

func (failingRemoteTokens) CreateRemoteToken(context.Context, domain.RemoteToken) error {
	return errors.New("disk full")
}
