package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/stretchr/testify/require"
)

func TestLookupService(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	c := cache.NewMemory("test", time.Minute)
	svc := &LookupService{Store: st, Cache: c, TTL: time.Minute}

	role, err := st.Roles().GetRoleByName(ctx, domain.RoleAdmin)
	require.NoError(t, err)

	name, err := svc.RoleName(ctx, role.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, name)

	cached, err := c.Get(ctx, "role:"+role.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, cached)

	code, err := svc.DepartmentCode(ctx, nil)
	require.NoError(t, err)
	require.Nil(t, code)

	bmo, err := st.Departments().GetDepartmentByAcronym(ctx, "BMO")
	require.NoError(t, err)
	code, err = svc.DepartmentCode(ctx, &bmo.ID)
	require.NoError(t, err)
	require.Equal(t, "BMO", *code)

	_, err = svc.RoleName(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLookupServiceWithoutCache(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := &LookupService{Store: st}

	role, err := st.Roles().GetRoleByName(ctx, domain.RoleBorrower)
	require.NoError(t, err)

	name, err := svc.RoleName(ctx, role.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleBorrower, name)
}

func TestLookupServiceLoadIgnoresCallerCancellation(t *testing.T) {
	st := newTestStore(t)
	svc := &LookupService{Store: st, Cache: cache.NewMemory("test", time.Minute), TTL: time.Minute}

	role, err := st.Roles().GetRoleByName(context.Background(), domain.RoleBorrower)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	name, err := svc.RoleName(ctx, role.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleBorrower, name)
}
