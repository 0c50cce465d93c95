package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestParsePolicyConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := ParsePolicyConfig(strings.NewReader(`
default_role: " BORROWER "
course_departments:
  BSIT: ITRO
`))
		require.NoError(t, err)
		require.Equal(t, "BORROWER", cfg.DefaultRole)
		require.Equal(t, map[string]string{"BSIT": "ITRO"}, cfg.CourseDepartments)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParsePolicyConfig(strings.NewReader("default_role: BORROWER\ndefault_rol: X\n"))
		require.Error(t, err)
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := ParsePolicyConfig(strings.NewReader("course_departments: {}\n"))
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParsePolicyConfig(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestLookupDefaultsPolicy(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	policy := &LookupDefaultsPolicy{Store: st, Config: PolicyConfig{
		DefaultRole:       domain.RoleBorrower,
		CourseDepartments: map[string]string{"BSIT": "ITRO"},
	}}
	require.NoError(t, policy.Validate(ctx))

	borrower, err := st.Roles().GetRoleByName(ctx, domain.RoleBorrower)
	require.NoError(t, err)
	itro, err := st.Departments().GetDepartmentByAcronym(ctx, "ITRO")
	require.NoError(t, err)

	d, err := policy.DefaultData(ctx, domain.Course{ID: "c1", CourseAcronym: "BSIT"})
	require.NoError(t, err)
	require.Equal(t, borrower.ID, d.RoleID)
	require.Equal(t, "c1", *d.CourseID)
	require.Equal(t, itro.ID, *d.DepartmentID)

	d, err = policy.DefaultData(ctx, domain.Course{ID: "c2", CourseAcronym: "BSCS"})
	require.NoError(t, err)
	require.Nil(t, d.DepartmentID)

	bad := &LookupDefaultsPolicy{Store: st, Config: PolicyConfig{
		DefaultRole:       domain.RoleBorrower,
		CourseDepartments: map[string]string{"BSIT": "NOPE"},
	}}
	require.Error(t, bad.Validate(ctx))
}
