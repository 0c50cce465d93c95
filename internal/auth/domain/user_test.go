package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestNewUserDefaults(t *testing.T) {
	_, err := domain.NewUserDefaults("  ", nil, nil)
	require.Error(t, err)

	course := "course-1"
	d, err := domain.NewUserDefaults("role-1", &course, nil)
	require.NoError(t, err)
	require.Equal(t, "role-1", d.RoleID)
	require.Equal(t, &course, d.CourseID)
	require.Nil(t, d.DepartmentID)
}

func TestNewUserMergesProfileAndDefaults(t *testing.T) {
	dept := "dept-1"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := domain.NewUser("id-1",
		domain.Profile{APCID: " 2021-140001 ", FirstName: "Ana", LastName: "Cruz", Email: "ana@student.apc.edu.ph"},
		domain.UserDefaults{RoleID: "role-1", DepartmentID: &dept},
		now,
	)

	require.Equal(t, "id-1", u.ID)
	require.Equal(t, "2021-140001", u.APCID)
	require.Equal(t, "Ana", u.FirstName)
	require.Equal(t, "role-1", u.RoleID)
	require.Equal(t, &dept, u.DepartmentID)
	require.Nil(t, u.CourseID)
	require.Equal(t, now, u.CreatedAt)
	require.Equal(t, now, u.UpdatedAt)
}

func TestProfileValidation(t *testing.T) {
	require.ErrorIs(t, domain.Profile{}.Validate(), domain.ErrIncompleteProfile)
	require.NoError(t, domain.Profile{APCID: "x"}.Validate())
	require.ErrorIs(t, domain.CourseProfile{Name: "x"}.Validate(), domain.ErrIncompleteCourse)
}

func TestSessionTokenExpired(t *testing.T) {
	exp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tok := domain.SessionToken{ExpiresAt: exp}

	require.False(t, tok.Expired(exp.Add(-time.Second)))
	require.True(t, tok.Expired(exp))
	require.True(t, tok.Expired(exp.Add(time.Second)))
}
