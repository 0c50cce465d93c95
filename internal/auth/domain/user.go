package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrIncompleteProfile is returned when an identity profile lacks the APC ID.
var ErrIncompleteProfile = errors.New("domain: profile missing apc_id")

// User is the local account mirroring an APCIS identity. APCID is the
// natural key, ID is ours.
type User struct {
	ID           string
	APCID        string
	FirstName    string
	LastName     string
	Email        string
	CourseID     *string // nullable FK to courses
	DepartmentID *string // nullable FK to departments
	RoleID       string  // FK to roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the identity payload the provider returns for a user.
type Profile struct {
	APCID     string
	FirstName string
	LastName  string
	Email     string
}

// Normalize trims the APC ID so lookups and inserts use the same key.
func (p Profile) Normalize() Profile {
	p.APCID = strings.TrimSpace(p.APCID)
	return p
}

// Validate checks the one field a local user cannot exist without.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.APCID) == "" {
		return ErrIncompleteProfile
	}
	return nil
}

// UserDefaults are the attributes a brand new local user receives that the
// identity provider does not know about.
type UserDefaults struct {
	RoleID       string
	CourseID     *string
	DepartmentID *string
}

// NewUserDefaults rejects defaults without a role, every user must have one.
func NewUserDefaults(roleID string, courseID, departmentID *string) (UserDefaults, error) {
	if strings.TrimSpace(roleID) == "" {
		return UserDefaults{}, errors.New("domain: default role is required")
	}
	return UserDefaults{RoleID: roleID, CourseID: courseID, DepartmentID: departmentID}, nil
}

// NewUser merges a provider profile with local defaults. Profile fields win
// for identity data, defaults supply the foreign keys.
func NewUser(id string, p Profile, d UserDefaults, now time.Time) User {
	return User{
		ID:           id,
		APCID:        strings.TrimSpace(p.APCID),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		CourseID:     d.CourseID,
		DepartmentID: d.DepartmentID,
		RoleID:       d.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
