package authsdk

import (
	"strings"
	"unicode/utf8"
)

const (
	requiredReason = "required"
	maxFieldLength = 255
)

// Validate checks the login request fields. Returns a map of field names to
// error messages, or nil if all fields are valid.
func (l LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)

	switch apcID := strings.TrimSpace(l.APCID); {
	case apcID == "":
		errs["apc_id"] = requiredReason
	case utf8.RuneCountInString(apcID) > maxFieldLength:
		errs["apc_id"] = "too long (max 255)"
	}

	switch {
	case l.Password == "":
		errs["password"] = requiredReason
	case utf8.RuneCountInString(l.Password) > maxFieldLength:
		errs["password"] = "too long (max 255)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
