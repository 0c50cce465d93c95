package apcis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
)

// Credentials are forwarded verbatim to the provider.
type Credentials struct {
	APCID    string `json:"apc_id"`
	Password string `json:"password"`
}

// LoginEnvelope is the success body of POST /api/login.
type LoginEnvelope struct {
	Status bool      `json:"status"`
	Data   LoginData `json:"data"`
}

type LoginData struct {
	User   User   `json:"user"`
	Course Course `json:"course"`
	Token  Token  `json:"apcis_token"`
}

type User struct {
	APCID     FlexString `json:"apc_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
}

func (u User) Profile() domain.Profile {
	return domain.Profile{
		APCID:     string(u.APCID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}.Normalize()
}

type Course struct {
	Acronym string `json:"course_acronym"`
	Name    string `json:"course"`
}

func (c Course) Profile() domain.CourseProfile {
	return domain.CourseProfile{Acronym: c.Acronym, Name: c.Name}.Normalize()
}

// Token is the provider access token. ExpiresAt is wall clock text in the
// ExpiryLayout, with no zone.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// FlexString accepts a JSON string or number. APC IDs have been observed as
// both.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("apcis: apc_id is neither string nor number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}
