package service

import (
	"errors"
	"time"
)

var (
	// ErrPersistence wraps any failure writing users, courses or tokens.
	ErrPersistence = errors.New("persistence_failure")

	// ErrMalformedRemoteToken means the provider's expires_at could not be
	// parsed. Nothing has been written when it is returned.
	ErrMalformedRemoteToken = errors.New("malformed_remote_token")

	// ErrInvalidToken covers unknown, mismatched and expired session tokens.
	ErrInvalidToken = errors.New("invalid_token")
)

func nowFrom(clock func() time.Time) time.Time {
	if clock != nil {
		return clock().UTC()
	}
	return time.Now().UTC()
}
