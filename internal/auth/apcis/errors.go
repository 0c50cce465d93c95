package apcis

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures, timeouts and provider 5xx
	// responses without a usable body.
	ErrUnavailable = errors.New("apcis: login request failed")

	// ErrMalformedResponse means the provider answered but the body could not
	// be understood.
	ErrMalformedResponse = errors.New("apcis: malformed response")
)

// DeniedError is returned when the provider reports status=false. Body is the
// provider's response, passed through to the caller untouched.
type DeniedError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("apcis: login denied (provider status %d)", e.StatusCode)
}
