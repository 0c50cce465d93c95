package apcis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultLoginURL is the production APCIS login endpoint.
	DefaultLoginURL = "http://167.172.74.157/api/login"
	DefaultTimeout  = 10 * time.Second

	// ExpiryLayout is the format of apcis_token.expires_at.
	ExpiryLayout = "2006-01-02 15:04:05"

	maxResponseBytes = 1 << 20
)

// Client talks to the APCIS identity API.
type Client struct {
	loginURL string
	http     *http.Client
}

// New returns a Client with its own http.Client bounded by timeout.
func New(loginURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithHTTPClient(loginURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(loginURL string, hc *http.Client) *Client {
	if loginURL == "" {
		loginURL = DefaultLoginURL
	}
	return &Client{loginURL: loginURL, http: hc}
}

// Login posts creds to the provider.
//
// A status=false body yields *DeniedError. Transport failures, timeouts and
// 5xx responses without a decodable body yield ErrUnavailable. Anything else
// that cannot be decoded yields ErrMalformedResponse.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginEnvelope, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	var probe struct {
		Status *bool `json:"status"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Status == nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: provider returned %d", ErrUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: no status field (http %d)", ErrMalformedResponse, resp.StatusCode)
	}

	if !*probe.Status {
		return nil, &DeniedError{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}
	}

	var env LoginEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := env.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &env, nil
}

func (e *LoginEnvelope) validate() error {
	if err := e.Data.User.Profile().Validate(); err != nil {
		return err
	}
	if err := e.Data.Course.Profile().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Data.Token.AccessToken) == "" {
		return errors.New("missing apcis_token.access_token")
	}
	if strings.TrimSpace(e.Data.Token.ExpiresAt) == "" {
		return errors.New("missing apcis_token.expires_at")
	}
	return nil
}

// ParseExpiry interprets the provider's zone-less expiry in loc.
func ParseExpiry(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(ExpiryLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse expires_at %q: %w", raw, err)
	}
	return t.UTC(), nil
}
