package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Pahiram authentication service. It covers
// the unauthenticated operations and creates Sessions for the rest.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Login exchanges APCIS credentials for a Pahiram session token.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/login", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// AuthenticateWithPassword logs in and returns a Session bound to the issued
// token.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, apcID, password string) (*Session, *LoginResponse, error) {
	resp, err := c.Login(ctx, LoginRequest{APCID: apcID, Password: password})
	if err != nil {
		return nil, nil, err
	}
	return c.NewSession(resp.Data.PahiramToken), resp, nil
}

// NewSession wraps an existing plaintext session token.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
