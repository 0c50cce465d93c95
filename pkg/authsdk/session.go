package authsdk

import (
	"context"
	"net/http"
)

// Session performs requests authenticated with a Pahiram session token.
// Tokens are not refreshed; once the APCIS token expires the caller logs in
// again.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the plaintext session token.
func (s *Session) Token() string { return s.token }

// Logout revokes this session's token.
func (s *Session) Logout(ctx context.Context) (*MessageResponse, error) {
	return s.deleteMessage(ctx, "/logout")
}

// LogoutAll revokes every session token of the user along with the stored
// APCIS tokens.
func (s *Session) LogoutAll(ctx context.Context) (*MessageResponse, error) {
	return s.deleteMessage(ctx, "/logout-all")
}

func (s *Session) deleteMessage(ctx context.Context, path string) (*MessageResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
