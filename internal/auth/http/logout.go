package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/pahiram/internal/auth/service"
	"github.com/aussiebroadwan/pahiram/pkg/authsdk"
	"github.com/aussiebroadwan/pahiram/pkg/httpx"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// bearerAuthenticator resolves session tokens for httpx.AuthnMiddleware.
type bearerAuthenticator struct {
	tokens *service.TokenService
}

func (a bearerAuthenticator) Authenticate(ctx context.Context, bearer string) (httpx.Principal, error) {
	tok, err := a.tokens.Authenticate(ctx, bearer)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{UserID: tok.UserID, TokenID: tok.ID}, nil
}

type LogoutHandler struct {
	SessionService *service.SessionService
}

// Logout revokes the token that authenticated the request.
//
//	@Summary		Log out
//	@Description	Deletes the session token used for this request. Other sessions of the user stay valid.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"Logged out"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Missing, unknown or expired token"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Unexpected error"
//	@Router			/logout [delete].
func (h *LogoutHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		authsdk.ErrUnauthenticated.WriteError(w, r.Method)
		return
	}

	if err := h.SessionService.Logout(ctx, p.TokenID); err != nil {
		slogx.FromContext(ctx).Error("logout failed", "token_id", p.TokenID, "error", err)
		authsdk.ErrUnexpected.WriteError(w, r.Method)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Status:  true,
		Message: authsdk.MessageLoggedOut,
		Method:  r.Method,
	})
}

// LogoutAll revokes every session of the authenticated user.
//
//	@Summary		Log out from all devices
//	@Description	Deletes every session token of the user and every stored APCIS token record, atomically.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"Logged out from all devices"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Missing, unknown or expired token"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Unexpected error"
//	@Router			/logout-all [delete].
func (h *LogoutHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		authsdk.ErrUnauthenticated.WriteError(w, r.Method)
		return
	}

	if _, err := h.SessionService.LogoutAll(ctx, p.UserID); err != nil {
		slogx.FromContext(ctx).Error("logout-all failed", "user_id", p.UserID, "error", err)
		authsdk.ErrUnexpected.WriteError(w, r.Method)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Status:  true,
		Message: authsdk.MessageLoggedOutAllDevice,
		Method:  r.Method,
	})
}
