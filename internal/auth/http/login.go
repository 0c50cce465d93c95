package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/apcis"
	"github.com/aussiebroadwan/pahiram/internal/auth/service"
	"github.com/aussiebroadwan/pahiram/pkg/authsdk"
	"github.com/aussiebroadwan/pahiram/pkg/httpx"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// maxLoginBody caps the login request body.
const maxLoginBody = 16 << 10

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP handles the federated login endpoint.
//
//	@Summary		Log in with APCIS credentials
//	@Description	Forwards the credentials to APCIS. On success the course and user are created locally when first seen and a session token is issued that expires together with the APCIS token.
//	@Description	An APCIS rejection is returned with status 401 and the APCIS body unchanged.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest			true	"APCIS credentials"
//	@Success		200		{object}	authsdk.LoginResponse			"User profile and issued tokens"
//	@Failure		400		{object}	authsdk.ErrorResponse			"Request body is not valid JSON"
//	@Failure		401		{object}	object							"APCIS rejection, passed through"
//	@Failure		422		{object}	authsdk.ValidationErrorResponse	"Missing or invalid fields"
//	@Failure		429		{object}	authsdk.ErrorResponse			"Too many requests"
//	@Failure		500		{object}	authsdk.ErrorResponse			"APCIS unreachable or unexpected error"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&req); err != nil {
		l.Info("login body rejected", "error", err)
		authsdk.ErrInvalidBody.WriteError(w, r.Method)
		return
	}
	if errs := req.Validate(); errs != nil {
		authsdk.WriteValidationError(w, errs, r.Method)
		return
	}

	result, err := h.LoginService.Login(ctx, apcis.Credentials{
		APCID:    strings.TrimSpace(req.APCID),
		Password: req.Password,
	})
	if err != nil {
		writeLoginError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.LoginResponse{
		Status: true,
		Data: authsdk.LoginData{
			User:         userProfile(result),
			PahiramToken: result.PlainTextToken,
			APCISToken:   result.RemoteAccessToken,
			ExpiresAt:    result.ExpiresAt.UTC().Format(time.RFC3339),
		},
		Method: r.Method,
	})
}

// writeLoginError maps a failed login to its response. Causes are logged by
// the login service and never reach the body.
func writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var le *service.LoginError
	if !errors.As(err, &le) {
		slogx.FromContext(r.Context()).Error("login failed outside the orchestrator", "error", err)
		authsdk.ErrUnexpected.WriteError(w, r.Method)
		return
	}

	switch le.State {
	case service.StateRemoteDenied:
		if le.Denied != nil && len(le.Denied.Body) > 0 {
			httpx.WriteRawJSON(w, http.StatusUnauthorized, le.Denied.Body)
			return
		}
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials", r.Method)
	case service.StateRemoteError:
		authsdk.ErrAPCISLoginFailed.WriteError(w, r.Method)
	default:
		authsdk.ErrUnexpected.WriteError(w, r.Method)
	}
}

func userProfile(res *service.LoginResult) authsdk.UserProfile {
	u := res.User
	return authsdk.UserProfile{
		ID:             u.ID,
		APCID:          u.APCID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		DepartmentCode: res.DepartmentCode,
		Role:           res.RoleName,
		CreatedAt:      u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
