package authsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/pahiram/pkg/authsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req authsdk.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2021-140123", req.APCID)

		_ = json.NewEncoder(w).Encode(authsdk.LoginResponse{
			Status: true,
			Data: authsdk.LoginData{
				User:         authsdk.UserProfile{APCID: req.APCID, Role: "BORROWER"},
				PahiramToken: "tok|secret",
			},
			Method: http.MethodPost,
		})
	})
	mux.HandleFunc("DELETE /logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok|secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(authsdk.MessageResponse{
			Status: true, Message: authsdk.MessageLoggedOut, Method: http.MethodDelete,
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := authsdk.NewSDKClient(srv.URL + "/")
	session, resp, err := client.AuthenticateWithPassword(context.Background(), "2021-140123", "pw")
	require.NoError(t, err)
	require.Equal(t, "BORROWER", resp.Data.User.Role)
	require.Equal(t, "tok|secret", session.Token())

	out, err := session.Logout(context.Background())
	require.NoError(t, err)
	require.Equal(t, authsdk.MessageLoggedOut, out.Message)
}

func TestLoginErrorsBecomeAPIError(t *testing.T) {
	denied := `{"status":false,"message":"Invalid credentials"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(denied))
	}))
	defer srv.Close()

	_, err := authsdk.NewSDKClient(srv.URL).Login(context.Background(), authsdk.LoginRequest{APCID: "x", Password: "y"})

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)
	require.JSONEq(t, denied, string(apiErr.Body))
}

func TestValidationErrorsAreParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authsdk.WriteValidationError(w, map[string]string{"apc_id": "required"}, r.Method)
	}))
	defer srv.Close()

	_, err := authsdk.NewSDKClient(srv.URL).Login(context.Background(), authsdk.LoginRequest{})

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, "required", apiErr.Errors["apc_id"])
}

func TestErrorResponseWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	authsdk.ErrAPCISLoginFailed.WriteError(rec, http.MethodPost)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"status":false,"error":"APCIS API login request failed","method":"POST"}`, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestLoginRequestValidate(t *testing.T) {
	require.Nil(t, authsdk.LoginRequest{APCID: "2021-140123", Password: "pw"}.Validate())

	errs := authsdk.LoginRequest{APCID: "   "}.Validate()
	require.Equal(t, map[string]string{"apc_id": "required", "password": "required"}, errs)
}
