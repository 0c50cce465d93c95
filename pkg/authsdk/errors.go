package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/pahiram/pkg/httpx"
)

// ============================================================================
// ErrorResponse - server side failure envelope
// ============================================================================

// ErrorResponse is a failure the API reports as
// {"status":false,"error":message,"method":method}. Handlers write the
// predefined values below rather than building messages from internal errors.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Status     bool   `json:"status" example:"false"`
	Message    string `json:"error" example:"Unexpected error"`
	Method     string `json:"method" example:"POST"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this error for a request made with method.
func (e *ErrorResponse) WriteError(w http.ResponseWriter, method string) {
	httpx.WriteError(w, e.StatusCode, e.Message, method)
}

var (
	// ErrAPCISLoginFailed is returned when APCIS could not be reached or
	// answered with a server error.
	ErrAPCISLoginFailed = &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "APCIS API login request failed",
	}

	// ErrUnexpected covers every other server side failure.
	ErrUnexpected = &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "Unexpected error",
	}

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = &ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body",
	}

	// ErrUnauthenticated is returned when the bearer token is missing,
	// unknown or expired.
	ErrUnauthenticated = &ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthenticated",
	}
)

// ============================================================================
// Validation Error Response
// ============================================================================

// ValidationErrorResponse is the 422 body for a request that failed field
// validation.
type ValidationErrorResponse struct {
	Status bool              `json:"status" example:"false"`
	Errors map[string]string `json:"errors"`
	Method string            `json:"method" example:"POST"`
}

// WriteValidationError writes errs as a 422 response.
func WriteValidationError(w http.ResponseWriter, errs map[string]string, method string) {
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Status: false,
		Errors: errs,
		Method: method,
	})
}

// ============================================================================
// Client side errors
// ============================================================================

// APIError is returned by SDKClient for any non-success response. Body holds
// the raw response so callers can inspect pass-through provider errors.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authsdk: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authsdk: unexpected status %d", e.StatusCode)
}

// parseErrorResponse turns a non-success response into an *APIError,
// extracting whichever of the known envelopes the body matches.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}

	var envelope struct {
		Error   string            `json:"error"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Errors = envelope.Errors
		apiErr.Message = envelope.Error
		if apiErr.Message == "" {
			apiErr.Message = envelope.Message
		}
	}

	return apiErr
}
