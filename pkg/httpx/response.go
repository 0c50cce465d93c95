package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as JSON with the given status code. Responses are
// marked uncacheable.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteRawJSON writes an already encoded JSON body.
func WriteRawJSON(w http.ResponseWriter, code int, body []byte) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// errorEnvelope mirrors the API's failure body.
type errorEnvelope struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
	Method string `json:"method"`
}

// WriteError writes {"status":false,"error":msg,"method":method}.
func WriteError(w http.ResponseWriter, code int, msg, method string) {
	WriteJSON(w, code, errorEnvelope{Status: false, Error: msg, Method: method})
}
