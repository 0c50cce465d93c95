package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// Token size constants (in bytes before encoding).
const (
	// TokenSize128 provides 128 bits of entropy.
	TokenSize128 = 16
	// TokenSize256 provides 256 bits of entropy, used for session secrets.
	TokenSize256 = 32
)

// tokenSeparator joins the row id and the secret of a plain text session
// token, "{id}|{secret}".
const tokenSeparator = "|"

// GenerateToken returns size random bytes hex encoded. Hex keeps the secret
// free of the separator.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// FingerprintToken returns the hex SHA-256 of a token secret. Only the
// fingerprint is persisted.
func FingerprintToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// FingerprintMatches compares a presented secret against a stored
// fingerprint in constant time.
func FingerprintMatches(secret, fingerprint string) bool {
	got := FingerprintToken(secret)
	return subtle.ConstantTimeCompare([]byte(got), []byte(fingerprint)) == 1
}

// JoinToken renders the plain text form handed to clients.
func JoinToken(id, secret string) string {
	return id + tokenSeparator + secret
}

// SplitToken parses "{id}|{secret}". Both halves must be non empty.
func SplitToken(plain string) (id, secret string, ok bool) {
	id, secret, found := strings.Cut(plain, tokenSeparator)
	if !found || id == "" || secret == "" {
		return "", "", false
	}
	return id, secret, true
}
