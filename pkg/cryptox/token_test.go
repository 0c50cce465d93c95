package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 32},
		{"256-bit token", TokenSize256, 64},
		{"custom size", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("secret-1")
	fp1b := FingerprintToken("secret-1")
	fp2 := FingerprintToken("secret-2")

	require.Equal(t, fp1a, fp1b)
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 64)

	require.True(t, FingerprintMatches("secret-1", fp1a))
	require.False(t, FingerprintMatches("secret-2", fp1a))
}

func TestSplitToken(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantID     string
		wantSecret string
		wantOK     bool
	}{
		{"well formed", "01J9Z|abc", "01J9Z", "abc", true},
		{"secret containing separator", "01J9Z|a|b", "01J9Z", "a|b", true},
		{"missing separator", "01J9Zabc", "", "", false},
		{"empty id", "|abc", "", "", false},
		{"empty secret", "01J9Z|", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, secret, ok := SplitToken(tt.in)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantID, id)
			require.Equal(t, tt.wantSecret, secret)
		})
	}

	id, secret, ok := SplitToken(JoinToken("X", "Y"))
	require.True(t, ok)
	require.Equal(t, "X", id)
	require.Equal(t, "Y", secret)
}
