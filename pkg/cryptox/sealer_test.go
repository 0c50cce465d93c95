package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealerRoundTrip(t *testing.T) {
	s, err := NewSealer([]byte("test-master-key"))
	require.NoError(t, err)

	plaintext := []byte("apcis-access-token")
	sealed, err := s.Seal(plaintext)
	require.NoError(t, err)
	require.NotContains(t, string(sealed), string(plaintext))

	again, err := s.Seal(plaintext)
	require.NoError(t, err)
	require.NotEqual(t, sealed, again, "nonce must differ per seal")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestSealerRejectsTampering(t *testing.T) {
	s, err := NewSealer([]byte("test-master-key"))
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("payload"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = s.Open(sealed)
	require.Error(t, err)

	_, err = s.Open([]byte("short"))
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestSealerKeysAreIsolated(t *testing.T) {
	a, err := NewSealer([]byte("key-a"))
	require.NoError(t, err)
	b, err := NewSealer([]byte("key-b"))
	require.NoError(t, err)

	sealed, err := a.Seal([]byte("payload"))
	require.NoError(t, err)

	_, err = b.Open(sealed)
	require.Error(t, err)
}

func TestNewSealer_EmptyKey(t *testing.T) {
	_, err := NewSealer(nil)
	require.Error(t, err)
}

func TestLoadMasterKey(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "master.key")
		require.NoError(t, os.WriteFile(path, []byte("file-key\n"), 0o600))

		material, ephemeral, err := LoadMasterKey(path)
		require.NoError(t, err)
		require.False(t, ephemeral)
		require.Equal(t, []byte("file-key"), material)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadMasterKey(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv(MasterKeyEnv, "env-key")

		material, ephemeral, err := LoadMasterKey("")
		require.NoError(t, err)
		require.False(t, ephemeral)
		require.Equal(t, []byte("env-key"), material)
	})

	t.Run("ephemeral fallback", func(t *testing.T) {
		t.Setenv(MasterKeyEnv, "")

		material, ephemeral, err := LoadMasterKey("")
		require.NoError(t, err)
		require.True(t, ephemeral)
		require.Len(t, material, 32)
	})
}
