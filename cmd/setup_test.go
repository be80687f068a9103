package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEnvKey_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	require.NoError(t, writeEnvKey(path, "GOOGLE_CIVIC_API_KEY", "abc123"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GOOGLE_CIVIC_API_KEY=abc123\n", string(data))
}

func TestWriteEnvKey_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	orig := "FOO=bar\nGOOGLE_CIVIC_API_KEY=old\nBAZ=qux\n"
	require.NoError(t, os.WriteFile(path, []byte(orig), 0o600))

	require.NoError(t, writeEnvKey(path, "GOOGLE_CIVIC_API_KEY", "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FOO=bar\nGOOGLE_CIVIC_API_KEY=new\nBAZ=qux\n", string(data))
}

func TestWriteEnvKey_AppendsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOO=bar\n"), 0o600))

	require.NoError(t, writeEnvKey(path, "GOOGLE_CIVIC_API_KEY", "abc"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FOO=bar\nGOOGLE_CIVIC_API_KEY=abc\n", string(data))
}

func TestWriteEnvKey_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	require.NoError(t, writeEnvKey(path, "GOOGLE_CIVIC_API_KEY", "abc"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GOOGLE_CIVIC_API_KEY=abc\n", string(data))
}
