package keyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "01234567-89ab-cdef-0123-456789abcdef"

func TestTextFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, ToTextFile(path, testAPIKey))

	got, err := FromTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, got)
}

func TestFromTextFileTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(path, []byte("  "+testAPIKey+"\n\n"), 0o600))

	got, err := FromTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, got)
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, ToJSONFile(path, testAPIKey))

	got, err := FromJSONFile(path)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, got)
}

func TestFromJSONFileErrors(t *testing.T) {
	t.Run("not an object", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.json")
		require.NoError(t, os.WriteFile(path, []byte(`["key"]`), 0o600))

		_, err := FromJSONFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JSON object")
	})

	t.Run("key field missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"other": "value"}`), 0o600))

		_, err := FromJSONFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not contain an API key")
	})

	t.Run("key field not a string", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"met_api_key": 7}`), 0o600))

		_, err := FromJSONFile(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromJSONFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "key.json")
	require.NoError(t, ToJSONFile(jsonPath, testAPIKey))
	txtPath := filepath.Join(dir, "key.txt")
	require.NoError(t, ToTextFile(txtPath, testAPIKey))

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	fromText, err := Load(txtPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromText)
}
