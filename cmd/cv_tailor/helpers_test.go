package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadTextInput(t *testing.T) {
	t.Run("flag takes precedence", func(t *testing.T) {
		path := writeTempFile(t, "file text")
		text, err := readTextInput("flag text", []string{path})
		require.NoError(t, err)
		assert.Equal(t, "flag text", text)
	})

	t.Run("file argument", func(t *testing.T) {
		path := writeTempFile(t, "file text")
		text, err := readTextInput("", []string{path})
		require.NoError(t, err)
		assert.Equal(t, "file text", text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readTextInput("", []string{filepath.Join(t.TempDir(), "absent.txt")})
		assert.Error(t, err)
	})
}

func TestResolveArg(t *testing.T) {
	t.Run("literal value", func(t *testing.T) {
		value, err := resolveArg("Shipped the thing.")
		require.NoError(t, err)
		assert.Equal(t, "Shipped the thing.", value)
	})

	t.Run("file reference", func(t *testing.T) {
		path := writeTempFile(t, "Shipped the thing.\n")
		value, err := resolveArg("@" + path)
		require.NoError(t, err)
		assert.Equal(t, "Shipped the thing.", value)
	})

	t.Run("missing file reference", func(t *testing.T) {
		_, err := resolveArg("@" + filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}

func TestReadUnits(t *testing.T) {
	path := writeTempFile(t, "first unit\n\n  second unit  \n\nthird unit\n")
	units, err := readUnits(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first unit", "second unit", "third unit"}, units)
}
