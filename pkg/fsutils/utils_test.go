package fsutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("exists", func(t *testing.T) {
		exists, err := DirExists(tmpDir)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_exists", func(t *testing.T) {
		exists, err := DirExists(filepath.Join(tmpDir, "non_existent"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "file.txt")
		assert.NoError(t, os.WriteFile(filePath, []byte("test"), 0644))

		exists, err := DirExists(filePath)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("stat_error", func(t *testing.T) {
		origStat := osStat
		defer func() { osStat = origStat }()
		wantErr := errors.New("mock stat error")
		osStat = func(string) (os.FileInfo, error) { return nil, wantErr }

		_, err := DirExists("/any")
		assert.IsError(t, err, wantErr)
	})
}

func TestExpandHome(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})

	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})

	t.Run("tilde_only", func(t *testing.T) {
		home, err := os.UserHomeDir()
		assert.NoError(t, err)
		assert.Equal(t, home, ExpandHome("~"))
	})

	t.Run("tilde_prefix", func(t *testing.T) {
		home, err := os.UserHomeDir()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "docs"), ExpandHome("~/docs"))
	})

	t.Run("tilde_in_middle", func(t *testing.T) {
		assert.Equal(t, "/a/~/b", ExpandHome("/a/~/b"))
	})

	t.Run("home_dir_failure", func(t *testing.T) {
		origHome := osUserHomeDir
		defer func() { osUserHomeDir = origHome }()
		osUserHomeDir = func() (string, error) { return "", errors.New("no home") }

		assert.Equal(t, "~/docs", ExpandHome("~/docs"))
	})
}
