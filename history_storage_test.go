package lineedit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistoryStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s := NewFileHistoryStorage(path)

	entries := []string{"ls -la", "echo hi", "cat file"}
	require.NoError(t, s.Save(entries))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestFileHistoryStorageEscapesSpecialBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s := NewFileHistoryStorage(path)

	entries := []string{"multi\nline", "back\\slash", "both\\\nmixed"}
	require.NoError(t, s.Save(entries))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestFileHistoryStorageMissingFileLoadsEmpty(t *testing.T) {
	s := NewFileHistoryStorage(filepath.Join(t.TempDir(), "does-not-exist"))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileHistoryStorageCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history")
	s := NewFileHistoryStorage(path)

	require.NoError(t, s.Save([]string{"entry"}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileHistoryStorageSaveReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s := NewFileHistoryStorage(path)

	require.NoError(t, s.Save([]string{"old one", "old two"}))
	require.NoError(t, s.Save([]string{"new"}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, loaded)
}
