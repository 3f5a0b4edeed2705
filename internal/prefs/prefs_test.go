package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"showcase/internal/errors"
	"showcase/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	s, err := OpenFile(path)
	require.NoError(t, err)
	_, ok := s.GetString(ThemeKey)
	assert.False(t, ok)

	require.NoError(t, s.PutString(ThemeKey, "Lavender"))
	v, ok := s.GetString(ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "Lavender", v)

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	v, ok = reopened.GetString(ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "Lavender", v)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStoreErrors(t *testing.T) {
	t.Run("corrupt file", func(t *testing.T) {
		path := testutils.WriteTestFile(t, t.TempDir(), "prefs.yaml", "user_theme_name: [oops")
		_, err := OpenFile(path)
		require.Error(t, err)
		assert.Equal(t, errors.PrefsReadFailed, errors.KindOf(err))
	})

	t.Run("empty file", func(t *testing.T) {
		path := testutils.WriteTestFile(t, t.TempDir(), "prefs.yaml", "")
		s, err := OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, s.PutString("k", "v"))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		blocker := testutils.WriteTestFile(t, t.TempDir(), "file", "x")

		s := &FileStore{path: filepath.Join(blocker, "prefs.yaml"), values: map[string]string{}}
		err := s.PutString(ThemeKey, "Ocean")
		require.Error(t, err)
		assert.True(t, errors.IsPrefsError(err))
		_, ok := s.GetString(ThemeKey)
		assert.False(t, ok, "failed write is rolled back")
	})
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(map[string]string{ThemeKey: "Baseline"})
	v, ok := m.GetString(ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "Baseline", v)
	assert.Equal(t, 0, m.Writes())

	require.NoError(t, m.PutString(ThemeKey, "Ocean"))
	assert.Equal(t, 1, m.Writes())

	m.FailWrites(fmt.Errorf("disk full"))
	err := m.PutString(ThemeKey, "Contrast")
	require.Error(t, err)
	assert.Equal(t, errors.PrefsWriteFailed, errors.KindOf(err))
	assert.Equal(t, 1, m.Writes())
	v, _ = m.GetString(ThemeKey)
	assert.Equal(t, "Ocean", v)
}
