package theme

import (
	"fmt"
	"testing"

	"showcase/internal/errors"
	"showcase/internal/prefs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	_, err := NewState(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoThemes)

	s, err := NewState(Builtin(), nil, WithDarkMode(true))
	require.NoError(t, err)
	assert.Equal(t, "Baseline", s.Current().Name)
	assert.True(t, s.DarkMode())
	assert.False(t, s.Loaded())
	assert.Equal(t, s.Current().Dark, s.Palette())
}

func TestSeedOrder(t *testing.T) {
	noBrand := []Theme{{Name: "One"}, {Name: "Two"}}

	tests := []struct {
		name     string
		themes   []Theme
		fallback string
		stored   string
		want     string
	}{
		{"stored theme wins", Builtin(), "Ocean", "Lavender", "Lavender"},
		{"unknown stored uses fallback", Builtin(), "Ocean", "Neon", "Ocean"},
		{"no stored uses fallback", Builtin(), "Contrast", "", "Contrast"},
		{"unknown fallback uses brand", Builtin(), "Neon", "", "Baseline"},
		{"no brand uses first", noBrand, "", "", "One"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := prefs.NewMemoryStore(nil)
			s, err := NewState(tt.themes, store, WithFallback(tt.fallback))
			require.NoError(t, err)
			s.Seed(tt.stored)
			assert.Equal(t, tt.want, s.Current().Name)
			assert.True(t, s.Loaded())
			assert.Equal(t, 0, store.Writes(), "seeding never writes")
		})
	}
}

func TestLoadStored(t *testing.T) {
	store := prefs.NewMemoryStore(map[string]string{prefs.ThemeKey: "Ocean"})
	s, err := NewState(Builtin(), store)
	require.NoError(t, err)

	name, ok := s.LoadStored()
	require.True(t, ok)
	s.Seed(name)
	assert.Equal(t, "Ocean", s.Current().Name)

	bare, err := NewState(Builtin(), nil)
	require.NoError(t, err)
	_, ok = bare.LoadStored()
	assert.False(t, ok)
}

func TestSelect(t *testing.T) {
	store := prefs.NewMemoryStore(nil)
	s, err := NewState(Builtin(), store)
	require.NoError(t, err)

	t.Run("selecting the current theme does not write", func(t *testing.T) {
		changed, err := s.Select("Baseline")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 0, store.Writes())
	})

	t.Run("new theme applies and persists", func(t *testing.T) {
		changed, err := s.Select("Lavender")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Lavender", s.Current().Name)
		assert.Equal(t, 1, store.Writes())
		v, _ := store.GetString(prefs.ThemeKey)
		assert.Equal(t, "Lavender", v)

		changed, err = s.Select("Lavender")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 1, store.Writes())
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := s.Select("Neon")
		require.Error(t, err)
		assert.True(t, errors.IsUnknownTheme(err))
		assert.Equal(t, "Lavender", s.Current().Name)
	})

	t.Run("store failure keeps the selection", func(t *testing.T) {
		store.FailWrites(fmt.Errorf("read-only"))
		defer store.FailWrites(nil)
		changed, err := s.Select("Ocean")
		assert.True(t, changed)
		require.Error(t, err)
		assert.True(t, errors.IsPrefsError(err))
		assert.Equal(t, "Ocean", s.Current().Name)
	})
}

func TestDarkMode(t *testing.T) {
	s, err := NewState(Builtin(), nil)
	require.NoError(t, err)
	assert.False(t, s.DarkMode())
	assert.True(t, s.ToggleDarkMode())
	assert.False(t, s.ToggleDarkMode())
	s.SetDarkMode(true)

	snap := s.Snapshot()
	assert.True(t, snap.DarkMode)
	assert.Len(t, snap.Available, 4)
	assert.Equal(t, []string{"Baseline", "Lavender", "Ocean", "Contrast"}, s.Names())
}
