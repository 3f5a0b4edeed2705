// Package theme holds the active theme and dark mode flag.
package theme

import (
	"showcase/internal/errors"
	"showcase/internal/log"
	"showcase/internal/prefs"
)

// Palette is a set of hex colours used by the renderers.
type Palette struct {
	Primary   string
	OnPrimary string
	Surface   string
	OnSurface string
	Muted     string
	Accent    string
}

// Theme is a selectable colour theme.
type Theme struct {
	Name  string
	Brand bool
	Light Palette
	Dark  Palette
}

// Palette returns the palette for the given mode.
func (t Theme) Palette(dark bool) Palette {
	if dark {
		return t.Dark
	}
	return t.Light
}

// Builtin returns the themes shipped with the showcase. The first one is the
// brand theme.
func Builtin() []Theme {
	return []Theme{
		{
			Name:  "Baseline",
			Brand: true,
			Light: Palette{Primary: "#FF7900", OnPrimary: "#000000", Surface: "#FFFFFF", OnSurface: "#000000", Muted: "#767676", Accent: "#4BB4E6"},
			Dark:  Palette{Primary: "#FF7900", OnPrimary: "#000000", Surface: "#1B1B1B", OnSurface: "#FFFFFF", Muted: "#999999", Accent: "#4BB4E6"},
		},
		{
			Name:  "Lavender",
			Light: Palette{Primary: "#4F4FB7", OnPrimary: "#FFFFFF", Surface: "#F5F3FF", OnSurface: "#1C1B29", Muted: "#6E6A86", Accent: "#A885D8"},
			Dark:  Palette{Primary: "#A8A8FF", OnPrimary: "#14143A", Surface: "#1C1B29", OnSurface: "#ECEAFF", Muted: "#959595", Accent: "#C9A7F5"},
		},
		{
			Name:  "Ocean",
			Light: Palette{Primary: "#006D8F", OnPrimary: "#FFFFFF", Surface: "#F2FAFD", OnSurface: "#0E1D24", Muted: "#5B7480", Accent: "#50BE87"},
			Dark:  Palette{Primary: "#81A1C1", OnPrimary: "#0E1D24", Surface: "#10202A", OnSurface: "#E3F2F8", Muted: "#8FA6B2", Accent: "#88C0A0"},
		},
		{
			Name:  "Contrast",
			Light: Palette{Primary: "#000000", OnPrimary: "#FFFFFF", Surface: "#FFFFFF", OnSurface: "#000000", Muted: "#333333", Accent: "#0000EE"},
			Dark:  Palette{Primary: "#FFFFFF", OnPrimary: "#000000", Surface: "#000000", OnSurface: "#FFFFFF", Muted: "#CCCCCC", Accent: "#FFD200"},
		},
	}
}

// Snapshot is a read-only view of the theme state.
type Snapshot struct {
	Available []Theme
	Current   Theme
	DarkMode  bool
	Loaded    bool // false while provisional defaults are served
}

// State is the theme state container. It is not safe for concurrent use.
type State struct {
	themes   []Theme
	current  int
	dark     bool
	loaded   bool
	fallback string
	store    prefs.Store
}

// Option configures a State.
type Option func(*State)

// WithFallback names the theme used when nothing valid is stored. It takes
// precedence over the brand theme.
func WithFallback(name string) Option {
	return func(s *State) { s.fallback = name }
}

// WithDarkMode seeds the dark mode flag, usually from the system preference.
func WithDarkMode(dark bool) Option {
	return func(s *State) { s.dark = dark }
}

// NewState creates a theme state over themes, persisting selections to store.
// Until Seed runs, the state serves the fallback, brand or first theme.
func NewState(themes []Theme, store prefs.Store, opts ...Option) (*State, error) {
	if len(themes) == 0 {
		return nil, errors.ErrNoThemes
	}
	s := &State{themes: append([]Theme(nil), themes...), store: store}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.resolve("")
	return s, nil
}

// LoadStored reads the persisted theme name. It only touches the store and may
// run off the UI goroutine.
func (s *State) LoadStored() (string, bool) {
	if s.store == nil {
		return "", false
	}
	return s.store.GetString(prefs.ThemeKey)
}

// Seed applies the persisted theme name: stored theme, then fallback, then
// brand, then first. It does not write to the store.
func (s *State) Seed(stored string) {
	s.current = s.resolve(stored)
	s.loaded = true
	log.With(log.F("stored", stored), log.F("theme", s.themes[s.current].Name)).Debug("theme seeded")
}

func (s *State) resolve(stored string) int {
	for _, name := range []string{stored, s.fallback} {
		if name == "" {
			continue
		}
		if i := s.index(name); i >= 0 {
			return i
		}
	}
	for i, t := range s.themes {
		if t.Brand {
			return i
		}
	}
	return 0
}

func (s *State) index(name string) int {
	for i, t := range s.themes {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Select applies the named theme immediately and persists it. Selecting the
// current theme changes nothing and writes nothing. The theme stays applied
// even when persisting fails; the store error is returned.
func (s *State) Select(name string) (changed bool, err error) {
	i := s.index(name)
	if i < 0 {
		return false, errors.NewThemeError("unknown theme", name, errors.UnknownTheme, nil)
	}
	if i == s.current {
		return false, nil
	}
	s.current = i
	if s.store == nil {
		return true, nil
	}
	if err := s.store.PutString(prefs.ThemeKey, name); err != nil {
		return true, errors.Wrapf(err, "persist theme %s", name)
	}
	log.With(log.F("theme", name)).Debug("theme selected")
	return true, nil
}

// Current returns the active theme.
func (s *State) Current() Theme { return s.themes[s.current] }

// Available returns the selectable themes.
func (s *State) Available() []Theme { return append([]Theme(nil), s.themes...) }

// Names returns the names of the selectable themes.
func (s *State) Names() []string {
	names := make([]string, len(s.themes))
	for i, t := range s.themes {
		names[i] = t.Name
	}
	return names
}

// DarkMode reports whether dark mode is on.
func (s *State) DarkMode() bool { return s.dark }

// SetDarkMode sets the dark mode flag.
func (s *State) SetDarkMode(dark bool) { s.dark = dark }

// ToggleDarkMode flips dark mode and returns the new value.
func (s *State) ToggleDarkMode() bool {
	s.dark = !s.dark
	return s.dark
}

// Loaded reports whether Seed has run.
func (s *State) Loaded() bool { return s.loaded }

// Palette returns the active palette.
func (s *State) Palette() Palette { return s.Current().Palette(s.dark) }

// Snapshot returns a copy of the state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Available: s.Available(),
		Current:   s.Current(),
		DarkMode:  s.dark,
		Loaded:    s.loaded,
	}
}
