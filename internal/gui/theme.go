//go:build !nogui
// +build !nogui

package gui

import (
	"image/color"

	"showcase/internal/log"
	"showcase/internal/prefs"
	"showcase/internal/theme"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// paletteTheme paints fyne widgets with a showcase palette. Fonts, icons and
// sizes come from the default theme.
type paletteTheme struct {
	palette theme.Palette
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*paletteTheme)(nil)

func newPaletteTheme(p theme.Palette, dark bool) fyne.Theme {
	variant := fynetheme.VariantLight
	if dark {
		variant = fynetheme.VariantDark
	}
	return &paletteTheme{palette: p, variant: variant}
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	var hex string
	switch name {
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		hex = t.palette.Primary
	case fynetheme.ColorNameBackground:
		hex = t.palette.Surface
	case fynetheme.ColorNameForeground:
		hex = t.palette.OnSurface
	case fynetheme.ColorNameDisabled, fynetheme.ColorNamePlaceHolder:
		hex = t.palette.Muted
	case fynetheme.ColorNameHyperlink:
		hex = t.palette.Accent
	}
	if c, ok := hexColor(hex); ok {
		return c
	}
	return fynetheme.DefaultTheme().Color(name, t.variant)
}

func (t *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *paletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *paletteTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

func hexColor(hex string) (color.Color, bool) {
	if hex == "" {
		return nil, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		log.Warnf("invalid palette colour %q: %v", hex, err)
		return nil, false
	}
	return c, true
}

// PreferencesStore keeps preferences in the fyne application preferences.
type PreferencesStore struct {
	p fyne.Preferences
}

var _ prefs.Store = (*PreferencesStore)(nil)

// NewPreferencesStore wraps p.
func NewPreferencesStore(p fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{p: p}
}

func (s *PreferencesStore) GetString(key string) (string, bool) {
	v := s.p.String(key)
	return v, v != ""
}

func (s *PreferencesStore) PutString(key, value string) error {
	s.p.SetString(key, value)
	return nil
}
