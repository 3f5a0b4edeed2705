package styles

import (
	"showcase/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the chrome styles derived from one theme palette.
type Styles struct {
	App            lipgloss.Style
	TopBar         lipgloss.Style
	Title          lipgloss.Style
	LargeTitle     lipgloss.Style
	Action         lipgloss.Style
	NavIcon        lipgloss.Style
	Tab            lipgloss.Style
	TabSelected    lipgloss.Style
	BottomBar      lipgloss.Style
	BottomSelected lipgloss.Style
	Selected       lipgloss.Style
	Unselected     lipgloss.Style
	Subtitle       lipgloss.Style
	Menu           lipgloss.Style
	Dialog         lipgloss.Style
	Help           lipgloss.Style
}

// New builds the styles for palette p.
func New(p theme.Palette) Styles {
	primary := lipgloss.Color(p.Primary)
	onPrimary := lipgloss.Color(p.OnPrimary)
	surface := lipgloss.Color(p.Surface)
	onSurface := lipgloss.Color(p.OnSurface)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		TopBar: lipgloss.NewStyle().
			Foreground(onSurface).
			Background(surface).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(onSurface),
		LargeTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(1, 1, 0, 1),
		Action: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),
		NavIcon: lipgloss.NewStyle().
			Foreground(onSurface).
			PaddingRight(1),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		TabSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		BottomBar: lipgloss.NewStyle().
			Foreground(muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(muted),
		BottomSelected: lipgloss.NewStyle().
			Foreground(onPrimary).
			Background(primary).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(onSurface),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// Theme holds the styles of the brand palette in light mode. Components use
// it until a palette is applied.
var Theme = New(theme.Builtin()[0].Light)
