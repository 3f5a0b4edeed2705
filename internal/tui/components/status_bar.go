package components

import (
	"showcase/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows the last chrome message, such as a placeholder action tap
// or the selected theme, with a spinner while the stored theme loads.
type StatusBar struct {
	message string
	busy    bool
	style   lipgloss.Style
	spin    spinner.Model
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{spin: spinner.New(spinner.WithSpinner(spinner.Dot))}
	sb.SetStyle(styles.Theme.Help)
	return sb
}

func (sb *StatusBar) Init() tea.Cmd { return sb.spin.Tick }

func (sb *StatusBar) SetLoading(busy bool) { sb.busy = busy }
func (sb *StatusBar) Loading() bool        { return sb.busy }
func (sb *StatusBar) SetText(msg string)   { sb.message = msg }
func (sb *StatusBar) Text() string         { return sb.message }

// SetStyle follows theme and mode changes.
func (sb *StatusBar) SetStyle(style lipgloss.Style) {
	sb.style = style
	sb.spin.Style = style
}

// Update advances the spinner. Ticks are dropped once loading ends, which
// stops the tick loop.
func (sb *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if !sb.busy {
		return nil
	}
	var cmd tea.Cmd
	sb.spin, cmd = sb.spin.Update(msg)
	return cmd
}

func (sb *StatusBar) View() string {
	line := sb.message
	if sb.busy {
		line = sb.spin.View() + " " + line
	}
	if line == "" {
		return ""
	}
	return sb.style.Render(line)
}
