package components

import (
	"fmt"

	"showcase/internal/tui/common"
	"showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderBottomBar draws the bottom navigation. Entries are bound to f1..fN.
func RenderBottomBar(dests []common.Destination, s styles.Styles, width int) string {
	if len(dests) == 0 {
		return ""
	}
	cells := make([]string, len(dests))
	for i, d := range dests {
		style := s.Unselected
		if d.Selected {
			style = s.BottomSelected
		}
		if width > 0 {
			style = style.Width(max(width/len(dests), 1)).Align(lipgloss.Center)
		}
		cells[i] = style.Render(fmt.Sprintf("f%d %s", i+1, d.Title))
	}
	return s.BottomBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}
