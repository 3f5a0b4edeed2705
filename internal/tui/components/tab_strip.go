package components

import (
	"strings"

	"showcase/internal/tabs"
	"showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func tabLabel(t tabs.Tab, cfg tabs.Configuration) string {
	switch {
	case cfg.IconEnabled && cfg.TextEnabled && cfg.IconPosition == tabs.IconTop:
		return lipgloss.JoinVertical(lipgloss.Center, t.Icon, t.Title)
	case cfg.IconEnabled && cfg.TextEnabled:
		return t.Icon + " " + t.Title
	case cfg.IconEnabled:
		return t.Icon
	default:
		return t.Title
	}
}

// RenderTabStrip draws the tab strip. Fixed strips share the width evenly;
// scrollable strips keep the selected tab in view.
func RenderTabStrip(cfg tabs.Configuration, selected int, s styles.Styles, width int) string {
	if len(cfg.Tabs) == 0 {
		return ""
	}
	cells := make([]string, 0, len(cfg.Tabs))
	for i, t := range cfg.Tabs {
		style := s.Tab
		if i == selected {
			style = s.TabSelected
		}
		if !cfg.Scrollable && width > 0 {
			style = style.Width(max(width/len(cfg.Tabs), 1)).Align(lipgloss.Center)
		}
		cells = append(cells, style.Render(tabLabel(t, cfg)))
	}
	if !cfg.Scrollable || width <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	start := 0
	for start < selected && lipgloss.Width(strings.Join(cells[start:selected+1], "")) > width {
		start++
	}
	end := start
	for end < len(cells) && lipgloss.Width(strings.Join(cells[start:end+1], "")) <= width {
		end++
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells[start:max(end, start+1)]...)
}
