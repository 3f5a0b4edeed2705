package tui

import (
	"strings"

	"showcase/internal/screen"
	"showcase/internal/tui/common"
	"showcase/internal/tui/components"
)

// Items returns the selectable entries of the active destination.
func (m *Model) Items() []common.Item {
	return m.engine.Items(m.search.Value())
}

// Body returns the static text of the active destination, customization
// forms included.
func (m *Model) Body() string {
	s := m.Styles()
	lines := m.engine.Summary()

	var b strings.Builder
	for i, line := range lines {
		switch {
		case i == 0 && m.engine.Observer.Snapshot().CurrentRoute == screen.RouteAbout:
			b.WriteString(s.Title.Render(line))
		case strings.HasSuffix(line, "()"):
			b.WriteString(s.Unselected.Render(line))
		default:
			b.WriteString(s.Subtitle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.topBar != nil {
		b.WriteString("\n" + components.RenderControls("Customize", m.topBar.Controls(), m.topBar.Cursor(), s))
	}
	if m.tabsDemo != nil {
		cfg := m.engine.Tabs.Snapshot()
		if page := m.engine.Tabs.SelectedPage(); page >= 0 && page < len(cfg.Tabs) {
			b.WriteString(s.Subtitle.Render("Page: "+cfg.Tabs[page].Title) + "\n")
		}
		b.WriteString("\n" + components.RenderControls("Customize", m.tabsDemo.Controls(), m.tabsDemo.Cursor(), s))
	}
	return strings.TrimRight(b.String(), "\n")
}
