package views

import (
	"strings"

	"showcase/internal/tui/common"
	"showcase/internal/tui/components"
)

// RenderMainView draws the chrome around the active destination.
func RenderMainView(m common.ModelReader) string {
	s := m.Styles()
	st := m.Chrome()
	var sb strings.Builder

	if st.SearchMode {
		sb.WriteString(renderSearchBar(m))
	} else {
		sb.WriteString(components.RenderTopBar(st, s, m.Width(), m.Collapsed()))
	}
	sb.WriteString("\n")

	if m.TabStripVisible() {
		sb.WriteString(components.RenderTabStrip(m.Tabs(), m.SelectedTab(), s, m.Width()) + "\n")
	}

	switch m.Mode() {
	case common.Overflow:
		sb.WriteString(components.RenderOverflowMenu(st.OverflowItems, m.Cursor(), s) + "\n")
	case common.ThemeDialog:
		sb.WriteString(s.Dialog.Render(m.DialogView()) + "\n")
	default:
		sb.WriteString(RenderContent(m))
	}

	if status := m.StatusView(); status != "" {
		sb.WriteString("\n" + status)
	}
	if st.BottomBarVisible {
		sb.WriteString("\n" + components.RenderBottomBar(m.Destinations(), s, m.Width()))
	}
	sb.WriteString("\n" + m.HelpView())

	return s.App.Render(sb.String())
}

func renderSearchBar(m common.ModelReader) string {
	s := m.Styles()
	var b strings.Builder
	if m.Chrome().NavigationIconVisible {
		b.WriteString(s.NavIcon.Render("esc"))
	}
	b.WriteString(m.SearchView())
	return s.TopBar.Render(b.String())
}

// RenderContent draws the destination body and its selectable items.
func RenderContent(m common.ModelReader) string {
	s := m.Styles()
	var b strings.Builder
	if body := m.Body(); body != "" {
		b.WriteString(body + "\n")
	}
	items := m.Items()
	if len(items) == 0 && m.Body() == "" {
		b.WriteString(s.Subtitle.Render("Nothing here yet") + "\n")
	}
	for i, it := range items {
		title := s.Unselected.Render("  " + it.Title)
		if i == m.Cursor() {
			title = s.Selected.Render("> " + it.Title)
		}
		b.WriteString(title)
		if it.Subtitle != "" {
			b.WriteString(" " + s.Subtitle.Render(it.Subtitle))
		}
		b.WriteString("\n")
	}
	return b.String()
}
