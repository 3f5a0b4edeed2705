package components

import (
	"fmt"
	"strings"

	"showcase/internal/chrome"
	"showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderTopBar draws the top bar for st. A large bar renders its title on
// its own lines unless collapsed. Each action is prefixed with its key.
func RenderTopBar(st chrome.State, s styles.Styles, width int, collapsed bool) string {
	var left strings.Builder
	if st.NavigationIconVisible {
		left.WriteString(s.NavIcon.Render(chrome.IconBack))
	}
	large := st.IsLarge && !collapsed
	if !large {
		left.WriteString(s.Title.Render(st.Title))
	}

	var right strings.Builder
	for i, a := range st.Actions {
		right.WriteString(s.Action.Render(fmt.Sprintf("%d:%s", i+1, a.Icon)))
	}
	if len(st.OverflowItems) > 0 {
		right.WriteString(s.Action.Render("m:" + chrome.IconOverflow))
	}

	l, r := left.String(), right.String()
	gap := max(width-lipgloss.Width(l)-lipgloss.Width(r)-2, 1)
	bar := s.TopBar.Render(l + strings.Repeat(" ", gap) + r)
	if !large {
		return bar
	}
	title := st.Title
	if width > 4 {
		title = lipgloss.NewStyle().Width(width - 4).MaxHeight(2).Render(title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, s.LargeTitle.Render(title))
}

// RenderOverflowMenu draws the overflow menu entries.
func RenderOverflowMenu(items []chrome.OverflowItem, cursor int, s styles.Styles) string {
	var b strings.Builder
	for i, it := range items {
		line := it.Title + " " + s.Subtitle.Render(it.Subtitle)
		if i == cursor {
			b.WriteString(s.Selected.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return s.Menu.Render(b.String())
}
