package components

import (
	"showcase/internal/theme"
	"showcase/internal/tui/styles"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type themeItem struct {
	name    string
	current bool
}

func (i themeItem) Title() string       { return i.name }
func (i themeItem) FilterValue() string { return i.name }
func (i themeItem) Description() string {
	if i.current {
		return "current"
	}
	return ""
}

// ThemeDialog lists the available themes with the current one preselected.
type ThemeDialog struct {
	list list.Model
}

func NewThemeDialog(snap theme.Snapshot, s styles.Styles) *ThemeDialog {
	items := make([]list.Item, len(snap.Available))
	selected := 0
	for i, t := range snap.Available {
		cur := t.Name == snap.Current.Name
		if cur {
			selected = i
		}
		items[i] = themeItem{name: t.Name, current: cur}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(s.Selected.GetForeground()).BorderForeground(s.Selected.GetForeground())
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(s.Subtitle.GetForeground()).BorderForeground(s.Selected.GetForeground())

	l := list.New(items, delegate, 32, len(items)*3+4)
	l.Title = "Change theme"
	l.Styles.Title = s.Title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(selected)
	return &ThemeDialog{list: l}
}

func (d *ThemeDialog) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return cmd
}

// Selected returns the highlighted theme name.
func (d *ThemeDialog) Selected() string {
	if it, ok := d.list.SelectedItem().(themeItem); ok {
		return it.name
	}
	return ""
}

func (d *ThemeDialog) View() string {
	return d.list.View()
}
