//go:build !nogui
// +build !nogui

package gui

import (
	"showcase/internal/action"
	"showcase/internal/chrome"
	"showcase/internal/tabs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// build lays out the chrome around the destination content.
func (a *App) build() fyne.CanvasObject {
	st := a.engine.State()

	top := container.NewVBox(a.buildTopBar(st))
	a.tabButtons = nil
	if a.engine.Chrome.TabStripVisible() {
		top.Add(a.buildTabStrip())
	}

	bottom := container.NewVBox(widget.NewSeparator(), a.status)
	a.destButtons = nil
	if st.BottomBarVisible {
		bottom.Add(a.buildBottomBar())
	}
	return container.NewBorder(top, bottom, nil, nil, a.buildContent(st))
}

func (a *App) buildTopBar(st chrome.State) fyne.CanvasObject {
	a.navButton, a.overflowButton, a.actionButtons = nil, nil, nil
	a.smallTitle, a.largeTitle = nil, nil

	if st.SearchMode {
		a.navButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.back)
		return container.NewBorder(nil, nil, a.navButton, nil, a.search)
	}

	var left fyne.CanvasObject
	if st.NavigationIconVisible {
		a.navButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.back)
		left = a.navButton
	}

	actions := container.NewHBox()
	for _, ab := range st.Actions {
		ab := ab
		var b *widget.Button
		if ab.Custom {
			b = widget.NewButton(ab.Icon, func() { a.tapAction(ab) })
		} else {
			b = widget.NewButtonWithIcon("", actionIcon(ab), func() { a.tapAction(ab) })
		}
		b.Importance = widget.LowImportance
		a.actionButtons = append(a.actionButtons, b)
		actions.Add(b)
	}
	if len(st.OverflowItems) > 0 {
		items := st.OverflowItems
		a.overflowButton = widget.NewButtonWithIcon("", theme.MoreVerticalIcon(), func() { a.showOverflow(items) })
		a.overflowButton.Importance = widget.LowImportance
		actions.Add(a.overflowButton)
	}

	a.smallTitle = widget.NewLabelWithStyle(st.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.smallTitle.Truncation = fyne.TextTruncateEllipsis
	bar := container.NewBorder(nil, nil, left, actions, a.smallTitle)
	if !st.IsLarge {
		return bar
	}

	a.largeTitle = widget.NewLabelWithStyle(st.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.largeTitle.Wrapping = fyne.TextWrapWord
	if a.collapsed {
		a.largeTitle.Hide()
	} else {
		a.smallTitle.Hide()
	}
	return container.NewVBox(bar, a.largeTitle)
}

func actionIcon(b chrome.ActionButton) fyne.Resource {
	switch b.Action {
	case action.Search:
		return theme.SearchIcon()
	case action.ChangeTheme:
		return theme.ColorPaletteIcon()
	case action.ChangeMode:
		if b.Icon == chrome.IconDarkMode {
			return theme.VisibilityOffIcon()
		}
		return theme.VisibilityIcon()
	}
	return theme.InfoIcon()
}

func (a *App) showOverflow(items []chrome.OverflowItem) {
	menu := fyne.NewMenu(a.engine.Catalog.Resolve("top_app_bar_overflow_menu"))
	for _, it := range items {
		title := it.Title
		menu.Items = append(menu.Items, fyne.NewMenuItem(title, func() { a.setStatus(title + " clicked") }))
	}
	pos := a.fyneApp.Driver().AbsolutePositionForObject(a.overflowButton)
	pos = pos.Add(fyne.NewPos(0, a.overflowButton.Size().Height))
	widget.ShowPopUpMenuAtPosition(menu, a.mainWindow.Canvas(), pos)
}

// setCollapsed swaps the large title for the small one while the content is
// scrolled.
func (a *App) setCollapsed(collapsed bool) {
	if a.largeTitle == nil || collapsed == a.collapsed {
		return
	}
	a.collapsed = collapsed
	if collapsed {
		a.largeTitle.Hide()
		a.smallTitle.Show()
	} else {
		a.smallTitle.Hide()
		a.largeTitle.Show()
	}
}

func (a *App) buildTabStrip() fyne.CanvasObject {
	cfg := a.engine.Tabs.Snapshot()
	selected := a.engine.Tabs.SelectedPage()

	cells := make([]fyne.CanvasObject, 0, len(cfg.Tabs))
	for i, t := range cfg.Tabs {
		page := i
		b := widget.NewButton(tabText(t, cfg), func() { a.selectTab(page) })
		b.Importance = widget.LowImportance
		if i == selected {
			b.Importance = widget.HighImportance
		}
		a.tabButtons = append(a.tabButtons, b)

		if cfg.IconEnabled && cfg.TextEnabled && cfg.IconPosition == tabs.IconTop {
			icon := widget.NewLabelWithStyle(t.Icon, fyne.TextAlignCenter, fyne.TextStyle{})
			cells = append(cells, container.NewVBox(icon, b))
			continue
		}
		cells = append(cells, b)
	}

	if cfg.Scrollable {
		return container.NewHScroll(container.NewHBox(cells...))
	}
	return container.NewGridWithColumns(len(cells), cells...)
}

func tabText(t tabs.Tab, cfg tabs.Configuration) string {
	switch {
	case !cfg.TextEnabled:
		return t.Icon
	case !cfg.IconEnabled, cfg.IconPosition == tabs.IconTop:
		return t.Title
	default:
		return t.Icon + " " + t.Title
	}
}

func (a *App) buildBottomBar() fyne.CanvasObject {
	current := a.engine.Observer.Snapshot().CurrentRoute
	routes := a.engine.Registry.HomeRoutes()

	cells := make([]fyne.CanvasObject, 0, len(routes))
	for _, route := range routes {
		route := route
		desc, _ := a.engine.Registry.Lookup(route)
		b := widget.NewButton(a.engine.Catalog.Resolve(desc.Title), func() { a.openDestination(route) })
		b.Importance = widget.LowImportance
		if route == current {
			b.Importance = widget.HighImportance
		}
		a.destButtons = append(a.destButtons, b)
		cells = append(cells, b)
	}
	return container.NewGridWithColumns(len(cells), cells...)
}

func (a *App) buildContent(st chrome.State) fyne.CanvasObject {
	body := container.NewVBox()
	for _, line := range a.engine.Summary() {
		l := widget.NewLabel(line)
		l.Wrapping = fyne.TextWrapWord
		body.Add(l)
	}
	if a.tabsDemo != nil {
		cfg := a.engine.Tabs.Snapshot()
		if page := a.engine.Tabs.SelectedPage(); page >= 0 {
			body.Add(widget.NewLabel("Page: " + cfg.Tabs[page].Title))
		}
	}

	a.fillItems()
	body.Add(a.items)
	if a.topBar != nil {
		body.Add(a.topBarForm())
	}
	if a.tabsDemo != nil {
		body.Add(a.tabsForm())
	}

	scroll := container.NewVScroll(body)
	if st.IsLarge && st.HasScrollBehavior {
		scroll.OnScrolled = func(p fyne.Position) { a.setCollapsed(p.Y > 0) }
	}
	return scroll
}

// fillItems replaces the selectable entries, keeping the container in place
// so typing in the search field does not rebuild the window.
func (a *App) fillItems() {
	a.items.Objects = nil
	a.itemButtons = nil
	for _, it := range a.engine.Items(a.search.Text) {
		it := it
		text := it.Title
		if it.Subtitle != "" {
			text += " - " + it.Subtitle
		}
		b := widget.NewButton(text, func() { a.open(it) })
		b.Alignment = widget.ButtonAlignLeading
		a.itemButtons = append(a.itemButtons, b)
		a.items.Add(b)
	}
	if len(a.itemButtons) == 0 && a.engine.State().SearchMode {
		a.items.Add(widget.NewLabel("Nothing here yet"))
	}
	a.items.Refresh()
}
