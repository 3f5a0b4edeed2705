//go:build !nogui
// +build !nogui

package gui

import (
	"strconv"

	"showcase/internal/chrome"
	"showcase/internal/demo"
	"showcase/internal/tabs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// topBarForm edits the customizable top bar of the current destination.
func (a *App) topBarForm() fyne.CanvasObject {
	c := a.topBar

	navCheck := widget.NewCheck("Navigation icon", nil)
	navCheck.Checked = c.NavigationIcon
	navCheck.OnChanged = func(on bool) {
		c.NavigationIcon = on
		a.applyTopBar()
	}

	counts := make([]string, 0, demo.MaxActionCount+1)
	for n := 0; n <= c.MaxSelectableActions(); n++ {
		counts = append(counts, strconv.Itoa(n))
	}
	actionsSelect := widget.NewSelect(counts, nil)
	actionsSelect.Selected = strconv.Itoa(c.ActionCount)
	actionsSelect.OnChanged = func(v string) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return
		}
		c.SetActionCount(n)
		a.applyTopBar()
	}

	overflowCheck := widget.NewCheck("Overflow menu", nil)
	overflowCheck.Checked = c.Overflow
	if !c.OverflowSelectable() {
		overflowCheck.Disable()
	}
	overflowCheck.OnChanged = func(on bool) {
		if c.SetOverflow(on) {
			a.applyTopBar()
		}
	}

	rows := []fyne.CanvasObject{
		navCheck,
		container.NewHBox(widget.NewLabel("Actions"), actionsSelect),
		overflowCheck,
	}

	if c.Large {
		var titles []string
		for t := demo.TitleShort; t <= demo.TitleLong; t++ {
			titles = append(titles, t.String())
		}
		titleSelect := widget.NewSelect(titles, nil)
		titleSelect.Selected = c.Title.String()
		titleSelect.OnChanged = func(v string) {
			for t := demo.TitleShort; t <= demo.TitleLong; t++ {
				if t.String() == v {
					c.Title = t
				}
			}
			a.applyTopBar()
		}

		scrollCheck := widget.NewCheck("Collapse on scroll", nil)
		scrollCheck.Checked = c.Scroll == chrome.Collapsible
		scrollCheck.OnChanged = func(on bool) {
			c.Scroll = chrome.NoScroll
			if on {
				c.Scroll = chrome.Collapsible
			}
			a.applyTopBar()
		}
		rows = append(rows, container.NewHBox(widget.NewLabel("Title"), titleSelect), scrollCheck)
	}

	return widget.NewCard("Customize", "", container.NewVBox(rows...))
}

func (a *App) applyTopBar() {
	a.engine.ApplyTopBar(a.topBar)
	a.refresh()
}

// tabsForm edits the tab strip of the current destination.
func (a *App) tabsForm() fyne.CanvasObject {
	c := a.tabsDemo

	lo, hi := c.Bounds()
	var counts []string
	for n := lo; n <= hi; n++ {
		counts = append(counts, strconv.Itoa(n))
	}
	countSelect := widget.NewSelect(counts, nil)
	countSelect.Selected = strconv.Itoa(c.Count)
	countSelect.OnChanged = func(v string) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return
		}
		c.SetCount(n)
		a.applyTabs()
	}

	iconCheck := widget.NewCheck("Icon", nil)
	iconCheck.Checked = c.IconEnabled
	if !c.TextEnabled {
		iconCheck.Disable()
	}
	iconCheck.OnChanged = func(on bool) {
		if c.SetIconEnabled(on) {
			a.applyTabs()
		}
	}

	textCheck := widget.NewCheck("Text", nil)
	textCheck.Checked = c.TextEnabled
	if !c.IconEnabled {
		textCheck.Disable()
	}
	textCheck.OnChanged = func(on bool) {
		if c.SetTextEnabled(on) {
			a.applyTabs()
		}
	}

	positionSelect := widget.NewSelect([]string{tabs.IconTop.String(), tabs.IconLeading.String()}, nil)
	positionSelect.Selected = c.IconPosition.String()
	if !c.IconEnabled || !c.TextEnabled {
		positionSelect.Disable()
	}
	positionSelect.OnChanged = func(v string) {
		c.IconPosition = tabs.IconTop
		if v == tabs.IconLeading.String() {
			c.IconPosition = tabs.IconLeading
		}
		a.applyTabs()
	}

	return widget.NewCard("Customize", "", container.NewVBox(
		container.NewHBox(widget.NewLabel("Tabs"), countSelect),
		iconCheck,
		textCheck,
		container.NewHBox(widget.NewLabel("Icon position"), positionSelect),
	))
}

func (a *App) applyTabs() {
	a.engine.ApplyTabs(a.tabsDemo)
	a.refresh()
}
