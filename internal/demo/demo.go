// Package demo holds the customization state of the top bar and tabs demo
// destinations. Renderers edit it and feed the result to the chrome manager.
package demo

import (
	"fmt"

	"showcase/internal/catalog"
	"showcase/internal/chrome"
	"showcase/internal/tabs"
)

// Control is one editable row of a customization form.
type Control struct {
	Label   string
	Value   string
	Enabled bool
}

type row struct {
	label   string
	value   func() string
	enabled func() bool
	change  func(delta int)
}

type form struct {
	cursor int
}

func (f *form) move(rows []row, delta int) {
	if len(rows) == 0 {
		f.cursor = 0
		return
	}
	f.cursor = (f.cursor + delta + len(rows)) % len(rows)
}

func (f *form) change(rows []row, delta int) bool {
	if len(rows) == 0 {
		return false
	}
	f.cursor = min(f.cursor, len(rows)-1)
	r := rows[f.cursor]
	if r.enabled != nil && !r.enabled() {
		return false
	}
	r.change(delta)
	return true
}

func controls(rows []row) []Control {
	out := make([]Control, len(rows))
	for i, r := range rows {
		out[i] = Control{Label: r.label, Value: r.value(), Enabled: r.enabled == nil || r.enabled()}
	}
	return out
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// TitleLength selects the demo title of a large top bar.
type TitleLength int

const (
	TitleShort TitleLength = iota
	TitleTwoLines
	TitleLong
)

var titleRefs = []catalog.TextRef{
	"component_app_bars_top_large_title_short_value",
	"component_app_bars_top_large_title_two_lines_value",
	"component_app_bars_top_large_title_long_value",
}

func (t TitleLength) String() string {
	switch t {
	case TitleTwoLines:
		return "two lines"
	case TitleLong:
		return "long"
	default:
		return "short"
	}
}

// MaxActionCount is the most action buttons the top bar demo offers.
const MaxActionCount = 3

// TopBarCustomizer edits the chrome override of a customizable top bar.
type TopBarCustomizer struct {
	form

	Large          bool
	NavigationIcon bool
	ActionCount    int
	Overflow       bool
	Title          TitleLength
	Scroll         chrome.ScrollBehavior
}

// NewTopBarCustomizer starts from the default override.
func NewTopBarCustomizer(large bool) *TopBarCustomizer {
	o := chrome.DefaultOverride()
	return &TopBarCustomizer{
		Large:          large,
		NavigationIcon: o.NavigationIconEnabled,
		ActionCount:    o.ActionCount,
		Overflow:       o.OverflowMenuEnabled,
		Scroll:         o.ScrollBehavior,
	}
}

// MaxSelectableActions leaves room for the overflow icon when the menu is on.
func (c *TopBarCustomizer) MaxSelectableActions() int {
	if c.Overflow {
		return MaxActionCount - 1
	}
	return MaxActionCount
}

// SetActionCount clamps n to the selectable range.
func (c *TopBarCustomizer) SetActionCount(n int) {
	c.ActionCount = min(max(n, 0), c.MaxSelectableActions())
}

// OverflowSelectable reports whether the overflow menu can be toggled. It
// cannot while every action slot is taken.
func (c *TopBarCustomizer) OverflowSelectable() bool {
	return c.ActionCount <= MaxActionCount-1
}

// SetOverflow toggles the overflow menu. It reports false when the menu
// cannot be toggled.
func (c *TopBarCustomizer) SetOverflow(on bool) bool {
	if !c.OverflowSelectable() {
		return false
	}
	c.Overflow = on
	return true
}

func (c *TopBarCustomizer) rows() []row {
	rows := []row{
		{
			label:  "Navigation icon",
			value:  func() string { return onOff(c.NavigationIcon) },
			change: func(int) { c.NavigationIcon = !c.NavigationIcon },
		},
		{
			label:  "Actions",
			value:  func() string { return fmt.Sprint(c.ActionCount) },
			change: func(d int) { c.SetActionCount(c.ActionCount + d) },
		},
		{
			label:   "Overflow menu",
			value:   func() string { return onOff(c.Overflow) },
			enabled: c.OverflowSelectable,
			change:  func(int) { c.Overflow = !c.Overflow },
		},
	}
	if !c.Large {
		return rows
	}
	return append(rows,
		row{
			label: "Title",
			value: func() string { return c.Title.String() },
			change: func(d int) {
				c.Title = TitleLength((int(c.Title) + d + len(titleRefs)) % len(titleRefs))
			},
		},
		row{
			label: "Scroll behavior",
			value: func() string { return c.Scroll.String() },
			change: func(int) {
				if c.Scroll == chrome.NoScroll {
					c.Scroll = chrome.Collapsible
				} else {
					c.Scroll = chrome.NoScroll
				}
			},
		},
	)
}

func (c *TopBarCustomizer) Controls() []Control { return controls(c.rows()) }
func (c *TopBarCustomizer) Cursor() int         { return c.cursor }
func (c *TopBarCustomizer) Move(delta int)      { c.move(c.rows(), delta) }

// Change adjusts the row under the cursor. It reports false for a disabled row.
func (c *TopBarCustomizer) Change(delta int) bool { return c.change(c.rows(), delta) }

// Override is the chrome override for the current settings.
func (c *TopBarCustomizer) Override() chrome.Override {
	title := catalog.TextRef("component_app_bars_top_regular")
	if c.Large {
		title = titleRefs[c.Title]
	}
	return chrome.NewOverride(
		chrome.WithTitle(title),
		chrome.WithActionCount(c.ActionCount),
		chrome.WithNavigationIcon(c.NavigationIcon),
		chrome.WithLarge(c.Large),
		chrome.WithScrollBehavior(c.Scroll),
		chrome.WithOverflowMenu(c.Overflow),
	)
}

// Tab count bounds of the tabs demo.
const (
	MinFixedTabs      = 2
	MaxFixedTabs      = 3
	MinScrollableTabs = 4
	MaxScrollableTabs = 6
)

// TabsCustomizer edits the tab strip of a tabs demo destination.
type TabsCustomizer struct {
	form

	Scrollable   bool
	Count        int
	IconPosition tabs.IconPosition
	IconEnabled  bool
	TextEnabled  bool

	min, max int
	items    []catalog.NavigationItem
	strings  catalog.Strings
	pager    *tabs.Pager
}

// NewTabsCustomizer builds tabs from the navigation items. The tab count
// never exceeds the number of items.
func NewTabsCustomizer(scrollable bool, items []catalog.NavigationItem, s catalog.Strings) *TabsCustomizer {
	lo, hi := MinFixedTabs, MaxFixedTabs
	if scrollable {
		lo, hi = MinScrollableTabs, MaxScrollableTabs
	}
	hi = min(hi, len(items))
	lo = min(lo, hi)
	return &TabsCustomizer{
		Scrollable:  scrollable,
		Count:       lo,
		IconEnabled: true,
		TextEnabled: true,
		min:         lo,
		max:         hi,
		items:       items,
		strings:     s,
		pager:       &tabs.Pager{},
	}
}

// Bounds returns the tab count range.
func (c *TabsCustomizer) Bounds() (int, int) { return c.min, c.max }

// SetCount clamps n to Bounds.
func (c *TabsCustomizer) SetCount(n int) {
	c.Count = min(max(n, c.min), c.max)
}

// SetIconEnabled and SetTextEnabled refuse to turn off both icon and text.
func (c *TabsCustomizer) SetIconEnabled(on bool) bool {
	if !on && !c.TextEnabled {
		return false
	}
	c.IconEnabled = on
	return true
}

func (c *TabsCustomizer) SetTextEnabled(on bool) bool {
	if !on && !c.IconEnabled {
		return false
	}
	c.TextEnabled = on
	return true
}

func (c *TabsCustomizer) rows() []row {
	return []row{
		{
			label:  "Tabs",
			value:  func() string { return fmt.Sprint(c.Count) },
			change: func(d int) { c.SetCount(c.Count + d) },
		},
		{
			label:   "Icon",
			value:   func() string { return onOff(c.IconEnabled) },
			enabled: func() bool { return c.TextEnabled },
			change:  func(int) { c.SetIconEnabled(!c.IconEnabled) },
		},
		{
			label:   "Text",
			value:   func() string { return onOff(c.TextEnabled) },
			enabled: func() bool { return c.IconEnabled },
			change:  func(int) { c.SetTextEnabled(!c.TextEnabled) },
		},
		{
			label:   "Icon position",
			value:   func() string { return c.IconPosition.String() },
			enabled: func() bool { return c.IconEnabled && c.TextEnabled },
			change: func(int) {
				if c.IconPosition == tabs.IconTop {
					c.IconPosition = tabs.IconLeading
				} else {
					c.IconPosition = tabs.IconTop
				}
			},
		},
	}
}

func (c *TabsCustomizer) Controls() []Control { return controls(c.rows()) }
func (c *TabsCustomizer) Cursor() int         { return c.cursor }
func (c *TabsCustomizer) Move(delta int)      { c.move(c.rows(), delta) }

// Change adjusts the row under the cursor. It reports false for a disabled row.
func (c *TabsCustomizer) Change(delta int) bool { return c.change(c.rows(), delta) }

// Configuration is the tab strip for the current settings. The pager is shared
// between calls so the selected page survives a count change.
func (c *TabsCustomizer) Configuration() tabs.Configuration {
	cfg := tabs.Configuration{
		Pager:        c.pager,
		IconPosition: c.IconPosition,
		IconEnabled:  c.IconEnabled,
		TextEnabled:  c.TextEnabled,
		Scrollable:   c.Scrollable,
	}
	for _, item := range c.items[:c.Count] {
		cfg.Tabs = append(cfg.Tabs, tabs.Tab{ID: item.ID, Title: c.strings.Resolve(item.Title), Icon: item.Icon})
	}
	if c.pager.Page >= c.Count {
		c.pager.Page = max(c.Count-1, 0)
	}
	return cfg
}
