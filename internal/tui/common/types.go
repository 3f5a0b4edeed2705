package common

import (
	"showcase/internal/app"
	"showcase/internal/chrome"
	"showcase/internal/tabs"
	"showcase/internal/tui/styles"
)

type Mode int

const (
	Browse Mode = iota
	Search
	Overflow
	ThemeDialog
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Chrome() chrome.State
	Styles() styles.Styles
	Mode() Mode
	Width() int

	// Collapsed reports whether a large top bar is scrolled into its small form.
	Collapsed() bool

	TabStripVisible() bool
	Tabs() tabs.Configuration
	SelectedTab() int

	Items() []Item
	Cursor() int
	Body() string
	SearchView() string
	DialogView() string

	Destinations() []Destination
	StatusView() string
	HelpView() string
}

// Item is one selectable entry of the destination content.
type Item = app.Item

// Destination is one bottom navigation entry.
type Destination struct {
	Route    string
	Title    string
	Selected bool
}
