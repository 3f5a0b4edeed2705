// Package chrome derives the top bar, action buttons, navigation icon, tab
// strip and bottom bar visibility from the active destination.
package chrome

import (
	"showcase/internal/action"
	"showcase/internal/catalog"
)

// ScrollBehavior tells whether the top bar collapses while content scrolls.
type ScrollBehavior int

const (
	Collapsible ScrollBehavior = iota
	NoScroll
)

func (b ScrollBehavior) String() string {
	if b == NoScroll {
		return "none"
	}
	return "collapsible"
}

// Override is the chrome supplied by a destination that draws its own top bar.
type Override struct {
	Title                 catalog.TextRef
	ActionCount           int
	NavigationIconEnabled bool
	IsLarge               bool
	ScrollBehavior        ScrollBehavior
	OverflowMenuEnabled   bool
}

// DefaultOverride is the override in effect when the active destination has
// not set one: empty title, the default action count, navigation icon on.
func DefaultOverride() Override {
	return Override{
		ActionCount:           len(action.DefaultSet()),
		NavigationIconEnabled: true,
		ScrollBehavior:        Collapsible,
	}
}

// OverrideOption adjusts an Override built by NewOverride.
type OverrideOption func(*Override)

func WithTitle(title catalog.TextRef) OverrideOption {
	return func(o *Override) { o.Title = title }
}

func WithActionCount(n int) OverrideOption {
	return func(o *Override) { o.ActionCount = n }
}

func WithNavigationIcon(enabled bool) OverrideOption {
	return func(o *Override) { o.NavigationIconEnabled = enabled }
}

func WithLarge(large bool) OverrideOption {
	return func(o *Override) { o.IsLarge = large }
}

func WithScrollBehavior(b ScrollBehavior) OverrideOption {
	return func(o *Override) { o.ScrollBehavior = b }
}

func WithOverflowMenu(enabled bool) OverrideOption {
	return func(o *Override) { o.OverflowMenuEnabled = enabled }
}

// NewOverride builds an override from DefaultOverride.
func NewOverride(opts ...OverrideOption) Override {
	o := DefaultOverride()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
