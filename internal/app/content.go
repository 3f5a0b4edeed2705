package app

import (
	"fmt"

	"showcase/internal/catalog"
	"showcase/internal/demo"
	"showcase/internal/screen"
)

// Keys of the per-entry state kept on the back stack.
const (
	StateCursor = "cursor"
	StateQuery  = "query"
	stateTopBar = "top_bar"
	stateTabs   = "tabs"
)

// Item is one selectable entry of a destination. Route is a route prefix
// when ID is set.
type Item struct {
	Title    string
	Subtitle string
	Route    string
	ID       *int64
}

// Open navigates to it from the current destination.
func (e *Engine) Open(it Item) bool {
	return e.Observer.NavigateTo(it.Route, it.ID, e.Observer.Snapshot().Entry)
}

// Items lists the selectable entries of the current destination. query
// filters the search destination.
func (e *Engine) Items(query string) []Item {
	c := e.Catalog
	route := e.Observer.Snapshot().CurrentRoute

	switch route {
	case screen.RouteGuidelines:
		items := make([]Item, 0, len(c.Guidelines()))
		for _, g := range c.Guidelines() {
			items = append(items, Item{Title: c.Resolve(g.Title), Route: g.Route})
		}
		return items
	case screen.RouteComponents:
		items := make([]Item, 0, len(c.Components()))
		for _, comp := range c.Components() {
			id := comp.ID
			items = append(items, Item{Title: comp.Icon + " " + c.Resolve(comp.Title), Route: screen.ComponentRoutePrefix, ID: &id})
		}
		return items
	case screen.RouteModules:
		items := make([]Item, 0, len(c.Modules()))
		for _, mod := range c.Modules() {
			id := mod.ID
			items = append(items, Item{
				Title:    c.Resolve(mod.Title),
				Subtitle: c.Resolve(mod.Description),
				Route:    screen.ModuleRoutePrefix,
				ID:       &id,
			})
		}
		return items
	case screen.RouteSearch:
		matches := c.Search(query)
		items := make([]Item, 0, len(matches))
		for _, m := range matches {
			id := m.ID
			it := Item{Title: m.Title, Route: screen.ComponentRoutePrefix, ID: &id}
			if m.Kind == catalog.MatchVariant {
				it.Route, it.Subtitle = screen.VariantRoutePrefix, "variant"
			}
			items = append(items, it)
		}
		return items
	}

	prefix, id, ok := screen.ParseElementRoute(route)
	if !ok || prefix != screen.ComponentRoutePrefix {
		return nil
	}
	comp, ok := c.Component(id)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(comp.Variants))
	for _, v := range comp.Variants {
		vid := v.ID
		items = append(items, Item{Title: c.Resolve(v.Title), Subtitle: v.Composable, Route: screen.VariantRoutePrefix, ID: &vid})
	}
	return items
}

// Summary describes the current destination in plain text lines.
func (e *Engine) Summary() []string {
	c := e.Catalog
	route := e.Observer.Snapshot().CurrentRoute

	if route == screen.RouteAbout {
		mode := "light"
		if e.Theme.DarkMode() {
			mode = "dark"
		}
		return []string{c.Resolve("app_name"), fmt.Sprintf("Theme %s, %s mode", e.Theme.Current().Name, mode)}
	}

	prefix, id, ok := screen.ParseElementRoute(route)
	if !ok {
		if desc, found := e.Registry.Lookup(route); found && !desc.Home && desc.AppBarKind != screen.AppBarSearch {
			return []string{c.Resolve(desc.Title) + " guideline"}
		}
		return nil
	}
	switch prefix {
	case screen.ComponentRoutePrefix:
		if comp, ok := c.Component(id); ok {
			lines := []string{c.Resolve(comp.Description)}
			if comp.Composable != "" {
				lines = append(lines, comp.Composable+"()")
			}
			return lines
		}
	case screen.ModuleRoutePrefix:
		for _, mod := range c.Modules() {
			if mod.ID == id {
				return []string{c.Resolve(mod.Description)}
			}
		}
	case screen.VariantRoutePrefix:
		if v, ok := c.Variant(id); ok {
			return []string{v.Composable + "()"}
		}
	}
	return nil
}

// Customizers returns the demo state of the current destination, creating it
// on the first visit, and applies it to the chrome. Either result is nil when
// the destination has no such demo. Renderers call it after every committed
// navigation since the chrome manager resets overrides and tabs on commit.
func (e *Engine) Customizers() (*demo.TopBarCustomizer, *demo.TabsCustomizer) {
	snap := e.Observer.Snapshot()
	desc, ok := e.Registry.Lookup(snap.CurrentRoute)
	if !ok || snap.Entry == nil {
		return nil, nil
	}

	var topBar *demo.TopBarCustomizer
	if desc.SuppliesOwnChrome {
		topBar, _ = snap.Entry.State[stateTopBar].(*demo.TopBarCustomizer)
		if topBar == nil {
			topBar = demo.NewTopBarCustomizer(desc.AppBarKind == screen.AppBarLarge)
			snap.Entry.State[stateTopBar] = topBar
		}
		e.ApplyTopBar(topBar)
	}

	var tabsDemo *demo.TabsCustomizer
	if desc.HasTabs {
		tabsDemo, _ = snap.Entry.State[stateTabs].(*demo.TabsCustomizer)
		if tabsDemo == nil {
			scrollable := false
			if _, id, ok := screen.ParseElementRoute(snap.CurrentRoute); ok {
				v, _ := e.Catalog.Variant(id)
				scrollable = v.ScrollableTabs
			}
			tabsDemo = demo.NewTabsCustomizer(scrollable, e.Catalog.NavigationItems(), e.Catalog.Strings())
			snap.Entry.State[stateTabs] = tabsDemo
		}
		e.ApplyTabs(tabsDemo)
	}
	return topBar, tabsDemo
}

// ApplyTopBar installs c's override for the current destination.
func (e *Engine) ApplyTopBar(c *demo.TopBarCustomizer) bool {
	return e.Chrome.SetOverrideFrom(e.Observer.Snapshot().Entry, c.Override())
}

// ApplyTabs installs c's tab strip.
func (e *Engine) ApplyTabs(c *demo.TabsCustomizer) {
	e.Chrome.UpdateTabs(c.Configuration())
}
