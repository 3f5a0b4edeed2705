package chrome

import (
	"showcase/internal/catalog"
	"showcase/internal/log"
	"showcase/internal/nav"
	"showcase/internal/screen"
	"showcase/internal/tabs"
	"showcase/internal/theme"
)

// Manager owns the override and tab state of the active destination and
// exposes the derived chrome. The override is bound to the back stack entry
// that set it and is reset on every committed navigation, so it never
// outlives its destination. All methods must be called from the UI goroutine.
type Manager struct {
	observer *nav.Observer
	registry *screen.Registry
	catalog  *catalog.Catalog
	theme    *theme.State
	tabs     *tabs.State

	override Override
	owner    *nav.Entry
	stop     func()
}

// NewManager wires a manager to the observer's commits.
func NewManager(observer *nav.Observer, registry *screen.Registry, cat *catalog.Catalog, themeState *theme.State, tabsState *tabs.State) *Manager {
	m := &Manager{
		observer: observer,
		registry: registry,
		catalog:  cat,
		theme:    themeState,
		tabs:     tabsState,
		override: DefaultOverride(),
	}
	m.rebind(observer.Snapshot())
	m.stop = observer.OnCommit(m.rebind)
	return m
}

func (m *Manager) rebind(snap nav.Snapshot) {
	m.override = DefaultOverride()
	m.owner = snap.Entry
	if desc, ok := m.registry.Lookup(snap.CurrentRoute); !ok || !desc.HasTabs {
		if m.tabs.HasTabs() {
			log.With(log.F("route", snap.CurrentRoute)).Debug("clearing stale tabs")
		}
		m.tabs.Clear()
	}
}

// Inputs returns the current inputs of Compute.
func (m *Manager) Inputs() Inputs {
	in := Inputs{
		Snapshot: m.observer.Snapshot(),
		Registry: m.registry,
		Override: m.effectiveOverride(),
	}
	if m.theme != nil {
		in.DarkMode = m.theme.DarkMode()
	}
	if m.catalog != nil {
		in.NavigationItems = m.catalog.NavigationItems()
		in.Recipes = m.catalog.Recipes()
		in.Strings = m.catalog.Strings()
	}
	return in
}

// State computes the chrome for the current inputs.
func (m *Manager) State() State {
	return Compute(m.Inputs())
}

func (m *Manager) effectiveOverride() Override {
	if m.owner != m.observer.Snapshot().Entry {
		return DefaultOverride()
	}
	return m.override
}

// Override returns the override in effect.
func (m *Manager) Override() Override {
	return m.effectiveOverride()
}

// SetOverride replaces the override of the current destination.
func (m *Manager) SetOverride(o Override) {
	m.override = o
	m.owner = m.observer.Snapshot().Entry
}

// SetOverrideFrom replaces the override only when from is still the resumed
// top entry. Customizations arriving after their destination was left are
// dropped.
func (m *Manager) SetOverrideFrom(from *nav.Entry, o Override) bool {
	if !m.observer.Stack().IsActiveTop(from) {
		log.Debug("dropping override from inactive destination")
		return false
	}
	m.override = o
	m.owner = from
	return true
}

// ClearOverride restores the default override.
func (m *Manager) ClearOverride() {
	m.override = DefaultOverride()
}

// UpdateTabs replaces the tab configuration atomically.
func (m *Manager) UpdateTabs(cfg tabs.Configuration) {
	m.tabs.Update(cfg)
}

// ClearTabs empties the tab strip.
func (m *Manager) ClearTabs() {
	m.tabs.Clear()
}

// Tabs returns the tab state.
func (m *Manager) Tabs() *tabs.State {
	return m.tabs
}

// TabStripVisible reports whether the tab strip is drawn for the current
// destination.
func (m *Manager) TabStripVisible() bool {
	desc, ok := m.registry.Lookup(m.observer.Snapshot().CurrentRoute)
	return m.tabs.Visible(ok && desc.HasTabs)
}

// Close detaches the manager from navigation commits.
func (m *Manager) Close() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}
