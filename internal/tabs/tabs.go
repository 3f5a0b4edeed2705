// Package tabs holds the tab strip state owned by tab-presenting destinations.
package tabs

// IconPosition places a tab icon relative to its text.
type IconPosition int

const (
	IconTop IconPosition = iota
	IconLeading
)

func (p IconPosition) String() string {
	if p == IconLeading {
		return "leading"
	}
	return "top"
}

// Tab is a single tab of the strip.
type Tab struct {
	ID    string
	Title string
	Icon  string
}

// Pager is the page position shared by a tab strip and its content. The
// selected page is clamped to the tab count when read through State.
type Pager struct {
	Page int
}

// Configuration describes the whole tab strip. It is always applied as one
// unit so the tab list and pager position describe the same content.
type Configuration struct {
	Tabs         []Tab
	Pager        *Pager
	IconPosition IconPosition
	IconEnabled  bool
	TextEnabled  bool
	Scrollable   bool
}

// DefaultConfiguration is the state before any destination supplies tabs.
func DefaultConfiguration() Configuration {
	return Configuration{IconPosition: IconTop, IconEnabled: true, TextEnabled: true}
}

// State is the tab strip state container.
type State struct {
	cfg Configuration
}

// NewState returns an empty tab state.
func NewState() *State {
	return &State{cfg: DefaultConfiguration()}
}

// Update replaces the tab list, pager and display flags atomically.
func (s *State) Update(cfg Configuration) {
	cfg.Tabs = append([]Tab(nil), cfg.Tabs...)
	s.cfg = cfg
}

// Clear empties the tab list and unsets the pager. Display flags are kept.
func (s *State) Clear() {
	s.cfg.Tabs = nil
	s.cfg.Pager = nil
}

// HasTabs reports whether the tab list is non-empty.
func (s *State) HasTabs() bool {
	return len(s.cfg.Tabs) > 0
}

// Snapshot returns a copy of the current configuration.
func (s *State) Snapshot() Configuration {
	cfg := s.cfg
	cfg.Tabs = append([]Tab(nil), s.cfg.Tabs...)
	if s.cfg.Pager != nil {
		p := *s.cfg.Pager
		cfg.Pager = &p
	}
	return cfg
}

// Pager returns the live pager, or nil when none is set.
func (s *State) Pager() *Pager {
	return s.cfg.Pager
}

// SelectedPage returns the pager page clamped to the tab list, or -1 when
// there are no tabs or no pager.
func (s *State) SelectedPage() int {
	if !s.HasTabs() || s.cfg.Pager == nil {
		return -1
	}
	p := s.cfg.Pager.Page
	if p < 0 {
		return 0
	}
	if p >= len(s.cfg.Tabs) {
		return len(s.cfg.Tabs) - 1
	}
	return p
}

// Select moves the pager to page, clamped to the tab list.
func (s *State) Select(page int) {
	if s.cfg.Pager == nil || !s.HasTabs() {
		return
	}
	s.cfg.Pager.Page = page
	s.cfg.Pager.Page = s.SelectedPage()
}

// Visible reports whether the tab strip should be drawn for a destination
// whose descriptor declares descHasTabs. Residual tabs of a destination that
// has not cleared them yet stay hidden. A strip without a pager is drawn
// with no tab selected.
func (s *State) Visible(descHasTabs bool) bool {
	return s.HasTabs() && descHasTabs
}
