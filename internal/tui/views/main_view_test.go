package views

import (
	"testing"

	"showcase/internal/action"
	"showcase/internal/chrome"
	"showcase/internal/tabs"
	"showcase/internal/theme"
	"showcase/internal/tui/common"
	"showcase/internal/tui/styles"
	"showcase/pkg/testutils"

	"github.com/stretchr/testify/assert"
)

// Mock model for testing
type mockModel struct {
	chrome    chrome.State
	mode      common.Mode
	collapsed bool
	tabsOn    bool
	tabs      tabs.Configuration
	items     []common.Item
	cursor    int
	body      string
	dests     []common.Destination
	status    string
}

func (m *mockModel) Chrome() chrome.State               { return m.chrome }
func (m *mockModel) Styles() styles.Styles              { return styles.New(theme.Builtin()[0].Light) }
func (m *mockModel) Mode() common.Mode                  { return m.mode }
func (m *mockModel) Width() int                         { return 80 }
func (m *mockModel) Collapsed() bool                    { return m.collapsed }
func (m *mockModel) TabStripVisible() bool              { return m.tabsOn }
func (m *mockModel) Tabs() tabs.Configuration           { return m.tabs }
func (m *mockModel) SelectedTab() int                   { return 0 }
func (m *mockModel) Items() []common.Item               { return m.items }
func (m *mockModel) Cursor() int                        { return m.cursor }
func (m *mockModel) Body() string                       { return m.body }
func (m *mockModel) SearchView() string                 { return "> query" }
func (m *mockModel) DialogView() string                 { return "Change theme" }
func (m *mockModel) Destinations() []common.Destination { return m.dests }
func (m *mockModel) StatusView() string                 { return m.status }
func (m *mockModel) HelpView() string                   { return "q quit" }

var homeActions = []chrome.ActionButton{
	{Action: action.Search, Icon: chrome.IconSearch},
	{Action: action.ChangeTheme, Icon: chrome.IconTheme},
	{Action: action.ChangeMode, Icon: chrome.IconDarkMode},
}

func TestRenderMainView(t *testing.T) {
	tests := []struct {
		name     string
		model    *mockModel
		contains []string // Strings that should be present in the output
		excludes []string // Strings that should not be present in the output
	}{
		{
			name: "home destination",
			model: &mockModel{
				chrome: chrome.State{Title: "Components", Actions: homeActions, BottomBarVisible: true},
				items:  []common.Item{{Title: "Buttons"}, {Title: "Cards", Subtitle: "4 variants"}},
				cursor: 1,
				dests:  []common.Destination{{Title: "Guidelines"}, {Title: "Components", Selected: true}},
			},
			contains: []string{"Components", "1:⌕", "2:◧", "3:☾", "> Cards", "4 variants", "f1 Guidelines", "f2 Components"},
			excludes: []string{"←", "> Buttons", "m:⋮"},
		},
		{
			name: "detail destination",
			model: &mockModel{
				chrome: chrome.State{Title: "Cards", Actions: homeActions[1:], NavigationIconVisible: true},
				body:   "Cards contain content",
			},
			contains: []string{"←", "Cards", "Cards contain content", "1:◧", "2:☾"},
			excludes: []string{"f1", "Nothing here yet"},
		},
		{
			name: "large top bar",
			model: &mockModel{
				chrome: chrome.State{Title: "Big title", IsLarge: true, IsOverridden: true, NavigationIconVisible: true},
			},
			contains: []string{"Big title", "←", "Nothing here yet"},
		},
		{
			name: "overflow menu",
			model: &mockModel{
				chrome: chrome.State{
					Title:         "Regular",
					IsOverridden:  true,
					OverflowItems: []chrome.OverflowItem{{Title: "Summer salad", Subtitle: "Tomatoes"}},
				},
				mode: common.Overflow,
			},
			contains: []string{"m:⋮", "> Summer salad", "Tomatoes"},
		},
		{
			name: "search screen",
			model: &mockModel{
				chrome: chrome.State{Title: "Search", SearchMode: true, NavigationIconVisible: true},
				mode:   common.Search,
				items:  []common.Item{{Title: "Cards"}},
			},
			contains: []string{"esc", "> query", "> Cards"},
			excludes: []string{"Search"},
		},
		{
			name: "theme dialog",
			model: &mockModel{
				chrome: chrome.State{Title: "Guidelines", Actions: homeActions, BottomBarVisible: true},
				mode:   common.ThemeDialog,
				items:  []common.Item{{Title: "Color"}},
			},
			contains: []string{"Change theme"},
			excludes: []string{"Color"},
		},
		{
			name: "tab strip and status",
			model: &mockModel{
				chrome: chrome.State{Title: "Fixed tabs", NavigationIconVisible: true},
				tabsOn: true,
				tabs: tabs.Configuration{
					Tabs:        []tabs.Tab{{Title: "Favorites", Icon: "♥"}, {Title: "Emails", Icon: "✉"}},
					Pager:       &tabs.Pager{},
					IconEnabled: true,
					TextEnabled: true,
				},
				status: "Theme: Ocean",
			},
			contains: []string{"Favorites", "Emails", "♥", "Theme: Ocean"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutils.StripANSI(RenderMainView(tt.model))

			for _, s := range tt.contains {
				assert.Contains(t, output, s, "Output should contain %q", s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s, "Output should not contain %q", s)
			}
		})
	}
}
