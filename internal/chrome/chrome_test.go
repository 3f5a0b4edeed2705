package chrome

import (
	"fmt"
	"testing"

	"showcase/internal/action"
	"showcase/internal/catalog"
	"showcase/internal/nav"
	"showcase/internal/screen"
	"showcase/internal/tabs"
	"showcase/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(actions []ActionButton) []action.Kind {
	var out []action.Kind
	for _, a := range actions {
		if !a.Custom {
			out = append(out, a.Action)
		}
	}
	return out
}

func fixtureInputs(t *testing.T, current, previous string) Inputs {
	t.Helper()
	c := catalog.MustLoad()
	reg, err := screen.Standard(c)
	require.NoError(t, err)
	return Inputs{
		Snapshot:        nav.Snapshot{CurrentRoute: current, PreviousRoute: previous},
		Registry:        reg,
		Override:        DefaultOverride(),
		NavigationItems: c.NavigationItems(),
		Recipes:         c.Recipes(),
		Strings:         c.Strings(),
	}
}

func TestComputeDefaults(t *testing.T) {
	tests := []struct {
		name       string
		route      string
		previous   string
		title      string
		actions    []action.Kind
		navIcon    bool
		bottomBar  bool
		searchMode bool
		large      bool
		overridden bool
	}{
		{
			name: "home tab", route: screen.RouteComponents, title: "Components",
			actions: []action.Kind{action.Search, action.ChangeTheme, action.ChangeMode}, bottomBar: true,
		},
		{
			name: "home tab reached from a detail screen", route: screen.RouteAbout, previous: "guidelines/color",
			title: "About", actions: []action.Kind{action.Search, action.ChangeTheme, action.ChangeMode}, bottomBar: true,
		},
		{
			name: "detail screen", route: "guidelines/typography", previous: screen.RouteGuidelines,
			title: "Typography", actions: []action.Kind{action.ChangeTheme, action.ChangeMode}, navIcon: true,
		},
		{
			name: "search screen", route: screen.RouteSearch, title: "Search", navIcon: true, searchMode: true,
		},
		{
			name: "customizable variant", route: screen.VariantRoute(1), overridden: true, large: true,
			actions: []action.Kind{action.ChangeTheme, action.ChangeMode}, navIcon: true,
		},
		{
			name: "unmapped id route", route: screen.ComponentRoute(4242), overridden: true,
			actions: []action.Kind{action.ChangeTheme, action.ChangeMode}, navIcon: true,
		},
		{
			name: "unknown route", route: "nowhere", overridden: true,
			actions: []action.Kind{action.ChangeTheme, action.ChangeMode}, navIcon: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Compute(fixtureInputs(t, tt.route, tt.previous))
			assert.Equal(t, tt.route, st.Route)
			assert.Equal(t, tt.title, st.Title)
			assert.Equal(t, tt.actions, kinds(st.Actions))
			assert.Equal(t, tt.navIcon, st.NavigationIconVisible)
			assert.Equal(t, tt.bottomBar, st.BottomBarVisible)
			assert.Equal(t, tt.searchMode, st.SearchMode)
			assert.Equal(t, tt.large, st.IsLarge)
			assert.Equal(t, tt.overridden, st.IsOverridden)
			assert.Empty(t, st.OverflowItems)
			assert.True(t, st.HasScrollBehavior)
		})
	}
}

func TestComputeUnmappedRoutesAreOverridden(t *testing.T) {
	for _, route := range []string{"", "x", "components/variant/999", "modules/77", "main"} {
		in := fixtureInputs(t, route, "")
		in.Override = NewOverride(WithTitle("Custom"), WithActionCount(0), WithNavigationIcon(false))
		st := Compute(in)
		assert.True(t, st.IsOverridden, route)
		assert.Equal(t, "Custom", st.Title, route)
		assert.Empty(t, st.Actions, route)
		assert.False(t, st.NavigationIconVisible, route)
		assert.False(t, st.BottomBarVisible, route)
	}
}

func TestComputeActionCount(t *testing.T) {
	defaults := action.DefaultSet()
	for _, itemCount := range []int{1, 3, 5} {
		for count := -2; count <= 9; count++ {
			t.Run(fmt.Sprintf("items=%d/count=%d", itemCount, count), func(t *testing.T) {
				in := fixtureInputs(t, screen.VariantRoute(0), "")
				in.NavigationItems = in.NavigationItems[:itemCount]
				in.Override = NewOverride(WithActionCount(count))

				st := Compute(in)
				custom := max(0, count-len(defaults))
				assert.GreaterOrEqual(t, custom, 0)
				assert.Len(t, st.Actions, min(max(count, 0), len(defaults)+custom))

				kept := min(max(count, 0), len(defaults))
				for i, a := range st.Actions {
					if i < kept {
						assert.False(t, a.Custom)
						assert.Equal(t, defaults[i], a.Action)
					} else {
						assert.True(t, a.Custom)
						assert.Equal(t, in.NavigationItems[(i-kept)%itemCount].ID, a.ID)
					}
				}
			})
		}
	}
}

func TestComputeOverflowAndScroll(t *testing.T) {
	in := fixtureInputs(t, screen.VariantRoute(0), "")
	in.Override = NewOverride(WithOverflowMenu(true), WithScrollBehavior(NoScroll), WithLarge(true))
	st := Compute(in)
	require.Len(t, st.OverflowItems, len(in.Recipes))
	assert.Equal(t, in.Recipes[0].Title, st.OverflowItems[0].Title)
	assert.False(t, st.HasScrollBehavior)
	assert.True(t, st.IsLarge)

	in = fixtureInputs(t, screen.RouteGuidelines, "")
	in.Override = NewOverride(WithOverflowMenu(true))
	assert.Empty(t, Compute(in).OverflowItems, "overflow needs an overridden destination")
}

func TestComputeModeIconFlips(t *testing.T) {
	in := fixtureInputs(t, screen.RouteGuidelines, "")
	light := Compute(in).Actions[2]
	assert.Equal(t, action.ChangeMode, light.Action)
	assert.Equal(t, IconDarkMode, light.Icon)
	assert.Equal(t, "Switch to dark mode", light.Label)

	in.DarkMode = true
	dark := Compute(in).Actions[2]
	assert.Equal(t, IconLightMode, dark.Icon)
	assert.Equal(t, "Switch to light mode", dark.Label)
}

func TestOverrideDefaults(t *testing.T) {
	o := DefaultOverride()
	assert.Equal(t, catalog.TextRef(""), o.Title)
	assert.Equal(t, 2, o.ActionCount)
	assert.True(t, o.NavigationIconEnabled)
	assert.False(t, o.IsLarge)
	assert.Equal(t, Collapsible, o.ScrollBehavior)
	assert.False(t, o.OverflowMenuEnabled)
	assert.Equal(t, "none", NoScroll.String())
}

type fixture struct {
	stack    *nav.MemoryStack
	observer *nav.Observer
	tabs     *tabs.State
	manager  *Manager
}

func newFixture(t *testing.T, start string) *fixture {
	t.Helper()
	c := catalog.MustLoad()
	reg, err := screen.Standard(c)
	require.NoError(t, err)
	th, err := theme.NewState(theme.Builtin(), nil)
	require.NoError(t, err)

	f := &fixture{stack: nav.NewMemoryStack(start), tabs: tabs.NewState()}
	f.observer = nav.NewObserver(f.stack)
	f.manager = NewManager(f.observer, reg, c, th, f.tabs)
	t.Cleanup(f.manager.Close)
	return f
}

func TestManagerHomeToDetail(t *testing.T) {
	f := newFixture(t, screen.RouteComponents)
	f.manager.UpdateTabs(tabs.Configuration{Tabs: []tabs.Tab{{ID: "a"}, {ID: "b"}}, Pager: &tabs.Pager{}})
	assert.False(t, f.manager.State().NavigationIconVisible)

	id := int64(2)
	require.True(t, f.observer.NavigateTo(screen.ComponentRoutePrefix, &id, f.observer.Snapshot().Entry))

	st := f.manager.State()
	assert.True(t, st.NavigationIconVisible)
	assert.False(t, st.BottomBarVisible)
	assert.Equal(t, "Buttons", st.Title)
	assert.False(t, f.tabs.HasTabs())
	assert.Nil(t, f.tabs.Pager())
	assert.False(t, f.manager.TabStripVisible())
}

func TestManagerSetOverride(t *testing.T) {
	f := newFixture(t, screen.RouteComponents)
	require.True(t, f.observer.Navigate(screen.VariantRoute(0)))

	f.manager.SetOverride(NewOverride(WithTitle("X"), WithActionCount(1), WithNavigationIcon(false)))
	st := f.manager.State()
	assert.Equal(t, "X", st.Title)
	assert.False(t, st.NavigationIconVisible)
	require.Len(t, st.Actions, 1)
	assert.Equal(t, action.ChangeTheme, st.Actions[0].Action)

	f.manager.ClearOverride()
	assert.Equal(t, DefaultOverride(), f.manager.Override())
}

func TestManagerOverrideDoesNotOutliveDestination(t *testing.T) {
	f := newFixture(t, screen.RouteComponents)
	require.True(t, f.observer.Navigate(screen.VariantRoute(0)))
	variant := f.observer.Snapshot().Entry

	assert.True(t, f.manager.SetOverrideFrom(variant, NewOverride(WithTitle("Mine"), WithNavigationIcon(false))))
	require.True(t, f.observer.Navigate("somewhere/else"))

	assert.Equal(t, DefaultOverride(), f.manager.Override())
	assert.False(t, f.manager.SetOverrideFrom(variant, NewOverride(WithTitle("Late"))), "stopped entry")
	assert.Equal(t, "", f.manager.State().Title)
	assert.True(t, f.manager.State().NavigationIconVisible)

	require.True(t, f.observer.Back())
	assert.Equal(t, DefaultOverride(), f.manager.Override(), "returning does not resurrect the old override")
}

func TestManagerTabs(t *testing.T) {
	f := newFixture(t, screen.RouteComponents)
	require.True(t, f.observer.Navigate(screen.VariantRoute(18)))

	cfg := tabs.Configuration{
		Tabs:        []tabs.Tab{{ID: "one"}, {ID: "two"}},
		Pager:       &tabs.Pager{},
		IconEnabled: true,
		TextEnabled: true,
	}
	f.manager.UpdateTabs(cfg)
	assert.True(t, f.manager.TabStripVisible())

	require.True(t, f.observer.Navigate(screen.VariantRoute(19)))
	assert.True(t, f.tabs.HasTabs(), "tab owners replace tabs themselves")

	f.manager.ClearTabs()
	assert.False(t, f.manager.Tabs().HasTabs())
	assert.False(t, f.manager.TabStripVisible())

	f.manager.UpdateTabs(cfg)
	require.True(t, f.observer.Back())
	require.True(t, f.observer.Back())
	assert.False(t, f.tabs.HasTabs(), "home tab does not own tabs")
}
