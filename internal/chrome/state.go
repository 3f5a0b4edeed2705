package chrome

import (
	"showcase/internal/action"
	"showcase/internal/catalog"
	"showcase/internal/nav"
	"showcase/internal/screen"
)

// Icons of the built-in actions.
const (
	IconSearch     = "⌕"
	IconTheme      = "◧"
	IconDarkMode   = "☾"
	IconLightMode  = "☀"
	IconBack       = "←"
	IconOverflow   = "⋮"
	customIconNone = "•"
)

// ActionButton is one top bar action. Custom buttons are placeholders built
// from the navigation item catalog and carry no action kind meaning.
type ActionButton struct {
	Action action.Kind
	Custom bool
	ID     string
	Label  string
	Icon   string
}

// OverflowItem is one overflow menu entry.
type OverflowItem struct {
	Title    string
	Subtitle string
}

// State is the derived chrome. It holds nothing that cannot be recomputed
// from Inputs.
type State struct {
	Route                 string
	Title                 string
	Actions               []ActionButton
	NavigationIconVisible bool
	OverflowItems         []OverflowItem
	HasScrollBehavior     bool
	IsOverridden          bool
	IsLarge               bool
	SearchMode            bool
	BottomBarVisible      bool
}

// Inputs are everything State is computed from.
type Inputs struct {
	Snapshot        nav.Snapshot
	Registry        *screen.Registry
	Override        Override
	DarkMode        bool
	NavigationItems []catalog.NavigationItem
	Recipes         []catalog.Recipe
	Strings         catalog.Strings
}

// Compute derives the chrome for in. It is total: a route missing from the
// registry is treated as a destination that supplies its own chrome.
func Compute(in Inputs) State {
	route := in.Snapshot.CurrentRoute
	desc, found := in.Registry.Lookup(route)
	home := found && desc.Home

	st := State{
		Route:             route,
		IsOverridden:      !found || desc.SuppliesOwnChrome,
		HasScrollBehavior: in.Override.ScrollBehavior != NoScroll,
		BottomBarVisible:  home,
		IsLarge:           found && desc.AppBarKind == screen.AppBarLarge,
	}

	if st.IsOverridden {
		st.Title = in.Strings.Resolve(in.Override.Title)
		st.NavigationIconVisible = in.Override.NavigationIconEnabled
		st.IsLarge = st.IsLarge || in.Override.IsLarge
		st.Actions = overriddenActions(in)
		if in.Override.OverflowMenuEnabled {
			for _, r := range in.Recipes {
				st.OverflowItems = append(st.OverflowItems, OverflowItem{Title: r.Title, Subtitle: r.Subtitle})
			}
		}
		return st
	}

	st.Title = in.Strings.Resolve(desc.Title)
	st.NavigationIconVisible = !home
	if desc.AppBarKind == screen.AppBarSearch {
		st.SearchMode = true
		return st
	}
	if home {
		st.Actions = append(st.Actions, button(action.Search, in))
	}
	for _, k := range action.DefaultSet() {
		st.Actions = append(st.Actions, button(k, in))
	}
	return st
}

// overriddenActions keeps the first ActionCount default actions, then fills
// up to ActionCount with placeholders cycling through the navigation items.
func overriddenActions(in Inputs) []ActionButton {
	count := in.Override.ActionCount
	if count < 0 {
		count = 0
	}
	defaults := action.DefaultSet()
	custom := max(0, count-len(defaults))
	if count < len(defaults) {
		defaults = defaults[:count]
	}

	actions := make([]ActionButton, 0, len(defaults)+custom)
	for _, k := range defaults {
		actions = append(actions, button(k, in))
	}
	if len(in.NavigationItems) == 0 {
		return actions
	}
	for i := 0; i < custom; i++ {
		item := in.NavigationItems[i%len(in.NavigationItems)]
		icon := item.Icon
		if icon == "" {
			icon = customIconNone
		}
		actions = append(actions, ActionButton{
			Custom: true,
			ID:     item.ID,
			Label:  in.Strings.Resolve(item.Title),
			Icon:   icon,
		})
	}
	return actions
}

func button(k action.Kind, in Inputs) ActionButton {
	b := ActionButton{Action: k}
	switch k {
	case action.Search:
		b.Icon, b.Label = IconSearch, in.Strings.Resolve("search_content_description")
	case action.ChangeTheme:
		b.Icon, b.Label = IconTheme, in.Strings.Resolve("top_app_bar_action_change_theme_desc")
	case action.ChangeMode:
		if in.DarkMode {
			b.Icon, b.Label = IconLightMode, in.Strings.Resolve("top_app_bar_action_change_mode_to_light_desc")
		} else {
			b.Icon, b.Label = IconDarkMode, in.Strings.Resolve("top_app_bar_action_change_mode_to_dark_desc")
		}
	default:
		b.Label = k.String()
	}
	return b
}
