package demo

import (
	"testing"

	"showcase/internal/catalog"
	"showcase/internal/chrome"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopBarCustomizer(t *testing.T) {
	c := NewTopBarCustomizer(false)
	assert.Equal(t, chrome.NewOverride(chrome.WithTitle("component_app_bars_top_regular")), c.Override())
	assert.Len(t, c.Controls(), 3, "title and scroll rows only for large bars")

	c.Move(1)
	c.Change(1)
	c.Change(1)
	assert.Equal(t, MaxActionCount, c.ActionCount)

	c.Move(1)
	assert.False(t, c.Controls()[2].Enabled)
	assert.False(t, c.Change(1))
	assert.False(t, c.Overflow)

	c.Move(-1)
	c.Change(-1)
	c.Move(1)
	require.True(t, c.Change(1))
	assert.True(t, c.Overflow)
	assert.Equal(t, MaxActionCount-1, c.MaxSelectableActions())

	c.Move(-1)
	c.Change(1)
	assert.Equal(t, 2, c.ActionCount, "overflow leaves room for its icon")

	c.Change(-5)
	assert.Equal(t, 0, c.ActionCount)
	o := c.Override()
	assert.Equal(t, 0, o.ActionCount)
	assert.True(t, o.OverflowMenuEnabled)
}

func TestTopBarCustomizerLarge(t *testing.T) {
	c := NewTopBarCustomizer(true)
	require.Len(t, c.Controls(), 5)
	o := c.Override()
	assert.True(t, o.IsLarge)
	assert.Equal(t, catalog.TextRef("component_app_bars_top_large_title_short_value"), o.Title)

	c.Move(3)
	c.Change(-1)
	assert.Equal(t, TitleLong, c.Title)
	c.Move(1)
	c.Change(1)
	assert.Equal(t, chrome.NoScroll, c.Override().ScrollBehavior)

	c.Move(1)
	assert.Equal(t, 0, c.Cursor(), "cursor wraps")
}

func TestTabsCustomizer(t *testing.T) {
	cat := catalog.MustLoad()
	items := cat.NavigationItems()

	fixed := NewTabsCustomizer(false, items, cat.Strings())
	lo, hi := fixed.Bounds()
	assert.Equal(t, MinFixedTabs, lo)
	assert.Equal(t, MaxFixedTabs, hi)

	cfg := fixed.Configuration()
	require.Len(t, cfg.Tabs, 2)
	assert.Equal(t, "Favorites", cfg.Tabs[0].Title)
	assert.NotNil(t, cfg.Pager)
	assert.False(t, cfg.Scrollable)

	cfg.Pager.Page = 1
	fixed.Change(-1)
	assert.Equal(t, 2, fixed.Count)

	scrollable := NewTabsCustomizer(true, items, cat.Strings())
	lo, hi = scrollable.Bounds()
	assert.Equal(t, MinScrollableTabs, lo)
	assert.Equal(t, len(items), hi, "bounded by the navigation items")
	scrollable.Change(5)
	assert.Len(t, scrollable.Configuration().Tabs, len(items))

	scrollable.Move(2)
	require.True(t, scrollable.Change(1))
	assert.False(t, scrollable.TextEnabled)
	scrollable.Move(-1)
	assert.False(t, scrollable.Change(1), "icon stays while text is off")
	scrollable.Move(2)
	assert.False(t, scrollable.Controls()[3].Enabled)
}

func TestTabsCustomizerClampsPager(t *testing.T) {
	cat := catalog.MustLoad()
	c := NewTabsCustomizer(false, cat.NavigationItems(), cat.Strings())
	c.Change(1)
	cfg := c.Configuration()
	cfg.Pager.Page = 2
	c.Change(-1)
	assert.Equal(t, 1, c.Configuration().Pager.Page)
}

func TestSetters(t *testing.T) {
	c := NewTopBarCustomizer(false)
	c.SetActionCount(9)
	assert.Equal(t, MaxActionCount, c.ActionCount)
	assert.False(t, c.SetOverflow(true))
	c.SetActionCount(1)
	assert.True(t, c.SetOverflow(true))
	c.SetActionCount(9)
	assert.Equal(t, MaxActionCount-1, c.ActionCount)

	cat := catalog.MustLoad()
	tc := NewTabsCustomizer(false, cat.NavigationItems(), cat.Strings())
	tc.SetCount(0)
	assert.Equal(t, MinFixedTabs, tc.Count)
	assert.True(t, tc.SetIconEnabled(false))
	assert.False(t, tc.SetTextEnabled(false))
	assert.True(t, tc.TextEnabled)
}
