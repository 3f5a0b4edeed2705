package tui

import (
	"context"
	"fmt"

	"showcase/internal/app"
	"showcase/internal/chrome"
	"showcase/internal/demo"
	"showcase/internal/log"
	"showcase/internal/nav"
	"showcase/internal/screen"
	"showcase/internal/tabs"
	"showcase/internal/tui/common"
	"showcase/internal/tui/components"
	"showcase/internal/tui/messages"
	"showcase/internal/tui/styles"
	"showcase/internal/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	engine *app.Engine
	keys   KeyMap
	help   help.Model
	status *components.StatusBar
	search textinput.Model
	dialog *components.ThemeDialog

	// Destination state, rebuilt when the back stack entry changes
	entry    *nav.Entry
	topBar   *demo.TopBarCustomizer
	tabsDemo *demo.TabsCustomizer
	cursor   int

	mode       common.Mode
	menuCursor int
	width      int

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the model for engine e. The model owns e's state containers
// for as long as the program runs.
func New(e *app.Engine) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	ti := textinput.New()
	ti.Prompt = chrome.IconSearch + " "
	ti.Placeholder = e.Catalog.Resolve("search_text_field_hint")
	ti.CharLimit = 64

	m := &Model{
		engine: e,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		status: components.NewStatusBar(),
		search: ti,
		width:  80,
		ctx:    ctx,
		cancel: cancel,
	}
	if !e.Theme.Loaded() {
		m.status.SetLoading(true)
		m.status.SetText("Loading theme")
	}
	m.syncDestination()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForAction()}
	if !m.engine.Theme.Loaded() {
		cmds = append(cmds, m.loadTheme, m.status.Init())
	}
	return tea.Batch(cmds...)
}

// loadTheme reads the persisted theme off the UI loop.
func (m *Model) loadTheme() tea.Msg {
	name, ok := m.engine.Theme.LoadStored()
	return messages.ThemeLoadedMsg{Name: name, Found: ok}
}

// waitForAction delivers the next chrome tap as an ActionMsg.
func (m *Model) waitForAction() tea.Cmd {
	sub, ctx := m.engine.Subscription(), m.ctx
	return func() tea.Msg {
		k, err := sub.Next(ctx)
		if err != nil {
			return messages.ActionsClosedMsg{}
		}
		return messages.ActionMsg{Kind: k}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case messages.ActionMsg:
		outcome := m.engine.Handler.Handle(msg.Kind)
		log.With(log.F("action", msg.Kind.String()), log.F("outcome", outcome.String())).Debug("chrome action handled")
		cmd = m.waitForAction()
	case messages.ActionsClosedMsg:
		log.Debug("action subscription closed")
	case messages.ThemeLoadedMsg:
		m.engine.Theme.Seed(msg.Name)
		m.status.SetLoading(false)
		m.status.SetText("Theme: " + m.engine.Theme.Current().Name)
	case messages.ConfigUpdateMsg:
		// Dark mode is only seeded at startup; after that the mode action owns it.
		if msg.Config != nil {
			log.With(log.F("level", msg.Config.Log.Level)).Debug("configuration reloaded")
			m.status.SetText("Configuration reloaded")
		}
	case messages.ErrorMsg:
		m.status.SetText("Error: " + msg.Err.Error())
	case spinner.TickMsg:
		cmd = m.status.Update(msg)
	}

	m.syncDestination()
	m.syncDialog()
	m.status.SetStyle(m.Styles().Help)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) && (m.mode != common.Search || msg.String() == "ctrl+c") {
		m.cancel()
		return tea.Quit
	}

	switch m.mode {
	case common.ThemeDialog:
		return m.handleDialogKeys(msg)
	case common.Overflow:
		return m.handleOverflowKeys(msg)
	case common.Search:
		return m.handleSearchKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) tea.Cmd {
	st := m.engine.State()

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Action):
		m.tapAction(st, int(msg.Runes[0]-'1'))
	case key.Matches(msg, m.keys.Overflow):
		if len(st.OverflowItems) > 0 {
			m.mode = common.Overflow
			m.menuCursor = 0
		}
	case key.Matches(msg, m.keys.Destination):
		m.openDestination(msg.String())
	case key.Matches(msg, m.keys.Back):
		m.engine.Observer.Back()
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(-1)
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Increase), key.Matches(msg, m.keys.Toggle):
		m.customize(1)
	case key.Matches(msg, m.keys.Decrease):
		m.customize(-1)
	case key.Matches(msg, m.keys.Open):
		m.open()
	}
	return nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.engine.Observer.Back()
		return nil
	case tea.KeyEnter:
		m.open()
		return nil
	case tea.KeyUp:
		m.move(-1)
		return nil
	case tea.KeyDown:
		m.move(1)
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.setCursor(0)
		m.entry.State[app.StateQuery] = m.search.Value()
	}
	return cmd
}

func (m *Model) handleOverflowKeys(msg tea.KeyMsg) tea.Cmd {
	items := m.engine.State().OverflowItems
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = common.Browse
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = max(m.menuCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = min(m.menuCursor+1, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Open):
		if m.menuCursor < len(items) {
			m.status.SetText(items[m.menuCursor].Title + " clicked")
		}
		m.mode = common.Browse
	}
	return nil
}

func (m *Model) handleDialogKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.engine.DismissThemeDialog()
		return nil
	case tea.KeyEnter:
		if err := m.engine.SelectTheme(m.dialog.Selected()); err != nil {
			m.status.SetText("Error: " + err.Error())
		} else {
			m.status.SetText("Theme: " + m.engine.Theme.Current().Name)
		}
		return nil
	}
	return m.dialog.Update(msg)
}

// tapAction publishes the built-in action at index i. Custom placeholder
// actions only report the tap.
func (m *Model) tapAction(st chrome.State, i int) {
	if i < 0 || i >= len(st.Actions) {
		return
	}
	a := st.Actions[i]
	if a.Custom {
		m.status.SetText(a.Label + " clicked")
		return
	}
	m.engine.Publish(a.Action)
}

func (m *Model) openDestination(k string) {
	var i int
	if _, err := fmt.Sscanf(k, "f%d", &i); err != nil {
		return
	}
	routes := m.engine.Registry.HomeRoutes()
	if !m.engine.State().BottomBarVisible || i < 1 || i > len(routes) {
		return
	}
	m.engine.Observer.NavigateToRoot(routes[i-1])
}

func (m *Model) selectTab(delta int) {
	if !m.engine.Chrome.TabStripVisible() {
		return
	}
	t := m.engine.Tabs
	n := len(t.Snapshot().Tabs)
	t.Select((t.SelectedPage() + delta + n) % n)
}

func (m *Model) move(delta int) {
	switch {
	case m.topBar != nil:
		m.topBar.Move(delta)
	case m.tabsDemo != nil:
		m.tabsDemo.Move(delta)
	default:
		n := len(m.Items())
		m.setCursor(min(max(m.cursor+delta, 0), max(n-1, 0)))
	}
}

func (m *Model) setCursor(c int) {
	m.cursor = c
	m.entry.State[app.StateCursor] = c
}

func (m *Model) customize(delta int) {
	switch {
	case m.topBar != nil:
		if m.topBar.Change(delta) {
			m.engine.ApplyTopBar(m.topBar)
		}
	case m.tabsDemo != nil:
		if m.tabsDemo.Change(delta) {
			m.engine.ApplyTabs(m.tabsDemo)
		}
	}
}

func (m *Model) open() {
	items := m.Items()
	if m.cursor >= len(items) {
		return
	}
	m.engine.Open(items[m.cursor])
}

// syncDestination rebuilds the destination state after a committed
// navigation. Destinations that supply their own chrome or tabs apply them
// again since the chrome manager resets both on every commit.
func (m *Model) syncDestination() {
	snap := m.engine.Observer.Snapshot()
	if snap.Entry == m.entry {
		return
	}
	m.entry = snap.Entry
	m.cursor, _ = m.entry.State[app.StateCursor].(int)
	m.menuCursor = 0
	if m.mode != common.ThemeDialog {
		m.mode = common.Browse
	}

	m.topBar, m.tabsDemo = m.engine.Customizers()

	desc, ok := m.engine.Registry.Lookup(snap.CurrentRoute)
	if !ok {
		return
	}
	if desc.AppBarKind == screen.AppBarSearch {
		q, _ := m.entry.State[app.StateQuery].(string)
		m.search.SetValue(q)
		m.search.Focus()
		if m.mode != common.ThemeDialog {
			m.mode = common.Search
		}
	} else {
		m.search.Blur()
	}
}

// syncDialog follows the engine's theme dialog flag.
func (m *Model) syncDialog() {
	open := m.engine.ThemeDialogOpen()
	switch {
	case open && m.dialog == nil:
		m.dialog = components.NewThemeDialog(m.engine.Theme.Snapshot(), m.Styles())
		m.mode = common.ThemeDialog
	case !open && m.dialog != nil:
		m.dialog = nil
		m.mode = common.Browse
		if m.engine.State().SearchMode {
			m.mode = common.Search
		}
	}
}

// Getters

func (m *Model) Chrome() chrome.State { return m.engine.State() }

func (m *Model) Styles() styles.Styles { return styles.New(m.engine.Theme.Palette()) }

func (m *Model) Mode() common.Mode { return m.mode }

func (m *Model) Width() int { return m.width }

func (m *Model) Collapsed() bool {
	st := m.engine.State()
	if !st.IsLarge || !st.HasScrollBehavior {
		return false
	}
	if m.topBar != nil {
		return m.topBar.Cursor() > 0
	}
	return m.cursor > 0
}

func (m *Model) TabStripVisible() bool { return m.engine.Chrome.TabStripVisible() }

func (m *Model) Tabs() tabs.Configuration { return m.engine.Tabs.Snapshot() }

func (m *Model) SelectedTab() int { return m.engine.Tabs.SelectedPage() }

func (m *Model) Cursor() int {
	if m.mode == common.Overflow {
		return m.menuCursor
	}
	return m.cursor
}

func (m *Model) SearchView() string { return m.search.View() }

func (m *Model) DialogView() string {
	if m.dialog == nil {
		return ""
	}
	return m.dialog.View()
}

func (m *Model) Destinations() []common.Destination {
	current := m.engine.Observer.Snapshot().CurrentRoute
	var out []common.Destination
	for _, route := range m.engine.Registry.HomeRoutes() {
		desc, _ := m.engine.Registry.Lookup(route)
		out = append(out, common.Destination{
			Route:    route,
			Title:    m.engine.Catalog.Resolve(desc.Title),
			Selected: route == current,
		})
	}
	return out
}

func (m *Model) StatusView() string { return m.status.View() }

func (m *Model) HelpView() string { return m.help.View(m.keys) }

// Status returns the status bar text.
func (m *Model) Status() string { return m.status.Text() }

// Engine returns the engine the model renders.
func (m *Model) Engine() *app.Engine { return m.engine }
