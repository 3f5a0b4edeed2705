//go:build !nogui
// +build !nogui

package gui

import (
	engine "showcase/internal/app"
	"showcase/internal/chrome"
	"showcase/internal/demo"
	"showcase/internal/log"
	"showcase/internal/nav"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// AppID keys the fyne preferences the selected theme is stored in.
const AppID = "io.github.showcase"

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	engine     *engine.Engine

	search *widget.Entry
	status *widget.Label
	items  *fyne.Container

	dialog     *dialog.CustomDialog
	themeRadio *widget.RadioGroup

	// Destination state, rebuilt when the back stack entry changes
	entry     *nav.Entry
	topBar    *demo.TopBarCustomizer
	tabsDemo  *demo.TabsCustomizer
	collapsed bool

	// Widgets of the last build
	navButton      *widget.Button
	actionButtons  []*widget.Button
	overflowButton *widget.Button
	smallTitle     *widget.Label
	largeTitle     *widget.Label
	tabButtons     []*widget.Button
	destButtons    []*widget.Button
	itemButtons    []*widget.Button
}

func create(opts engine.Options) (Interface, func(), error) {
	fa := fyneapp.NewWithID(AppID)
	if opts.Store == nil {
		opts.Store = NewPreferencesStore(fa.Preferences())
	}
	e, err := engine.New(opts)
	if err != nil {
		return nil, nil, err
	}
	e.SeedTheme()
	return NewApp(e, fa), e.Close, nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// NewApp creates the GUI for engine e inside fyne application fa.
func NewApp(e *engine.Engine, fa fyne.App) *App {
	a := &App{
		fyneApp: fa,
		engine:  e,
		status:  widget.NewLabel(""),
		items:   container.NewVBox(),
	}
	a.mainWindow = fa.NewWindow(e.Catalog.Resolve("app_name"))
	a.mainWindow.Resize(fyne.NewSize(480, 720))

	a.search = widget.NewEntry()
	a.search.SetPlaceHolder(e.Catalog.Resolve("search_text_field_hint"))
	a.search.OnChanged = a.searchChanged

	a.refresh()
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.Show()
	a.fyneApp.Run()
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.Errorf("%s: %v", title, err)
	dialog.ShowError(err, a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

// refresh redraws the window from the engine state.
func (a *App) refresh() {
	a.syncDestination()
	a.fyneApp.Settings().SetTheme(newPaletteTheme(a.engine.Theme.Palette(), a.engine.Theme.DarkMode()))
	a.mainWindow.SetContent(a.build())
	a.syncDialog()
}

// syncDestination rebuilds the destination state after a committed
// navigation.
func (a *App) syncDestination() {
	snap := a.engine.Observer.Snapshot()
	if snap.Entry == a.entry {
		return
	}
	a.entry = snap.Entry
	a.collapsed = false
	a.topBar, a.tabsDemo = a.engine.Customizers()

	q, _ := a.entry.State[engine.StateQuery].(string)
	a.search.OnChanged = nil
	a.search.SetText(q)
	a.search.OnChanged = a.searchChanged
}

// drain handles the pending chrome action, then redraws.
func (a *App) drain() {
	for {
		outcome, ok := a.engine.Dispatch()
		if !ok {
			break
		}
		log.With(log.F("outcome", outcome.String())).Debug("chrome action handled")
	}
	a.refresh()
}

func (a *App) tapAction(b chrome.ActionButton) {
	if b.Custom {
		a.setStatus(b.Label + " clicked")
		return
	}
	a.engine.Publish(b.Action)
	a.drain()
}

func (a *App) back() {
	a.engine.Observer.Back()
	a.refresh()
}

func (a *App) open(it engine.Item) {
	a.engine.Open(it)
	a.refresh()
}

func (a *App) openDestination(route string) {
	a.engine.Observer.NavigateToRoot(route)
	a.refresh()
}

func (a *App) selectTab(page int) {
	a.engine.Tabs.Select(page)
	a.refresh()
}

func (a *App) searchChanged(q string) {
	if a.entry != nil {
		a.entry.State[engine.StateQuery] = q
	}
	a.fillItems()
}

// syncDialog follows the engine's theme dialog flag.
func (a *App) syncDialog() {
	open := a.engine.ThemeDialogOpen()
	switch {
	case open && a.dialog == nil:
		a.showThemeDialog()
	case !open && a.dialog != nil:
		d := a.dialog
		a.dialog, a.themeRadio = nil, nil
		d.Hide()
	}
}

func (a *App) showThemeDialog() {
	snap := a.engine.Theme.Snapshot()
	names := make([]string, 0, len(snap.Available))
	for _, t := range snap.Available {
		names = append(names, t.Name)
	}

	radio := widget.NewRadioGroup(names, nil)
	radio.Selected = snap.Current.Name
	radio.OnChanged = func(name string) {
		if name == "" {
			return
		}
		if err := a.engine.SelectTheme(name); err != nil {
			a.ShowError("Theme", err)
			return
		}
		a.setStatus("Theme: " + a.engine.Theme.Current().Name)
		a.refresh()
	}

	d := dialog.NewCustom(a.engine.Catalog.Resolve("top_app_bar_action_change_theme_desc"), "Cancel", radio, a.mainWindow)
	d.SetOnClosed(func() {
		if a.dialog != d {
			return
		}
		a.dialog, a.themeRadio = nil, nil
		a.engine.DismissThemeDialog()
		a.refresh()
	})
	a.dialog, a.themeRadio = d, radio
	d.Show()
}
