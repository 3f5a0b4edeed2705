// Package app constructs and wires the showcase state containers.
package app

import (
	"showcase/internal/action"
	"showcase/internal/catalog"
	"showcase/internal/chrome"
	"showcase/internal/errors"
	"showcase/internal/log"
	"showcase/internal/nav"
	"showcase/internal/prefs"
	"showcase/internal/screen"
	"showcase/internal/tabs"
	"showcase/internal/theme"
)

// Options configure New. Zero values select the embedded catalog, the
// built-in themes, an in-memory preference store and the guidelines tab.
type Options struct {
	StartRoute    string
	Catalog       *catalog.Catalog
	Store         prefs.Store
	Themes        []theme.Theme
	ThemeFallback string
	DarkMode      bool
}

// Engine holds every state container of one application instance.
type Engine struct {
	Catalog  *catalog.Catalog
	Registry *screen.Registry
	Stack    *nav.MemoryStack
	Observer *nav.Observer
	Tabs     *tabs.State
	Theme    *theme.State
	Channel  *action.Channel
	Chrome   *chrome.Manager
	Handler  *action.Handler
	Store    prefs.Store

	sub        *action.Subscription
	dialogOpen bool
}

// New builds an engine.
func New(opts Options) (*Engine, error) {
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Load(); err != nil {
			return nil, err
		}
	}
	reg, err := screen.Standard(cat)
	if err != nil {
		return nil, err
	}

	start := opts.StartRoute
	if start == "" {
		start = screen.RouteGuidelines
	}
	if _, ok := reg.Lookup(start); !ok {
		return nil, errors.NewConfigError("unknown start route", start, errors.InvalidConfig, nil)
	}

	store := opts.Store
	if store == nil {
		store = prefs.NewMemoryStore(nil)
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.Builtin()
	}
	themeState, err := theme.NewState(themes, store, theme.WithFallback(opts.ThemeFallback), theme.WithDarkMode(opts.DarkMode))
	if err != nil {
		return nil, err
	}

	e := &Engine{
		Catalog:  cat,
		Registry: reg,
		Stack:    nav.NewMemoryStack(start),
		Tabs:     tabs.NewState(),
		Theme:    themeState,
		Channel:  action.NewChannel(),
		Store:    store,
	}
	e.Observer = nav.NewObserver(e.Stack)
	e.Chrome = chrome.NewManager(e.Observer, reg, cat, themeState, e.Tabs)
	e.Handler = action.NewHandler(e.Observer, themeState, screen.RouteSearch,
		action.WithThemeDialog(func() { e.dialogOpen = true }))
	e.sub = e.Channel.Subscribe()

	log.With(log.F("start", start), log.F("routes", len(reg.Routes()))).Debug("engine ready")
	return e, nil
}

// Publish sends a chrome tap to the action channel.
func (e *Engine) Publish(k action.Kind) {
	if e.Channel.Publish(k) {
		log.With(log.F("action", k.String())).Debug("pending action replaced")
	}
}

// Subscription is the handler's subscription, for renderers that wait on it.
func (e *Engine) Subscription() *action.Subscription {
	return e.sub
}

// Dispatch handles the pending action, if any. Renderers call it on the turn
// after a tap.
func (e *Engine) Dispatch() (action.Outcome, bool) {
	k, ok := e.sub.TryNext()
	if !ok {
		return action.Ignored, false
	}
	return e.Handler.Handle(k), true
}

// Chrome state for the active destination.
func (e *Engine) State() chrome.State {
	return e.Chrome.State()
}

// ThemeDialogOpen reports whether the theme selection dialog is shown.
func (e *Engine) ThemeDialogOpen() bool { return e.dialogOpen }

// DismissThemeDialog hides the dialog without changing the theme.
func (e *Engine) DismissThemeDialog() { e.dialogOpen = false }

// SelectTheme applies name and closes the dialog. Persisting errors are
// logged; the selection still applies.
func (e *Engine) SelectTheme(name string) error {
	e.dialogOpen = false
	_, err := e.Theme.Select(name)
	if err != nil && errors.IsUnknownTheme(err) {
		return err
	}
	if err != nil {
		log.Warnf("theme %s applied but not saved: %v", name, err)
	}
	return nil
}

// SeedTheme loads the persisted theme synchronously. Renderers that load it
// asynchronously call Theme.LoadStored and Theme.Seed themselves.
func (e *Engine) SeedTheme() {
	name, _ := e.Theme.LoadStored()
	e.Theme.Seed(name)
}

// Close releases the channel and detaches the chrome manager.
func (e *Engine) Close() {
	e.Chrome.Close()
	e.Channel.Close()
}
