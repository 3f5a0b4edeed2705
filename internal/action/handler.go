package action

import (
	"context"

	"showcase/internal/errors"
	"showcase/internal/log"
)

// Navigator performs a plain navigation.
type Navigator interface {
	Navigate(route string) bool
}

// DarkModeToggler flips the dark mode flag and returns the new value.
type DarkModeToggler interface {
	ToggleDarkMode() bool
}

// Outcome reports what handling an action did.
type Outcome int

const (
	Ignored Outcome = iota
	Navigated
	ThemeDialogRequested
	ModeToggled
)

func (o Outcome) String() string {
	switch o {
	case Navigated:
		return "navigated"
	case ThemeDialogRequested:
		return "theme_dialog_requested"
	case ModeToggled:
		return "mode_toggled"
	}
	return "ignored"
}

// Handler resolves published actions. It is the single top-level subscriber.
type Handler struct {
	nav             Navigator
	theme           DarkModeToggler
	searchRoute     string
	openThemeDialog func()
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithThemeDialog sets the callback that opens the theme selection dialog.
func WithThemeDialog(open func()) HandlerOption {
	return func(h *Handler) { h.openThemeDialog = open }
}

// NewHandler creates a handler navigating to searchRoute for Search actions.
func NewHandler(nav Navigator, theme DarkModeToggler, searchRoute string, opts ...HandlerOption) *Handler {
	h := &Handler{nav: nav, theme: theme, searchRoute: searchRoute}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle resolves one action.
func (h *Handler) Handle(k Kind) Outcome {
	logger := log.With(log.F("action", k.String()))
	switch k {
	case Search:
		if h.nav.Navigate(h.searchRoute) {
			return Navigated
		}
		return Ignored
	case ChangeTheme:
		if h.openThemeDialog != nil {
			h.openThemeDialog()
		}
		return ThemeDialogRequested
	case ChangeMode:
		dark := h.theme.ToggleDarkMode()
		logger.Debugf("dark mode now %t", dark)
		return ModeToggled
	}
	logger.Warn("unhandled chrome action")
	return Ignored
}

// Run handles actions from sub until ctx is done or sub is closed. A closed
// subscription ends the loop without error.
func (h *Handler) Run(ctx context.Context, sub *Subscription) error {
	for {
		k, err := sub.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
		h.Handle(k)
	}
}
