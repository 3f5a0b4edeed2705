package messages

import (
	"showcase/internal/action"
	"showcase/internal/config"
)

type ErrorMsg struct {
	Err error
}

// ThemeLoadedMsg carries the persisted theme name read off the UI loop.
type ThemeLoadedMsg struct {
	Name  string
	Found bool
}

// ActionMsg is a chrome tap received from the action channel.
type ActionMsg struct {
	Kind action.Kind
}

// ActionsClosedMsg is sent once the action subscription ends.
type ActionsClosedMsg struct{}

type ConfigUpdateMsg struct {
	Config *config.Config
}
