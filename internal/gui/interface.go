package gui

import (
	engine "showcase/internal/app"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Factory creates GUI instances
type Factory struct {
	opts engine.Options
}

// NewFactory creates a new GUI factory
func NewFactory(opts engine.Options) *Factory {
	return &Factory{opts: opts}
}

// Create builds the engine and a GUI rendering it. The returned release
// function closes the engine once the GUI has stopped.
func (f *Factory) Create() (Interface, func(), error) {
	return create(f.opts)
}

// Start runs the GUI until its window is closed.
func Start(opts engine.Options) error {
	ui, release, err := NewFactory(opts).Create()
	if err != nil {
		return err
	}
	defer release()
	ui.Run()
	return nil
}
