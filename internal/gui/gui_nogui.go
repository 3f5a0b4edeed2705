//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	engine "showcase/internal/app"
)

func create(engine.Options) (Interface, func(), error) {
	return nil, nil, fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
