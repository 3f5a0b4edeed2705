package main

import (
	"os"
	"path/filepath"

	"showcase/internal/app"
	"showcase/internal/config"
	"showcase/internal/errors"
	"showcase/internal/log"
	"showcase/internal/tui"
	"showcase/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// newTUICmd represents the TUI command
func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *options) error {
	cfg, cfgPath, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	cfg.ApplyLogging(log.WithOutput(logFile))

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	e, err := app.New(engineOptions(cfg, store, cfg.SeedDarkMode(lipgloss.HasDarkBackground)))
	if err != nil {
		return err
	}
	defer e.Close()

	var programOpts []tea.ProgramOption
	if cfg.TUI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(e), programOpts...)

	w, err := config.Watch(cfgPath, func(c *config.Config) {
		c.ApplyLogging(log.WithOutput(logFile))
		p.Send(messages.ConfigUpdateMsg{Config: c})
	})
	if err != nil {
		log.Warnf("config hot reload disabled: %v", err)
	} else {
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running TUI")
	}
	return nil
}

// openLogFile keeps log output off the terminal the UI draws on.
func openLogFile(cfg *config.Config) (*os.File, error) {
	path := cfg.Log.File
	if path == "" {
		path = filepath.Join(os.TempDir(), "showcase.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	return f, nil
}
