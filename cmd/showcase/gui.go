package main

import (
	"showcase/internal/app"
	"showcase/internal/config"
	"showcase/internal/errors"
	"showcase/internal/gui"
	"showcase/internal/log"
	"showcase/internal/prefs"

	"github.com/spf13/cobra"
)

// newGUICmd creates the GUI command for the CLI
func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the desktop version of the showcase. The selected theme is kept in the desktop preferences unless prefs_path is configured.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return errors.New("GUI not available in this build")
			}
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cfg.ApplyLogging()
			return gui.Start(guiOptions(cfg))
		},
	}
}

func guiOptions(cfg *config.Config) app.Options {
	var store *prefs.FileStore
	if cfg.PrefsPath != "" {
		s, err := openStore(cfg)
		if err != nil {
			log.Warnf("using desktop preferences: %v", err)
		} else {
			store = s
		}
	}
	return engineOptions(cfg, store, cfg.SeedDarkMode(nil))
}
