package main

import (
	"showcase/internal/app"
	"showcase/internal/config"
	"showcase/internal/prefs"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	cfgFile string
	debug   bool
}

// NewRootCmd creates the root command. Without a subcommand it starts the
// terminal UI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "showcase",
		Short:        "Browse UI components with synchronized app chrome",
		Long:         `Showcase lists guidelines, components and modules and keeps the top bar, tabs and bottom navigation in step with the screen you are on.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/showcase/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newGUICmd(opts))
	rootCmd.AddCommand(newRoutesCmd(opts))
	rootCmd.AddCommand(newThemesCmd(opts))

	return rootCmd
}

// loadConfig reads the configuration named by --config, or the default file.
// It returns the path so callers can watch it.
func (o *options) loadConfig() (*config.Config, string, error) {
	path := o.cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, "", err
		}
	}
	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, path, err
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, path, nil
}

func openStore(cfg *config.Config) (*prefs.FileStore, error) {
	path, err := cfg.ResolvePrefsPath()
	if err != nil {
		return nil, err
	}
	return prefs.OpenFile(path)
}

// engineOptions leaves Options.Store unset without a file store so the
// renderer picks its own.
func engineOptions(cfg *config.Config, store *prefs.FileStore, dark bool) app.Options {
	opts := app.Options{
		StartRoute:    cfg.StartRoute,
		ThemeFallback: cfg.Theme.Fallback,
		DarkMode:      dark,
	}
	if store != nil {
		opts.Store = store
	}
	return opts
}
