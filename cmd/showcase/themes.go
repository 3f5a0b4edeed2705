package main

import (
	"fmt"

	"showcase/internal/theme"

	"github.com/spf13/cobra"
)

// newThemesCmd inspects and changes the persisted theme.
func newThemesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List or select the color theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available themes; the selected one is starred",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.themeState()
			if err != nil {
				return err
			}
			current := state.Current().Name
			for _, t := range state.Available() {
				marker := " "
				if t.Name == current {
					marker = "*"
				}
				brand := ""
				if t.Brand {
					brand = " (brand)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n", marker, t.Name, brand)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Select and persist a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.themeState()
			if err != nil {
				return err
			}
			changed, err := state.Select(args[0])
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Theme %s is already selected\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	})

	return cmd
}

// themeState loads the theme state seeded from the configured store.
func (o *options) themeState() (*theme.State, error) {
	cfg, _, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	cfg.ApplyLogging()

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	state, err := theme.NewState(theme.Builtin(), store, theme.WithFallback(cfg.Theme.Fallback))
	if err != nil {
		return nil, err
	}
	name, _ := state.LoadStored()
	state.Seed(name)
	return state, nil
}
