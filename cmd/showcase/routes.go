package main

import (
	"fmt"
	"strings"

	"showcase/internal/app"
	"showcase/internal/chrome"
	"showcase/internal/errors"
	"showcase/internal/nav"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

// newRoutesCmd prints the registered routes with the chrome each one derives.
func newRoutesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes [pattern]",
		Short: "List registered routes and their derived chrome",
		Long:  `List every registered route with the top bar, actions and bottom bar it gets by default. An optional glob pattern filters the routes, e.g. "components/variant/*".`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match := func(string) bool { return true }
			if len(args) == 1 {
				g, err := glob.Compile(args[0], '/')
				if err != nil {
					return errors.Wrapf(err, "invalid pattern %q", args[0])
				}
				match = g.Match
			}

			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cfg.ApplyLogging()

			e, err := app.New(app.Options{DarkMode: cfg.SeedDarkMode(nil)})
			if err != nil {
				return err
			}
			defer e.Close()

			var rows [][]string
			for _, route := range e.Registry.Routes() {
				if !match(route) {
					continue
				}
				in := e.Chrome.Inputs()
				in.Snapshot = nav.Snapshot{CurrentRoute: route}
				rows = append(rows, routeRow(chrome.Compute(in)))
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No routes match.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ROUTE", "TITLE", "BACK", "ACTIONS", "BOTTOM BAR", "FLAGS").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func routeRow(st chrome.State) []string {
	actions := make([]string, 0, len(st.Actions))
	for _, a := range st.Actions {
		actions = append(actions, a.Icon)
	}

	var flags []string
	if st.IsOverridden {
		flags = append(flags, "own chrome")
	}
	if st.IsLarge {
		flags = append(flags, "large")
	}
	if st.SearchMode {
		flags = append(flags, "search")
	}

	return []string{
		st.Route,
		st.Title,
		yesNo(st.NavigationIconVisible),
		strings.Join(actions, " "),
		yesNo(st.BottomBarVisible),
		strings.Join(flags, ", "),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
