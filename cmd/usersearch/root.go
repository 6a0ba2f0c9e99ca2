package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/usersearch/internal/app"
	"github.com/five82/usersearch/internal/directory"
)

// tuiRunner runs the interactive search and returns the selected user.
type tuiRunner func(ctx context.Context, opts app.Options) (*directory.User, error)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	dataURL    string
	logLevel   string
}

func (g *globalOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		DataURL:    g.dataURL,
		LogLevel:   g.logLevel,
	}
}

const rootCommandLong = `Search a user directory interactively.

Type to filter users by id, name, address, pincode, or item. Use the arrow
keys or the mouse to highlight a result and enter or a click to select it.
The selected user is printed on exit as "<id><TAB><name>" (or JSON with
--json) so the command composes with shell pipelines.`

// NewRootCmd creates the root command with explicit dependencies.
func NewRootCmd(runTUI tuiRunner) *cobra.Command {
	if runTUI == nil {
		panic("NewRootCmd: runTUI dependency cannot be nil")
	}

	globals := &globalOptions{}
	var theme string
	var selectID string
	var asJSON bool

	root := &cobra.Command{
		Use:           "usersearch",
		Short:         "Interactive user directory search",
		Long:          rootCommandLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := globals.appOptions()
			opts.Theme = theme
			opts.SelectID = selectID

			selected, err := runTUI(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if selected == nil {
				return nil
			}
			return printSelection(cmd.OutOrStdout(), *selected, asJSON)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&globals.configPath, "config", "", "config file (default ~/.config/usersearch/config.toml)")
	flags.StringVar(&globals.dataURL, "url", "", "directory location: http(s) URL, file:// URL, or path")
	flags.StringVar(&globals.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.Flags().StringVar(&theme, "theme", "", "color theme: Nightfox, Kanagawa, Slate")
	root.Flags().StringVar(&selectID, "select", "", "pre-select the user with this id")
	root.Flags().BoolVar(&asJSON, "json", false, "print the selected user as JSON")

	root.AddCommand(
		NewFindCmd(globals),
		NewLogsCmd(globals),
		NewVersionCmd(version),
	)
	return root
}

func printSelection(w io.Writer, u directory.User, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(u)
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", u.ID, u.Name)
	return err
}
