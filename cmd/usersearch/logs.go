package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/usersearch/internal/config"
	"github.com/five82/usersearch/internal/logtail"
	"github.com/five82/usersearch/internal/search"
)

// NewLogsCmd creates the logs command.
func NewLogsCmd(globals *globalOptions) *cobra.Command {
	var lines int
	var grep string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the usersearch log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(globals.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if strings.TrimSpace(cfg.LogFile) == "" {
				return errors.New("logging is disabled (log_file is empty)")
			}

			var keep func(string) bool
			if grep != "" {
				keep = func(line string) bool { return search.ContainsFold(line, grep) }
			}
			tail, err := logtail.ReadMatching(cfg.LogFile, lines, keep)
			if err != nil {
				return err
			}
			for _, line := range logtail.ColorizeLines(tail, logtail.DefaultPalette()) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 = all)")
	cmd.Flags().StringVar(&grep, "grep", "", "only show lines containing TEXT (case-insensitive)")
	return cmd
}
