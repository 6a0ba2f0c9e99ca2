package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/usersearch/internal/app"
	"github.com/five82/usersearch/internal/directory"
	"github.com/five82/usersearch/internal/search"
)

const findCommandLong = `Fetch the directory once and print the users matching QUERY.

Matching is a case-insensitive substring match on name, address, and items,
and a literal substring match on id and pincode. Results keep directory
order. Matched text is emphasized when writing to a terminal.`

// NewFindCmd creates the find command.
func NewFindCmd(globals *globalOptions) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "find QUERY",
		Short: "Print users matching a query",
		Long:  findCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New("--limit must not be negative")
			}
			env, err := app.Open(globals.appOptions())
			if err != nil {
				return err
			}
			defer env.Close()

			users, err := app.Fetch(cmd.Context(), env.Source, env.Logger)
			if err != nil {
				return fmt.Errorf("fetch users: %w", err)
			}

			query := args[0]
			matches := search.Filter(query, users)
			if matches == nil {
				matches = []directory.User{}
			}
			env.Logger.Debug("find", "query", query, "matches", len(matches))
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(matches)
			}
			return printMatches(cmd.OutOrStdout(), query, matches)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print matches as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "print at most N matches (0 = all)")
	return cmd
}

var (
	matchStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	idStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// printMatches writes one tab-separated line per user: id, name, address,
// and the items indicator when an item matched.
func printMatches(w io.Writer, query string, matches []directory.User) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No results found")
		return err
	}
	for _, u := range matches {
		fields := []string{
			idStyle.Render(u.ID.String()),
			emphasize(u.Name, query),
			emphasize(u.Address, query),
		}
		if search.MatchesItems(u, query) {
			fields = append(fields, faintStyle.Render(`"`+query+`" found in items`))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func emphasize(text, query string) string {
	var b strings.Builder
	for _, span := range search.Highlight(text, query) {
		if span.Match {
			b.WriteString(matchStyle.Render(span.Text))
		} else {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}
