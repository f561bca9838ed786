package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/catalog"
)

var filmsCmd = &cobra.Command{
	Use:   "films",
	Short: "List films in the catalog",
	Long: `List films filtered by character and sorted by year or title.

Hidden films are omitted unless --all is given, in which case they are
listed with a "-" marker.

Examples:
  reelcat films                          # Source order, everything visible
  reelcat films --character "Iron Man"   # Only films featuring Iron Man
  reelcat films --sort year              # Oldest first
  reelcat films --character Thor --sort title --all`,
	Args: cobra.NoArgs,
	RunE: runFilmsCmd,
}

func init() {
	rootCmd.AddCommand(filmsCmd)
	filmsCmd.Flags().String("character", "", "Show only films featuring this character (\"all\" for every film)")
	filmsCmd.Flags().String("sort", "", "Sort order: year or title")
	filmsCmd.Flags().Bool("all", false, "Include films hidden by the filter")
}

func runFilmsCmd(cmd *cobra.Command, _ []string) error {
	character, _ := cmd.Flags().GetString("character")
	sortKey, _ := cmd.Flags().GetString("sort")
	showHidden, _ := cmd.Flags().GetBool("all")

	// Reject bad keys before making a request.
	if _, err := catalog.ParseSortKey(sortKey); err != nil {
		return err
	}

	client := NewClient(serverURL)
	resp, err := client.Films(character, sortKey)
	if err != nil {
		return fmt.Errorf("list films: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), resp)
		return nil
	}

	printFilms(cmd.OutOrStdout(), resp, showHidden)
	return nil
}

func printFilms(w io.Writer, resp *ListFilmsResponse, showHidden bool) {
	for _, f := range resp.Items {
		if !f.Visible && !showHidden {
			continue
		}
		marker := " "
		if !f.Visible {
			marker = "-"
		}
		fmt.Fprintf(w, "%s %4d  %s\n", marker, f.Year, f.Title)
		if len(f.Directors) > 0 {
			fmt.Fprintf(w, "        Directed by %s\n", strings.Join(f.Directors, ", "))
		}
	}

	fmt.Fprintf(w, "\nShowing %d of %d films", resp.Visible, resp.Total)
	if resp.Character != "" && resp.Character != catalog.ShowAll {
		fmt.Fprintf(w, " featuring %s", resp.Character)
	}
	if resp.Sort != "" {
		fmt.Fprintf(w, ", sorted by %s", resp.Sort)
	}
	fmt.Fprintln(w)

	if len(resp.Suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(resp.Suggestions, ", "))
	}
}
