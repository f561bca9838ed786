package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check <dataset.json>",
	Short: "Validate a dataset file (local, no server needed)",
	Long: `Load a dataset file the same way reelcatd does and report what it holds.

Exits non-zero if the file is missing, is not valid JSON, is not an array,
or contains a record that does not decode as a film.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckCmd,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	Path       string   `json:"path"`
	Films      int      `json:"films"`
	Characters []string `json:"characters"`
	FirstYear  int      `json:"first_year,omitempty"`
	LastYear   int      `json:"last_year,omitempty"`
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cat, err := catalog.LoadFile(args[0])
	if err != nil {
		return err
	}

	result := summarize(args[0], cat)
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), result)
		return nil
	}
	printCheckHuman(cmd.OutOrStdout(), result)
	return nil
}

func summarize(path string, cat *catalog.Catalog) checkResult {
	r := checkResult{
		Path:       path,
		Films:      cat.Len(),
		Characters: cat.Characters(),
	}
	for i, f := range cat.Films() {
		if i == 0 || f.Year < r.FirstYear {
			r.FirstYear = f.Year
		}
		if f.Year > r.LastYear {
			r.LastYear = f.Year
		}
	}
	return r
}

func printCheckHuman(w io.Writer, r checkResult) {
	fmt.Fprintf(w, "Dataset:    %s\n", r.Path)
	fmt.Fprintf(w, "Films:      %d\n", r.Films)
	if r.Films > 0 {
		fmt.Fprintf(w, "Years:      %d-%d\n", r.FirstYear, r.LastYear)
	}
	fmt.Fprintf(w, "Characters: %d\n", len(r.Characters))
	fmt.Fprintln(w, "\nDataset OK")
}
