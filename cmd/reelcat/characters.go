package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List every character appearing in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCharactersCmd,
}

func init() {
	rootCmd.AddCommand(charactersCmd)
}

func runCharactersCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	resp, err := client.Characters()
	if err != nil {
		return fmt.Errorf("list characters: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), resp)
		return nil
	}

	w := cmd.OutOrStdout()
	for _, c := range resp.Characters {
		fmt.Fprintln(w, c)
	}
	fmt.Fprintf(w, "\n%d characters\n", resp.Total)
	return nil
}
