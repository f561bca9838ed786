package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), status)
		return nil
	}

	printStatusHuman(cmd.OutOrStdout(), serverURL, status)
	return nil
}

func printStatusHuman(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "Server:     %s (%s)\n", server, s.Status)
	fmt.Fprintf(w, "Version:    %s\n", s.Version)
	fmt.Fprintf(w, "Films:      %d\n", s.Films)
	fmt.Fprintf(w, "Characters: %d\n", s.Characters)
}
