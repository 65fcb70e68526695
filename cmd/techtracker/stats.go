package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise learning progress",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the summary as JSON")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	stats := session.Stats()
	if statsJSON {
		jsonBytes, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonBytes)
		return nil
	}

	printer, err := printerFor(cmd, session)
	if err != nil {
		return err
	}
	printer.PrintStats(stats)
	return nil
}
