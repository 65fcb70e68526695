package main

import (
	"github.com/jonathan/techtracker/internal/roadmap"
	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the built-in roadmaps",
	Args:  cobra.NoArgs,
	RunE:  runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, _ []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	printer, err := printerFor(cmd, session)
	if err != nil {
		return err
	}
	printer.PrintSamples(roadmap.Samples())
	return nil
}
