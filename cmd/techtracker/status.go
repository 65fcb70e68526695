package main

import (
	"fmt"

	"github.com/jonathan/techtracker/internal/types"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set the learning status of a technology",
	Long:  "Sets the status to not-started, in-progress or completed. Any status may follow any other.",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

var notesCmd = &cobra.Command{
	Use:   "notes <id> <text>",
	Short: "Replace the notes of a technology",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotes,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(notesCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := types.ParseStatus(args[1])
	if err != nil {
		return err
	}

	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.SetStatus(cmd.Context(), args[0], status); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", args[0], status)
	return nil
}

func runNotes(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.SetNotes(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated notes for %s\n", args[0])
	return nil
}
