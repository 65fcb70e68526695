package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one technology",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every technology",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearConfirmed bool

func init() {
	clearCmd.Flags().BoolVar(&clearConfirmed, "yes", false, "Confirm deleting the whole collection")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	if !clearConfirmed {
		return errors.New("refusing to delete every technology without --yes")
	}

	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	count := len(session.Technologies())
	session.ClearAll(cmd.Context())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d technologies\n", count)
	return nil
}
