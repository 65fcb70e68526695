package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of one technology",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	rec, err := session.Get(args[0])
	if err != nil {
		return err
	}
	printer, err := printerFor(cmd, session)
	if err != nil {
		return err
	}
	printer.PrintTechnology(rec)
	return nil
}
