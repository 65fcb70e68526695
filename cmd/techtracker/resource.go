package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Manage the resource links of a technology",
}

var resourceAddCmd = &cobra.Command{
	Use:   "add <id> <url>",
	Short: "Attach a resource link to a technology",
	Long:  "Appends an absolute URL to the technology's own resources. Links already present are rejected.",
	Args:  cobra.ExactArgs(2),
	RunE:  runResourceAdd,
}

func init() {
	resourceCmd.AddCommand(resourceAddCmd)
	rootCmd.AddCommand(resourceCmd)
}

func runResourceAdd(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.AddResource(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added resource to %s\n", args[0])
	return nil
}
