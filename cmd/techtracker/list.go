package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/techtracker/internal/collection"
	"github.com/jonathan/techtracker/internal/types"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked technologies",
	Long:  "Lists technologies, optionally filtered by a search term over title and description, a status and a category.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listSearch   string
	listStatus   string
	listCategory string
	listJSON     bool
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search over title and description")
	listCmd.Flags().StringVar(&listStatus, "status", collection.All, "Status filter: not-started, in-progress, completed or all")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", collection.All, "Category filter or all")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print matching records as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	status := listStatus
	if status != collection.All && status != "" {
		parsed, err := types.ParseStatus(status)
		if err != nil {
			return err
		}
		status = string(parsed)
	}

	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	records := session.List(collection.Filter{Query: listSearch, Status: status, Category: listCategory})

	if listJSON {
		jsonBytes, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal technologies: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonBytes)
		return nil
	}

	printer, err := printerFor(cmd, session)
	if err != nil {
		return err
	}
	printer.PrintTechnologies(records, len(session.Technologies()))
	return nil
}
