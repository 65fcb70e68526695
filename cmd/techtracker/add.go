package main

import (
	"fmt"

	"github.com/jonathan/techtracker/internal/types"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a technology manually",
	Long:  "Adds a technology with a generated id. New technologies start as not-started; category defaults to other.",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var (
	addTitle       string
	addDescription string
	addCategory    string
	addNotes       string
)

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Technology title (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Short description (required)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (default other)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Initial notes")

	if err := addCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}
	if err := addCmd.MarkFlagRequired("description"); err != nil {
		panic(fmt.Sprintf("failed to mark description flag as required: %v", err))
	}

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	input := types.NewTechnologyInput{
		Title:       addTitle,
		Description: addDescription,
		Category:    addCategory,
		Notes:       addNotes,
	}

	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	rec, err := session.Add(cmd.Context(), input)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", rec.Title, rec.ID)
	return nil
}
