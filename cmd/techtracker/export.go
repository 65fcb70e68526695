package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as a roadmap JSON file",
	Long: "Writes every technology, with its status, notes and resources, to a roadmap file. " +
		"The default file name is the roadmap name with whitespace replaced by underscores, followed by the date. " +
		"Use --out - to write to stdout.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportName string
	exportOut  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "Roadmap name (defaults to the configured roadmap name)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file or directory, - for stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	jsonBytes, fileName, err := session.Export(exportName)
	if err != nil {
		return err
	}

	if exportOut == "-" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonBytes)
		return nil
	}

	outputFile := fileName
	if exportOut != "" {
		outputFile = exportOut
		if info, err := os.Stat(exportOut); err == nil && info.IsDir() {
			outputFile = filepath.Join(exportOut, fileName)
		}
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d technologies\n", len(session.Technologies()))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputFile)
	return nil
}
