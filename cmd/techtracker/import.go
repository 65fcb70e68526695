package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/techtracker/internal/tracker"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a roadmap JSON file or a built-in sample",
	Long: "Validates a roadmap and adds its technologies to the collection. Imported technologies start as " +
		"not-started with empty notes. By default they are appended; --replace discards the collection first. " +
		"An invalid roadmap leaves the collection unchanged.",
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var (
	importSample  string
	importReplace bool
)

func init() {
	importCmd.Flags().StringVar(&importSample, "sample", "", "Name of a built-in roadmap to import (see samples)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace the collection instead of appending")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (importSample == "") {
		return errors.New("provide either a roadmap file or --sample")
	}

	mode := tracker.ImportMerge
	if importReplace {
		mode = tracker.ImportReplace
	}

	session, cleanup, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	var count int
	source := importSample
	if importSample != "" {
		count, err = session.ImportSample(cmd.Context(), importSample, mode)
	} else {
		source = args[0]
		content, readErr := os.ReadFile(source)
		if readErr != nil {
			return fmt.Errorf("failed to read roadmap file: %w", readErr)
		}
		count, err = session.Import(cmd.Context(), content, mode)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d technologies from %s\n", count, source)
	return nil
}
