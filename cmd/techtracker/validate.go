package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/techtracker/internal/roadmap"
	"github.com/jonathan/techtracker/internal/schemas"
	rootschemas "github.com/jonathan/techtracker/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check roadmap files without importing them",
	Long: "Runs the import checks on each file and reports the first problem found. " +
		"With --strict each file is also checked against the published roadmap JSON Schema.",
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var (
	validateStrict      bool
	validateConcurrency int
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also validate against the roadmap JSON Schema")
	validateCmd.Flags().IntVar(&validateConcurrency, "concurrency", 4, "Files checked in parallel")

	rootCmd.AddCommand(validateCmd)
}

// fileResult is the outcome of checking one roadmap file
type fileResult struct {
	Path  string
	Count int
	Err   error
}

// validateFiles checks every path and returns results in argument order.
// A failing file does not stop the others.
func validateFiles(ctx context.Context, paths []string, strict bool, limit int) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path, strict)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(path string, strict bool) fileResult {
	result := fileResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to read file: %w", err)
		return result
	}

	doc, err := roadmap.Parse(content)
	if err != nil {
		result.Err = err
		return result
	}
	result.Count = len(doc.Technologies)

	if strict {
		if err := schemas.ValidateBytes(rootschemas.Roadmap, content); err != nil {
			result.Err = err
		}
	}
	return result
}

func runValidate(cmd *cobra.Command, args []string) error {
	results, err := validateFiles(cmd.Context(), args, validateStrict, validateConcurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "✗ %s: %v\n", r.Path, r.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "✓ %s (%d technologies)\n", r.Path, r.Count)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(results))
	}
	return nil
}
