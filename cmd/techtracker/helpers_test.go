package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/techtracker/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

var roadmapsDir = filepath.Join("..", "..", "testdata", "roadmaps")

// getBinaryPath returns the path to the techtracker binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "techtracker"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/techtracker ./cmd/techtracker'", binaryPath)
	}

	return binaryPath
}

// useTempStore points the CLI at a fresh SQLite file for the current test
func useTempStore(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	t.Setenv("TECHTRACKER_STORE", "sqlite")
	t.Setenv("TECHTRACKER_DATA_PATH", dbPath)
	t.Setenv("TECHTRACKER_SEED", "")
	t.Setenv("TECHTRACKER_ROADMAP_NAME", "")
	t.Setenv("TECHTRACKER_VERBOSE", "")
	return dbPath
}

// executeCommand runs the root command in-process and returns its stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so values do not leak
// between in-process runs
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// listRecords returns the records printed by list --json with extra filter args
func listRecords(t *testing.T, args ...string) []types.TechnologyRecord {
	t.Helper()
	output, err := executeCommand(t, append([]string{"list", "--json"}, args...)...)
	require.NoError(t, err)

	var records []types.TechnologyRecord
	require.NoError(t, json.Unmarshal([]byte(output), &records))
	return records
}
