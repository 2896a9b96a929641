package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"rapmetrics/internal/facts"
	"rapmetrics/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "rapmetrics",
	Short: "Heuristic quality scoring for French rap corpora",
	Long: `Rapmetrics ingests lyric corpora, runs the heuristic analyzers
(flow, punchlines, hooks, vocabulary, themes, innovation, integrity,
influence, peak) and stores the per-artist scores in a local sqlite
database for export.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
}

// loadFacts loads the curated dataset from path, or the embedded
// default when path is empty.
func loadFacts(path string) (*facts.Dataset, error) {
	if path == "" {
		return facts.Default()
	}
	return facts.Load(path)
}

// resolveDB returns the database path, defaulting to the shared
// workspace when the flag is unset.
func resolveDB(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	base, err := workspace.EnsureDefault()
	if err != nil {
		return "", err
	}
	return workspace.DBPath(base), nil
}

// stderrLogger routes engine diagnostics through the standard logger.
type stderrLogger struct{}

func (stderrLogger) Log(level, stage, message, detail string) {
	if detail != "" {
		log.Printf("[%s] %s: %s (%s)", level, stage, message, detail)
		return
	}
	log.Printf("[%s] %s: %s", level, stage, message)
}
