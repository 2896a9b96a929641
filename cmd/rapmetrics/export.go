package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rapmetrics/internal/score"
	"rapmetrics/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump stored scores as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		outPath, _ := cmd.Flags().GetString("out")

		dbPath, err := resolveDB(dbPath)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		ids, err := st.ArtistIDs()
		if err != nil {
			return err
		}

		all := make(map[string]map[string]score.Record, len(ids))
		for _, id := range ids {
			cached, err := st.CachedScores(id)
			if err != nil {
				return err
			}
			if cached == nil {
				continue
			}
			all[id] = cached
		}
		if len(all) == 0 {
			return fmt.Errorf("no cached scores in %s; run score first", dbPath)
		}

		blob, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal scores: %w", err)
		}
		if outPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(blob))
			return nil
		}
		if err := os.WriteFile(outPath, blob, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d artists to %s\n", len(all), outPath)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored artist and song counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")

		dbPath, err := resolveDB(dbPath)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		artists, err := st.CountRows("artists")
		if err != nil {
			return err
		}
		songs, err := st.CountRows("songs")
		if err != nil {
			return err
		}
		scored, err := st.CountRows("analysis_cache")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "artists: %d\nsongs: %d\nscored: %d\n", artists, songs, scored)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("db", "", "Path to the sqlite database (workspace default when empty)")
	exportCmd.Flags().String("out", "", "Output file (stdout when empty)")
	statusCmd.Flags().String("db", "", "Path to the sqlite database (workspace default when empty)")
}
