package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rapmetrics/internal/engine"
	"rapmetrics/internal/ingest"
	"rapmetrics/internal/store"
	"rapmetrics/internal/textnorm"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Ingest a corpus directory and score every artist",
	Long: `Score loads lyric files from the corpus directory (one
subdirectory per artist), stores them, runs all analyzers, and persists
the resulting scores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpusDir, _ := cmd.Flags().GetString("corpus")
		dbPath, _ := cmd.Flags().GetString("db")
		factsPath, _ := cmd.Flags().GetString("facts")
		workers, _ := cmd.Flags().GetInt("workers")

		ds, err := loadFacts(factsPath)
		if err != nil {
			return fmt.Errorf("load facts: %w", err)
		}
		dbPath, err = resolveDB(dbPath)
		if err != nil {
			return err
		}

		artists, err := ingest.LoadDir(corpusDir)
		if err != nil {
			return err
		}
		if len(artists) == 0 {
			return fmt.Errorf("no lyric files found under %s", corpusDir)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		songCounts := make(map[string]int, len(artists))
		for _, a := range artists {
			if err := st.SaveArtist(a.ID, a.Name); err != nil {
				return err
			}
			songs := make([]store.Song, 0, len(a.Songs))
			for _, sg := range a.Songs {
				songs = append(songs, store.Song{Title: sg.Title, Lyrics: sg.Lyrics, Source: sg.Source})
			}
			if err := st.SaveSongs(a.ID, songs); err != nil {
				return err
			}
			songCounts[a.ID] = len(a.Songs)
		}

		allLyrics, err := st.AllCombinedLyrics()
		if err != nil {
			return err
		}

		eng := engine.New(textnorm.Heuristic{}, ds, stderrLogger{}, workers)
		results := eng.ScoreAll(allLyrics)
		for _, sc := range results {
			if err := st.SaveScores(sc, songCounts[sc.ArtistID]); err != nil {
				return err
			}
		}

		printScores(cmd, results)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("corpus", "corpus", "Directory of lyric files, one subdirectory per artist")
	scoreCmd.Flags().String("db", "", "Path to the sqlite database (workspace default when empty)")
	scoreCmd.Flags().String("facts", "", "Artist facts dataset (yaml); embedded default when empty")
	scoreCmd.Flags().Int("workers", 0, "Scoring workers (0 = one per CPU)")
}

func printScores(cmd *cobra.Command, results map[string]engine.ArtistScores) {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "artist")
	for _, m := range engine.Metrics {
		fmt.Fprintf(w, "\t%s", m)
	}
	fmt.Fprintln(w)
	for _, id := range ids {
		fmt.Fprint(w, id)
		for _, m := range engine.Metrics {
			fmt.Fprintf(w, "\t%d", results[id].Scores[m].FinalScore)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
