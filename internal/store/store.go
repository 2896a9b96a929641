// Package store persists artists, songs, and computed scores in a
// local sqlite database. It is the cache between corpus ingestion and
// scoring runs: lyrics collected once are re-scored without re-reading
// the source files, and score rows survive between runs for export.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"rapmetrics/internal/corpus"
	"rapmetrics/internal/engine"
	"rapmetrics/internal/score"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS artists (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    last_updated TIMESTAMP
);

CREATE TABLE IF NOT EXISTS songs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    artist_id TEXT NOT NULL,
    title TEXT NOT NULL,
    lyrics TEXT,
    source TEXT,
    collected_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE INDEX IF NOT EXISTS idx_songs_artist ON songs(artist_id);

CREATE TABLE IF NOT EXISTS analysis_cache (
    artist_id TEXT PRIMARY KEY,
    unique_words INTEGER,
    flow_score REAL,
    punchline_score REAL,
    hook_score REAL,
    total_songs INTEGER,
    total_words INTEGER,
    scores_json TEXT,
    analyzed_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE TABLE IF NOT EXISTS artist_innovation (
    artist_id TEXT PRIMARY KEY,
    style_uniqueness REAL DEFAULT 0,
    vocabulary_distinctiveness REAL DEFAULT 0,
    first_mover_score REAL DEFAULT 0,
    genre_fusion_score REAL DEFAULT 0,
    total_innovation_score REAL DEFAULT 0,
    computed_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE TABLE IF NOT EXISTS artist_integrity (
    artist_id TEXT PRIMARY KEY,
    consistency_score REAL DEFAULT 0,
    independence_score REAL DEFAULT 0,
    trend_resistance REAL DEFAULT 0,
    feature_selectivity REAL DEFAULT 0,
    total_integrity_score REAL DEFAULT 0,
    computed_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE TABLE IF NOT EXISTS artist_influence (
    artist_id TEXT PRIMARY KEY,
    presence_score REAL DEFAULT 0,
    awards_score REAL DEFAULT 0,
    citation_score REAL DEFAULT 0,
    charts_efficiency REAL DEFAULT 0,
    total_influence_score REAL DEFAULT 0,
    computed_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE TABLE IF NOT EXISTS artist_themes (
    artist_id TEXT PRIMARY KEY,
    dominant_theme TEXT,
    dominant_theme_weight REAL DEFAULT 0,
    theme_entropy REAL DEFAULT 0,
    coherence_score REAL DEFAULT 0,
    computed_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE TABLE IF NOT EXISTS artist_peak (
    artist_id TEXT PRIMARY KEY,
    peak_album_score REAL DEFAULT 0,
    classic_tracks_count INTEGER DEFAULT 0,
    total_peak_score REAL DEFAULT 0,
    computed_at TIMESTAMP,
    FOREIGN KEY (artist_id) REFERENCES artists(id)
);
`

// metricTables maps per-metric detail tables to their artist_id delete
// statements, used by ClearArtist.
var metricTables = []string{
	"artist_innovation", "artist_integrity", "artist_influence",
	"artist_themes", "artist_peak",
}

// Store wraps an open sqlite connection with the schema applied.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Song is one stored track. Source records where the lyrics came from,
// typically the ingested file path.
type Song struct {
	Title  string
	Lyrics string
	Source string
}

// SaveArtist inserts or refreshes an artist row, bumping last_updated.
func (s *Store) SaveArtist(artistID, name string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO artists (id, name, last_updated) VALUES (?, ?, ?)`,
		artistID, name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save artist %s: %w", artistID, err)
	}
	return nil
}

// SaveSongs replaces the stored songs for an artist in one transaction.
func (s *Store) SaveSongs(artistID string, songs []Song) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM songs WHERE artist_id = ?`, artistID); err != nil {
		return fmt.Errorf("clear songs: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, sg := range songs {
		if _, err := tx.Exec(
			`INSERT INTO songs (artist_id, title, lyrics, source, collected_at) VALUES (?, ?, ?, ?, ?)`,
			artistID, sg.Title, sg.Lyrics, sg.Source, now,
		); err != nil {
			return fmt.Errorf("insert song %q: %w", sg.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ArtistLyrics returns the stored lyrics texts for one artist.
func (s *Store) ArtistLyrics(artistID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT lyrics FROM songs WHERE artist_id = ? AND lyrics IS NOT NULL ORDER BY id`,
		artistID,
	)
	if err != nil {
		return nil, fmt.Errorf("query lyrics: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan lyrics: %w", err)
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

// CombinedLyrics returns all of an artist's lyrics joined into the
// single combined document the analyzers consume.
func (s *Store) CombinedLyrics(artistID string) (string, error) {
	songs, err := s.ArtistLyrics(artistID)
	if err != nil {
		return "", err
	}
	return corpus.CombineSongs(songs), nil
}

// AllCombinedLyrics returns the combined-lyrics document for every
// stored artist, keyed by artist ID. This is the input to a scoring run.
func (s *Store) AllCombinedLyrics() (map[string]string, error) {
	ids, err := s.ArtistIDs()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		combined, err := s.CombinedLyrics(id)
		if err != nil {
			return nil, err
		}
		out[id] = combined
	}
	return out, nil
}

// ArtistIDs returns all stored artist IDs in lexical order.
func (s *Store) ArtistIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM artists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan artist id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SongCount returns the number of stored songs for an artist.
func (s *Store) SongCount(artistID string) (int, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM songs WHERE artist_id = ?`, artistID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

// SaveScores persists one artist's full score set: the summary row in
// analysis_cache (with the complete record set as JSON) plus the
// per-metric detail tables.
func (s *Store) SaveScores(sc engine.ArtistScores, totalSongs int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)

	blob, err := json.Marshal(sc.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	vocab := sc.Scores[engine.MetricVocabulary]
	totalWords := 0
	if v, ok := vocab.Extras["total_words"].(int); ok {
		totalWords = v
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO analysis_cache
		(artist_id, unique_words, flow_score, punchline_score, hook_score,
		 total_songs, total_words, scores_json, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.ArtistID,
		vocab.FinalScore,
		sc.Scores[engine.MetricFlow].FinalScore,
		sc.Scores[engine.MetricPunchline].FinalScore,
		sc.Scores[engine.MetricHook].FinalScore,
		totalSongs,
		totalWords,
		string(blob),
		now,
	); err != nil {
		return fmt.Errorf("insert analysis cache: %w", err)
	}

	inn := sc.Scores[engine.MetricInnovation]
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO artist_innovation
		(artist_id, style_uniqueness, vocabulary_distinctiveness,
		 first_mover_score, genre_fusion_score, total_innovation_score, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sc.ArtistID,
		inn.Subscores["style_uniqueness"],
		inn.Subscores["vocabulary_distinctiveness"],
		inn.Subscores["first_mover"],
		inn.Subscores["genre_fusion"],
		float64(inn.FinalScore),
		now,
	); err != nil {
		return fmt.Errorf("insert innovation: %w", err)
	}

	integ := sc.Scores[engine.MetricIntegrity]
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO artist_integrity
		(artist_id, consistency_score, independence_score,
		 trend_resistance, feature_selectivity, total_integrity_score, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sc.ArtistID,
		integ.Subscores["consistency"],
		integ.Subscores["independence"],
		integ.Subscores["trend_resistance"],
		integ.Subscores["feature_selectivity"],
		float64(integ.FinalScore),
		now,
	); err != nil {
		return fmt.Errorf("insert integrity: %w", err)
	}

	infl := sc.Scores[engine.MetricInfluence]
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO artist_influence
		(artist_id, presence_score, awards_score, citation_score,
		 charts_efficiency, total_influence_score, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sc.ArtistID,
		infl.Subscores["presence"],
		infl.Subscores["awards"],
		infl.Subscores["citations"],
		infl.Subscores["charts_efficiency"],
		float64(infl.FinalScore),
		now,
	); err != nil {
		return fmt.Errorf("insert influence: %w", err)
	}

	th := sc.Scores[engine.MetricThematic]
	dominant, _ := th.Extras["dominant_theme"].(string)
	weight, _ := th.Extras["dominant_theme_weight"].(float64)
	entropy, _ := th.Extras["theme_entropy"].(float64)
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO artist_themes
		(artist_id, dominant_theme, dominant_theme_weight, theme_entropy,
		 coherence_score, computed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sc.ArtistID, dominant, weight, entropy, float64(th.FinalScore), now,
	); err != nil {
		return fmt.Errorf("insert themes: %w", err)
	}

	pk := sc.Scores[engine.MetricPeak]
	classics, _ := pk.Extras["classic_tracks_count"].(int)
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO artist_peak
		(artist_id, peak_album_score, classic_tracks_count, total_peak_score, computed_at)
		VALUES (?, ?, ?, ?, ?)`,
		sc.ArtistID, pk.Subscores["peak_album"], classics, float64(pk.FinalScore), now,
	); err != nil {
		return fmt.Errorf("insert peak: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// CachedScores returns the stored score records for an artist, or nil
// when no analysis has been cached.
func (s *Store) CachedScores(artistID string) (map[string]score.Record, error) {
	row := s.db.QueryRow(
		`SELECT scores_json FROM analysis_cache WHERE artist_id = ?`, artistID,
	)
	var blob string
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cached scores: %w", err)
	}
	var scores map[string]score.Record
	if err := json.Unmarshal([]byte(blob), &scores); err != nil {
		return nil, fmt.Errorf("unmarshal cached scores: %w", err)
	}
	return scores, nil
}

// ArtistNeedsUpdate reports whether the stored artist row is missing or
// older than maxAgeDays.
func (s *Store) ArtistNeedsUpdate(artistID string, maxAgeDays int) (bool, error) {
	row := s.db.QueryRow(`SELECT last_updated FROM artists WHERE id = ?`, artistID)
	var stamp sql.NullString
	if err := row.Scan(&stamp); err != nil {
		if err == sql.ErrNoRows {
			return true, nil
		}
		return false, fmt.Errorf("scan last_updated: %w", err)
	}
	if !stamp.Valid || stamp.String == "" {
		return true, nil
	}
	last, err := time.Parse(time.RFC3339, stamp.String)
	if err != nil {
		return true, nil
	}
	return time.Since(last) > time.Duration(maxAgeDays)*24*time.Hour, nil
}

// ClearArtist removes all stored data for an artist.
func (s *Store) ClearArtist(artistID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmts := append([]string{"songs", "analysis_cache"}, metricTables...)
	for _, table := range stmts {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE artist_id = ?`, artistID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if _, err := tx.Exec(`DELETE FROM artists WHERE id = ?`, artistID); err != nil {
		return fmt.Errorf("clear artists: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// CountRows returns the row count of a table, used by tests and the
// status command.
func (s *Store) CountRows(table string) (int, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
