package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapmetrics/internal/engine"
	"rapmetrics/internal/score"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "rapmetrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveSongsAndCombinedLyrics(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveArtist("booba", "Booba"))
	songs := []Song{
		{Title: "Pitbull", Lyrics: "Premier couplet du morceau", Source: "booba/pitbull.txt"},
		{Title: "DKR", Lyrics: "Deuxième morceau complet", Source: "booba/dkr.txt"},
		{Title: "Vide", Lyrics: "", Source: "booba/vide.txt"},
	}
	require.NoError(t, s.SaveSongs("booba", songs))

	count, err := s.SongCount("booba")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	combined, err := s.CombinedLyrics("booba")
	require.NoError(t, err)
	assert.Equal(t, "Premier couplet du morceau\n\nDeuxième morceau complet", combined)
}

func TestSaveSongsReplacesPrevious(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveArtist("jul", "Jul"))
	require.NoError(t, s.SaveSongs("jul", []Song{{Title: "A", Lyrics: "ancien texte"}}))
	require.NoError(t, s.SaveSongs("jul", []Song{{Title: "B", Lyrics: "nouveau texte"}}))

	lyrics, err := s.ArtistLyrics("jul")
	require.NoError(t, err)
	assert.Equal(t, []string{"nouveau texte"}, lyrics)
}

func TestSaveScoresRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveArtist("nekfeu", "Nekfeu"))

	sc := engine.ArtistScores{
		ArtistID: "nekfeu",
		Scores: map[string]score.Record{
			engine.MetricFlow:      {FinalScore: 72},
			engine.MetricPunchline: {FinalScore: 64},
			engine.MetricHook:      {FinalScore: 58},
			engine.MetricVocabulary: {
				FinalScore: 4200,
				Subscores:  map[string]float64{"ttr": 0.31, "mtld": 91.4},
				Extras:     map[string]any{"total_words": 52000, "unique_lemmas": 4100},
			},
			engine.MetricThematic: {
				FinalScore: 61,
				Subscores:  map[string]float64{"introspection": 0.4},
				Extras: map[string]any{
					"dominant_theme":        "introspection",
					"dominant_theme_weight": 0.4,
					"theme_entropy":         0.72,
				},
			},
			engine.MetricInnovation: {
				FinalScore: 66,
				Subscores: map[string]float64{
					"style_uniqueness":           70,
					"vocabulary_distinctiveness": 55,
					"first_mover":                80,
					"genre_fusion":               40,
				},
			},
			engine.MetricIntegrity: {
				FinalScore: 74,
				Subscores: map[string]float64{
					"consistency":         68,
					"independence":        80,
					"trend_resistance":    75,
					"feature_selectivity": 70,
				},
			},
			engine.MetricInfluence: {
				FinalScore: 59,
				Subscores: map[string]float64{
					"presence":          50,
					"awards":            62,
					"citations":         48,
					"charts_efficiency": 76,
				},
			},
			engine.MetricPeak: {
				FinalScore: 81,
				Subscores:  map[string]float64{"peak_album": 90, "classic_tracks": 67},
				Extras:     map[string]any{"classic_tracks_count": 4},
			},
		},
	}

	require.NoError(t, s.SaveScores(sc, 120))

	cached, err := s.CachedScores("nekfeu")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 72, cached[engine.MetricFlow].FinalScore)
	assert.Equal(t, 4200, cached[engine.MetricVocabulary].FinalScore)

	for _, table := range []string{
		"analysis_cache", "artist_innovation", "artist_integrity",
		"artist_influence", "artist_themes", "artist_peak",
	} {
		n, err := s.CountRows(table)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s", table)
	}
}

func TestCachedScoresMissingArtist(t *testing.T) {
	s := openTestStore(t)

	cached, err := s.CachedScores("inconnu")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestArtistNeedsUpdate(t *testing.T) {
	s := openTestStore(t)

	needs, err := s.ArtistNeedsUpdate("fantome", 30)
	require.NoError(t, err)
	assert.True(t, needs, "missing artist should need update")

	require.NoError(t, s.SaveArtist("fantome", "Fantôme"))
	needs, err = s.ArtistNeedsUpdate("fantome", 30)
	require.NoError(t, err)
	assert.False(t, needs, "freshly saved artist should not need update")
}

func TestClearArtist(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveArtist("sch", "SCH"))
	require.NoError(t, s.SaveSongs("sch", []Song{{Title: "Otto", Lyrics: "texte"}}))
	require.NoError(t, s.ClearArtist("sch"))

	ids, err := s.ArtistIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	count, err := s.SongCount("sch")
	require.NoError(t, err)
	assert.Zero(t, count)
}
