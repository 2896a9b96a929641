// Package influence scores external footprint: encyclopedia presence,
// awards, citation by peers, and certification efficiency.
package influence

import (
	"strings"

	"rapmetrics/internal/facts"
	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

// Each component carries equal weight.
const componentWeight = 0.25

// Normalization benchmarks: the raw value that maps to a 100 score.
const (
	presenceBenchmark = 200.0
	awardsBenchmark   = 150.0
	citationBenchmark = 100.0
	chartsBenchmark   = 20.0
)

// Defaults for missing source data.
const (
	defaultPresence = 30.0
	defaultAwards   = 30.0
	defaultCharts   = 40.0
)

// volumeBonusAlbums is the album count from which sustained output earns
// the charts-efficiency multiplier.
const volumeBonusAlbums = 10

// Metrics holds the influence component scores, each in [0,100].
type Metrics struct {
	PresenceScore    float64
	AwardsScore      float64
	CitationScore    float64
	ChartsEfficiency float64
	TotalScore       float64
}

func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: score.Final(m.TotalScore),
		Subscores: map[string]float64{
			"presence":          m.PresenceScore,
			"awards":            m.AwardsScore,
			"citations":         m.CitationScore,
			"charts_efficiency": m.ChartsEfficiency,
		},
	}
}

// Analyze scores one artist. allLyrics feeds the citation network; the
// dataset supplies externally collected presence and awards figures.
func Analyze(artistID string, allLyrics map[string]string, ds *facts.Dataset) Metrics {
	var artist facts.Artist
	var known bool
	if ds != nil {
		artist, known = ds.Artist(artistID)
	}

	m := Metrics{
		PresenceScore:    normalizeRaw(rawOrNil(known, artist.ExternalPresenceRaw), presenceBenchmark, defaultPresence),
		AwardsScore:      normalizeRaw(rawOrNil(known, artist.AwardsRaw), awardsBenchmark, defaultAwards),
		CitationScore:    Citations(artistID, allLyrics, ds),
		ChartsEfficiency: chartsEfficiency(artist, known),
	}
	m.TotalScore = (m.PresenceScore + m.AwardsScore + m.CitationScore + m.ChartsEfficiency) * componentWeight
	return m
}

func rawOrNil(known bool, raw *float64) *float64 {
	if !known {
		return nil
	}
	return raw
}

func normalizeRaw(raw *float64, benchmark, fallback float64) float64 {
	if raw == nil {
		return fallback
	}
	return score.Clamp(*raw/benchmark*100, 0, 100)
}

// Citations counts how often other artists name this one: ten points
// per citing artist plus one per raw mention, against the benchmark.
func Citations(artistID string, allLyrics map[string]string, ds *facts.Dataset) float64 {
	key := textnorm.NormalizeArtistID(artistID)

	searchTerms := []string{key}
	if ds != nil {
		searchTerms = ds.AliasesFor(artistID)
	}

	mentions := 0
	mentionedBy := 0
	for otherID, lyrics := range allLyrics {
		if textnorm.NormalizeArtistID(otherID) == key {
			continue
		}
		lower := strings.ToLower(lyrics)
		for _, term := range searchTerms {
			if term == "" {
				continue
			}
			if n := strings.Count(lower, term); n > 0 {
				mentions += n
				mentionedBy++
				break
			}
		}
	}

	raw := float64(mentionedBy)*10 + float64(mentions)
	return score.Clamp(raw/citationBenchmark*100, 0, 100)
}

// chartsEfficiency is certifications per album, with a multiplier for
// artists who sustain output past ten albums.
func chartsEfficiency(artist facts.Artist, known bool) float64 {
	if !known {
		return defaultCharts
	}

	albums := max(1, artist.Albums)
	efficiency := float64(artist.Certifications) / float64(albums)
	if albums >= volumeBonusAlbums {
		efficiency *= 1.3
	}
	return score.Clamp(efficiency/chartsBenchmark*100, 0, 100)
}
