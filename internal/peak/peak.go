// Package peak scores an artist's best work: certification tier and
// track efficiency of their top album, plus lasting classic tracks.
package peak

import (
	"rapmetrics/internal/facts"
	"rapmetrics/internal/score"
)

const (
	weightPeakAlbum     = 0.60
	weightClassicTracks = 0.40
)

// averageAlbumTracks anchors the efficiency bonus: a certified album
// with fewer tracks earned its tier with less material.
const averageAlbumTracks = 15.0

// classicsBenchmark is the classic-track count that maps to 100.
const classicsBenchmark = 30.0

// Defaults for artists absent from the facts dataset.
const (
	defaultAlbumScore    = 50.0
	defaultClassicTracks = 5
)

// certTierScores maps the certification encoding (diamond=5,
// platinum=3, gold=1) to base album scores.
var certTierScores = map[int]float64{5: 90, 3: 70, 1: 50}

// Metrics holds the peak-excellence component scores.
type Metrics struct {
	PeakAlbumScore     float64
	ClassicTracksCount int
	ClassicTracksScore float64
	TotalScore         float64
}

func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: score.Final(m.TotalScore),
		Subscores: map[string]float64{
			"peak_album":     m.PeakAlbumScore,
			"classic_tracks": m.ClassicTracksScore,
		},
		Extras: map[string]any{
			"classic_tracks_count": m.ClassicTracksCount,
		},
	}
}

// Analyze scores one artist from the static facts dataset.
func Analyze(artistID string, ds *facts.Dataset) Metrics {
	var artist facts.Artist
	var known bool
	if ds != nil {
		artist, known = ds.Artist(artistID)
	}

	m := Metrics{
		PeakAlbumScore: albumScore(artist, known),
	}
	m.ClassicTracksCount, m.ClassicTracksScore = classicTracks(artist, known)
	m.TotalScore = m.PeakAlbumScore*weightPeakAlbum + m.ClassicTracksScore*weightClassicTracks
	return m
}

func albumScore(artist facts.Artist, known bool) float64 {
	if !known || artist.PeakAlbum == nil {
		return defaultAlbumScore
	}
	album := artist.PeakAlbum

	base, ok := certTierScores[album.CertTier]
	if !ok {
		base = 50
	}

	efficiency := averageAlbumTracks / float64(max(album.Tracks, 1))
	bonus := min(10, (efficiency-1)*15)

	return score.Clamp(base+bonus, 0, 100)
}

func classicTracks(artist facts.Artist, known bool) (int, float64) {
	count := defaultClassicTracks
	if known && artist.ClassicTracks != nil {
		count = *artist.ClassicTracks
	}
	return count, min(100, float64(count)/classicsBenchmark*100)
}
