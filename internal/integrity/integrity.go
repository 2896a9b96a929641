// Package integrity scores artistic consistency and independence:
// style stability across a career, label status, trend resistance and
// feature selectivity.
package integrity

import (
	"strings"

	"rapmetrics/internal/chunk"
	"rapmetrics/internal/corpus"
	"rapmetrics/internal/facts"
	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

const (
	weightConsistency  = 0.35
	weightIndependence = 0.30
	weightTrendResist  = 0.20
	weightSelectivity  = 0.15
)

const (
	// neutralConsistency is returned when the text is too small to chunk.
	neutralConsistency = 50.0
	// sparseConsistency is returned when fewer than 3 chunks came out.
	sparseConsistency = 60.0

	minLemmas     = 100
	minChunkSize  = 100
	minChunkWords = 50
	chunkFeatures = 1000
)

// Metrics holds the integrity component scores, each in [0,100].
type Metrics struct {
	ConsistencyScore   float64
	IndependenceScore  float64
	TrendResistance    float64
	FeatureSelectivity float64
	TotalScore         float64
}

func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: score.Final(m.TotalScore),
		Subscores: map[string]float64{
			"consistency":         m.ConsistencyScore,
			"independence":        m.IndependenceScore,
			"trend_resistance":    m.TrendResistance,
			"feature_selectivity": m.FeatureSelectivity,
		},
	}
}

// Analyze scores one artist from their combined lyrics and the static
// facts dataset.
func Analyze(tk textnorm.Toolkit, artistID, lyrics string, ds *facts.Dataset) Metrics {
	m := Metrics{
		ConsistencyScore:   Consistency(tk, lyrics),
		IndependenceScore:  independence(artistID, ds),
		TrendResistance:    trendResistance(lyrics, ds),
		FeatureSelectivity: featureSelectivity(artistID, ds),
	}
	m.TotalScore = m.ConsistencyScore*weightConsistency +
		m.IndependenceScore*weightIndependence +
		m.TrendResistance*weightTrendResist +
		m.FeatureSelectivity*weightSelectivity
	return m
}

// Consistency splits the lemmatized corpus into equal chunks standing
// in for career periods and averages pairwise cosine similarity of
// their TF-IDF vectors. Stable vocabulary across chunks reads as a
// stable artistic identity.
func Consistency(tk textnorm.Toolkit, lyrics string) float64 {
	if strings.TrimSpace(lyrics) == "" {
		return neutralConsistency
	}

	text := textnorm.FilterFrench(lyrics)
	lemmas := tk.Lemmatize(text)
	if len(lemmas) < minLemmas {
		return neutralConsistency
	}

	chunkSize := max(minChunkSize, len(lemmas)/10)
	var chunks []string
	for _, seg := range chunk.FixedWindows(lemmas, chunkSize) {
		if seg.EndToken-seg.StartToken >= minChunkWords {
			chunks = append(chunks, seg.Text)
		}
	}
	if len(chunks) < 3 {
		return sparseConsistency
	}

	vectors := corpus.Vectorize(chunks, chunkFeatures)

	var total float64
	count := 0
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			total += corpus.Cosine(vectors[i], vectors[j])
			count++
		}
	}
	avg := 0.5
	if count > 0 {
		avg = total / float64(count)
	}
	return score.Clamp(avg*100, 0, 100)
}

func independence(artistID string, ds *facts.Dataset) float64 {
	if ds == nil {
		return 50
	}
	artist, ok := ds.Artist(artistID)
	if !ok || artist.Independent == nil {
		return 50
	}
	if *artist.Independent {
		if artist.LegendaryIndependent {
			return 95
		}
		return 80
	}
	if artist.SignedWithControl {
		return 55
	}
	return 40
}

// trendResistance maps the density of trending-term hits per thousand
// words through a five-tier step: fewer hits means higher resistance.
func trendResistance(lyrics string, ds *facts.Dataset) float64 {
	if strings.TrimSpace(lyrics) == "" || ds == nil {
		return 50
	}
	lower := strings.ToLower(lyrics)

	totalTrending := 0
	for _, terms := range ds.TrendingTerms {
		for _, term := range terms {
			totalTrending += strings.Count(lower, term)
		}
	}

	wordCount := len(strings.Fields(lyrics))
	if wordCount < 100 {
		return 50
	}
	density := float64(totalTrending) / (float64(wordCount) / 1000)

	switch {
	case density < 2:
		return 90
	case density < 5:
		return 75
	case density < 10:
		return 60
	case density < 15:
		return 45
	default:
		return 30
	}
}

// featureSelectivity maps the features-per-album ratio through a
// five-tier step: fewer guest spots means higher selectivity.
func featureSelectivity(artistID string, ds *facts.Dataset) float64 {
	albums, features := 5, 50
	if ds != nil {
		if artist, ok := ds.Artist(artistID); ok {
			if artist.Albums > 0 {
				albums = artist.Albums
			}
			if artist.Features > 0 {
				features = artist.Features
			}
		}
	}

	ratio := 10.0
	if albums > 0 {
		ratio = float64(features) / float64(albums)
	}

	switch {
	case ratio < 5:
		return 95
	case ratio < 10:
		return 80
	case ratio < 15:
		return 65
	case ratio < 20:
		return 50
	default:
		return 35
	}
}
