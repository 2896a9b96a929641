// Package innovation scores stylistic originality: vector-space
// fingerprint uniqueness, vocabulary distinctiveness, first-mover
// timing and genre fusion.
package innovation

import (
	"strings"

	"rapmetrics/internal/corpus"
	"rapmetrics/internal/facts"
	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

const (
	weightStyleCreation     = 0.40
	weightLyricalUniqueness = 0.30
	weightFirstMover        = 0.20
	weightGenreFusion       = 0.10
)

// neutralStyle is returned when no corpus model covers the artist.
const neutralStyle = 50.0

// Metrics holds the innovation component scores, each in [0,100].
type Metrics struct {
	StyleUniqueness           float64
	VocabularyDistinctiveness float64
	FirstMoverScore           float64
	GenreFusionScore          float64
	TotalScore                float64
}

func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: score.Final(m.TotalScore),
		Subscores: map[string]float64{
			"style_uniqueness":           m.StyleUniqueness,
			"vocabulary_distinctiveness": m.VocabularyDistinctiveness,
			"first_mover":                m.FirstMoverScore,
			"genre_fusion":               m.GenreFusionScore,
		},
	}
}

// Analyze scores one artist against the shared corpus model and the
// static facts dataset. A nil model degrades to the neutral style
// default instead of failing.
func Analyze(artistID, lyrics string, model *corpus.Model, ds *facts.Dataset) Metrics {
	m := Metrics{
		StyleUniqueness:           styleUniqueness(artistID, model),
		VocabularyDistinctiveness: vocabularyDistinctiveness(artistID, lyrics, model),
		FirstMoverScore:           firstMover(artistID, ds),
		GenreFusionScore:          genreFusion(lyrics),
	}
	m.TotalScore = m.StyleUniqueness*weightStyleCreation +
		m.VocabularyDistinctiveness*weightLyricalUniqueness +
		m.FirstMoverScore*weightFirstMover +
		m.GenreFusionScore*weightGenreFusion
	return m
}

// styleUniqueness blends cosine distance from the corpus centroid with
// distance from the nearest other artist.
func styleUniqueness(artistID string, model *corpus.Model) float64 {
	if model == nil {
		return neutralStyle
	}
	centroidSim := model.CentroidSimilarity(artistID)
	if centroidSim < 0 {
		return neutralStyle
	}
	centroidUniqueness := (1 - centroidSim) * 100

	neighborSim := model.NearestNeighborSimilarity(artistID)
	if neighborSim < 0 {
		return neutralStyle
	}
	neighborUniqueness := (1 - neighborSim) * 100

	return score.Clamp(centroidUniqueness*0.6+neighborUniqueness*0.4, 0, 100)
}

// vocabularyDistinctiveness blends the hapax-legomena ratio with the
// share of the artist's vocabulary that no other artist uses.
func vocabularyDistinctiveness(artistID, lyrics string, model *corpus.Model) float64 {
	if strings.TrimSpace(lyrics) == "" {
		return 0
	}

	words := strings.Fields(strings.ToLower(textnorm.FilterFrench(lyrics)))
	if len(words) > corpus.MaxVocabPerArtist {
		words = words[:corpus.MaxVocabPerArtist]
	}
	if len(words) == 0 {
		return 0
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	hapax := 0
	for _, n := range counts {
		if n == 1 {
			hapax++
		}
	}
	hapaxRatio := float64(hapax) / float64(len(counts))
	hapaxScore := min(100, hapaxRatio*150)

	uniquenessScore := 0.0
	if model != nil {
		artistVocab := model.WordSet(artistID)
		if artistVocab == nil {
			artistVocab = make(map[string]struct{}, len(counts))
			for w := range counts {
				artistVocab[w] = struct{}{}
			}
		}
		unique := 0
		for w := range artistVocab {
			if !model.UsedByOther(artistID, w) {
				unique++
			}
		}
		if len(artistVocab) > 0 {
			uniquenessScore = min(100, float64(unique)/float64(len(artistVocab))*100)
		}
	}

	return score.Clamp(hapaxScore*0.5+uniquenessScore*0.5, 0, 100)
}

// firstMover rewards artists whose debut predates their style's
// mainstream year, plus a longevity bonus.
func firstMover(artistID string, ds *facts.Dataset) float64 {
	if ds == nil {
		return 30
	}
	artist, ok := ds.Artist(artistID)
	if !ok || artist.DebutYear == 0 {
		return 30
	}

	base := 30.0
	if pioneer, ok := ds.PioneerFor(artistID); ok {
		yearsAhead := float64(pioneer.MainstreamYear - artist.DebutYear)
		base += min(50, yearsAhead*15)
	}

	career := float64(ds.ReferenceYear - artist.DebutYear)
	base += min(20, career/2)

	return min(100, base)
}

var (
	arabicIndicators = []string{
		"wallah", "hamdoulah", "inshallah", "bismillah", "mashallah",
		"haram", "halal", "akhi", "khoya", "kelb", "sahbi",
	}
	englishIndicators = []string{
		"money", "street", "game", "real", "fuck", "shit",
		"bitch", "hustle", "grind", "gang", "flow",
	}
	spanishIndicators = []string{
		"amigo", "loco", "nada", "vida", "amor", "fuego",
	}
)

var fusionTopics = map[string][]string{
	"street":    {"rue", "quartier", "bloc", "béton", "ghetto", "cité"},
	"money":     {"argent", "billet", "euros", "liasse", "fortune", "riche"},
	"love":      {"amour", "cœur", "aimer", "femme", "belle", "sentiment"},
	"party":     {"fête", "danse", "club", "nuit", "bouteille", "champagne"},
	"conscious": {"société", "politique", "système", "justice", "peuple"},
	"spiritual": {"dieu", "prière", "foi", "âme", "destin", "paradis"},
}

// genreFusion rewards multi-language borrowings and topic spread.
// Indicators match as substrings, so inflected forms still count.
func genreFusion(lyrics string) float64 {
	if lyrics == "" {
		return 0
	}
	lower := strings.ToLower(lyrics)

	var s float64
	if n := countContained(lower, arabicIndicators); n > 0 {
		s += min(25, float64(n)*5)
	}
	if n := countContained(lower, englishIndicators); n > 0 {
		s += min(15, float64(n)*3)
	}
	if n := countContained(lower, spanishIndicators); n > 0 {
		s += min(10, float64(n)*5)
	}

	present := 0
	for _, keywords := range fusionTopics {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				present++
				break
			}
		}
	}
	s += float64(present) / float64(len(fusionTopics)) * 50

	return score.Clamp(s, 0, 100)
}

func countContained(text string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			n++
		}
	}
	return n
}
