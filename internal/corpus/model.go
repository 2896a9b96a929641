// Package corpus holds the per-batch lyric corpus and the shared
// vector-space model built once over every artist's combined lyrics.
package corpus

import (
	"errors"
	"math"
	"sort"
	"strings"

	"rapmetrics/internal/textnorm"
)

// ErrInsufficientCorpus is returned when fewer than two artists are
// available; corpus-relative signals are meaningless for a single artist.
var ErrInsufficientCorpus = errors.New("corpus model needs at least two artists")

// Model configuration. The word caps are a performance tradeoff applied
// before fitting, not a correctness requirement.
const (
	maxFeatures        = 1000
	maxWordsPerArtist  = 5000
	minDocFrequency    = 2
	maxDocFrequencyPct = 0.90

	// MaxVocabPerArtist caps the per-artist distinct-word set used for
	// vocabulary-distinctiveness comparisons.
	MaxVocabPerArtist = 3000
)

// Vector is a sparse TF-IDF vector keyed by term.
type Vector map[string]float64

// Model is the corpus-wide statistical model: one unigram+bigram TF-IDF
// vector per artist plus cached per-artist word sets. Build it exactly
// once per batch run and share it read-only; rebuilding per artist would
// make cross-artist distances inconsistent.
type Model struct {
	ids      []string
	vectors  map[string]Vector
	centroid Vector
	wordSets map[string]map[string]struct{}
	vocab    map[string]struct{}
}

// CombineSongs concatenates raw song texts with paragraph separators into
// one combined-lyrics string.
func CombineSongs(songs []string) string {
	nonEmpty := make([]string, 0, len(songs))
	for _, s := range songs {
		if strings.TrimSpace(s) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(s))
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

// Build fits the model over all artists' combined lyrics.
func Build(allLyrics map[string]string) (*Model, error) {
	if len(allLyrics) < 2 {
		return nil, ErrInsufficientCorpus
	}

	m := &Model{
		vectors:  make(map[string]Vector, len(allLyrics)),
		wordSets: make(map[string]map[string]struct{}, len(allLyrics)),
		vocab:    map[string]struct{}{},
	}

	tokens := make(map[string][]string, len(allLyrics))
	for id, lyrics := range allLyrics {
		m.ids = append(m.ids, id)
		words := strings.Fields(strings.ToLower(textnorm.FilterFrench(lyrics)))
		if len(words) > maxWordsPerArtist {
			words = words[:maxWordsPerArtist]
		}
		tokens[id] = words

		set := map[string]struct{}{}
		for _, w := range words {
			if len(set) >= MaxVocabPerArtist {
				if _, ok := set[w]; !ok {
					continue
				}
			}
			set[w] = struct{}{}
		}
		m.wordSets[id] = set
		for w := range set {
			m.vocab[w] = struct{}{}
		}
	}
	sort.Strings(m.ids)

	// Term counts per document (unigrams + bigrams) and document frequency.
	termCounts := make(map[string]map[string]int, len(tokens))
	df := map[string]int{}
	corpusCount := map[string]int{}
	for id, words := range tokens {
		counts := map[string]int{}
		for i, w := range words {
			counts[w]++
			if i+1 < len(words) {
				counts[w+" "+words[i+1]]++
			}
		}
		termCounts[id] = counts
		for term, c := range counts {
			df[term]++
			corpusCount[term] += c
		}
	}

	// Document-frequency thresholds, then cap the vocabulary at the most
	// frequent terms.
	n := len(tokens)
	maxDF := int(math.Floor(maxDocFrequencyPct * float64(n)))
	if maxDF < minDocFrequency {
		maxDF = minDocFrequency
	}
	kept := make([]string, 0, len(df))
	for term, d := range df {
		if d >= minDocFrequency && d <= maxDF {
			kept = append(kept, term)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if corpusCount[kept[i]] != corpusCount[kept[j]] {
			return corpusCount[kept[i]] > corpusCount[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > maxFeatures {
		kept = kept[:maxFeatures]
	}
	features := make(map[string]struct{}, len(kept))
	for _, term := range kept {
		features[term] = struct{}{}
	}

	for id, counts := range termCounts {
		m.vectors[id] = tfidfVector(counts, features, df, n)
	}

	m.centroid = Vector{}
	for _, vec := range m.vectors {
		for term, w := range vec {
			m.centroid[term] += w
		}
	}
	for term := range m.centroid {
		m.centroid[term] /= float64(len(m.vectors))
	}

	return m, nil
}

func tfidfVector(counts map[string]int, features map[string]struct{}, df map[string]int, nDocs int) Vector {
	vec := Vector{}
	for term, c := range counts {
		if _, ok := features[term]; !ok {
			continue
		}
		idf := math.Log(float64(1+nDocs)/float64(1+df[term])) + 1
		vec[term] = float64(c) * idf
	}
	normalize(vec)
	return vec
}

func normalize(vec Vector) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term := range vec {
		vec[term] /= norm
	}
}

// Cosine is the cosine similarity of two sparse vectors, in [0,1] for
// non-negative weights.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot, na, nb float64
	for term, w := range a {
		na += w * w
		if bw, ok := b[term]; ok {
			dot += w * bw
		}
	}
	for _, w := range b {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// VectorFor returns the artist's TF-IDF vector.
func (m *Model) VectorFor(artistID string) (Vector, bool) {
	v, ok := m.vectors[artistID]
	return v, ok
}

// Centroid returns the mean vector over all artists.
func (m *Model) Centroid() Vector {
	return m.centroid
}

// CentroidSimilarity is the artist's cosine similarity to the corpus
// centroid, or -1 when the artist is unknown.
func (m *Model) CentroidSimilarity(artistID string) float64 {
	vec, ok := m.vectors[artistID]
	if !ok {
		return -1
	}
	return Cosine(vec, m.centroid)
}

// NearestNeighborSimilarity is the highest cosine similarity between this
// artist and any other, or -1 when unknown.
func (m *Model) NearestNeighborSimilarity(artistID string) float64 {
	vec, ok := m.vectors[artistID]
	if !ok {
		return -1
	}
	best := -1.0
	for _, other := range m.ids {
		if other == artistID {
			continue
		}
		if sim := Cosine(vec, m.vectors[other]); sim > best {
			best = sim
		}
	}
	return best
}

// WordSet returns the artist's capped distinct-word set.
func (m *Model) WordSet(artistID string) map[string]struct{} {
	return m.wordSets[artistID]
}

// UsedByOther reports whether any artist other than artistID has word
// in their capped word set.
func (m *Model) UsedByOther(artistID, word string) bool {
	for id, set := range m.wordSets {
		if id == artistID {
			continue
		}
		if _, ok := set[word]; ok {
			return true
		}
	}
	return false
}

// Vocab returns the union word set over all artists.
func (m *Model) Vocab() map[string]struct{} {
	return m.vocab
}

// ArtistIDs lists the artists the model was fitted on.
func (m *Model) ArtistIDs() []string {
	return m.ids
}

// Vectorize fits an independent TF-IDF representation over arbitrary
// documents (no document-frequency thresholds, vocabulary capped at
// maxTerms). Used for within-artist chunk similarity.
func Vectorize(docs []string, maxTerms int) []Vector {
	df := map[string]int{}
	corpusCount := map[string]int{}
	perDoc := make([]map[string]int, len(docs))
	for i, doc := range docs {
		counts := map[string]int{}
		for _, w := range strings.Fields(strings.ToLower(doc)) {
			counts[w]++
		}
		perDoc[i] = counts
		for term, c := range counts {
			df[term]++
			corpusCount[term] += c
		}
	}

	kept := make([]string, 0, len(df))
	for term := range df {
		kept = append(kept, term)
	}
	sort.Slice(kept, func(i, j int) bool {
		if corpusCount[kept[i]] != corpusCount[kept[j]] {
			return corpusCount[kept[i]] > corpusCount[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if maxTerms > 0 && len(kept) > maxTerms {
		kept = kept[:maxTerms]
	}
	features := make(map[string]struct{}, len(kept))
	for _, term := range kept {
		features[term] = struct{}{}
	}

	out := make([]Vector, len(docs))
	for i, counts := range perDoc {
		out[i] = tfidfVector(counts, features, df, len(docs))
	}
	return out
}
