package textnorm

import "strings"

// Toolkit is the linguistic capability the analyzers consume: word
// segmentation, lemmatization and content-word extraction for French.
// A heuristic implementation ships with the engine; callers may swap in
// a richer model behind the same contract.
type Toolkit interface {
	// Tokenize returns lowercase alphabetic tokens.
	Tokenize(text string) []string
	// Lemmatize returns approximate canonical forms of tokens longer
	// than one character.
	Lemmatize(text string) []string
	// ContentWords returns tokens with stop words and single characters
	// removed.
	ContentWords(text string) []string
	// UniqueLemmas returns the set of distinct lemmas, optionally
	// excluding stop words.
	UniqueLemmas(text string, excludeStops bool) map[string]struct{}
	// CountWords counts alphabetic tokens.
	CountWords(text string) int
}

// Heuristic is the built-in Toolkit: regex word segmentation plus an
// ordered suffix table standing in for a full lemmatizer. The lemmas are
// approximations, which is all the scoring heuristics require.
type Heuristic struct{}

var _ Toolkit = Heuristic{}

func (Heuristic) Tokenize(text string) []string {
	return Words(text)
}

func (Heuristic) Lemmatize(text string) []string {
	words := Words(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue
		}
		out = append(out, Lemma(w))
	}
	return out
}

func (Heuristic) ContentWords(text string) []string {
	words := Words(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 || IsStopWord(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (h Heuristic) UniqueLemmas(text string, excludeStops bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range Words(text) {
		if len([]rune(w)) < 2 {
			continue
		}
		if excludeStops && IsStopWord(w) {
			continue
		}
		set[Lemma(w)] = struct{}{}
	}
	return set
}

func (Heuristic) CountWords(text string) int {
	return len(Words(text))
}

// Ordered verb-conjugation suffixes: first match wins, longest variants
// listed before their prefixes.
var verbSuffixes = [][2]string{
	{"issaient", "ir"}, {"issions", "ir"}, {"issant", "ir"}, {"issent", "ir"},
	{"issons", "ir"}, {"issait", "ir"}, {"issais", "ir"}, {"irent", "ir"},
	{"eraient", "er"}, {"erions", "er"}, {"èrent", "er"}, {"erait", "er"},
	{"erons", "er"}, {"eront", "er"}, {"erez", "er"}, {"erai", "er"},
	{"era", "er"}, {"ées", "er"}, {"ée", "er"}, {"és", "er"}, {"é", "er"},
	{"aient", "er"}, {"ait", "er"}, {"ais", "er"}, {"ant", "er"},
	{"ez", "er"}, {"ons", "er"},
}

// Lemma reduces a word to an approximate canonical form: irregular plural
// and verb-suffix rules first, then plural stripping.
func Lemma(word string) string {
	word = strings.ToLower(word)
	runes := []rune(word)
	if len(runes) <= 3 {
		return word
	}
	if strings.HasSuffix(word, "eaux") {
		return strings.TrimSuffix(word, "x")
	}
	if strings.HasSuffix(word, "aux") {
		return strings.TrimSuffix(word, "ux") + "l"
	}
	for _, rule := range verbSuffixes {
		suffix, repl := rule[0], rule[1]
		if strings.HasSuffix(word, suffix) && len([]rune(word)) > len([]rune(suffix))+2 {
			return strings.TrimSuffix(word, suffix) + repl
		}
	}
	if strings.HasSuffix(word, "s") || strings.HasSuffix(word, "x") {
		return word[:len(word)-1]
	}
	return word
}
