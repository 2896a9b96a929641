// Package phonetics approximates French pronunciation well enough to
// bucket rhymes and count syllables. It is not a transcription model:
// endings are lossy keys compared for equality, nothing more.
package phonetics

import (
	"strings"

	"rapmetrics/internal/textnorm"
)

// Grapheme endings with a known canonical phoneme code. Checked in order;
// first suffix match wins. Nasal vowels use single precomposed runes so
// ending depth can be taken per rune.
var rhymePatterns = []struct {
	suffix  string
	phoneme string
}{
	{"oir", "waʁ"}, {"oire", "waʁ"},
	{"eur", "œʁ"}, {"eure", "œʁ"},
	{"er", "e"}, {"é", "e"}, {"ée", "e"}, {"és", "e"}, {"ées", "e"},
	{"tion", "sjõ"}, {"sion", "zjõ"},
	{"ment", "mã"},
	{"ant", "ã"}, {"ent", "ã"}, {"ants", "ã"}, {"ents", "ã"},
	{"ain", "ẽ"}, {"ein", "ẽ"}, {"in", "ẽ"},
	{"on", "õ"}, {"ons", "õ"},
	{"ou", "u"}, {"ous", "u"}, {"out", "u"},
	{"age", "aʒ"}, {"ages", "aʒ"},
	{"ique", "ik"}, {"iques", "ik"},
}

// Ordered grapheme to phoneme substitutions for the rule-based fallback.
// Digraphs collapse to single symbols before single letters are touched.
var g2pRules = []struct{ from, to string }{
	{"eau", "o"}, {"au", "o"}, {"ou", "u"}, {"oi", "wa"},
	{"ai", "ɛ"}, {"ei", "ɛ"},
	{"an", "ã"}, {"en", "ã"}, {"am", "ã"}, {"em", "ã"},
	{"on", "õ"}, {"om", "õ"},
	{"in", "ẽ"}, {"im", "ẽ"}, {"ain", "ẽ"}, {"ein", "ẽ"},
	{"un", "ũ"}, {"um", "ũ"},
	{"eu", "ø"}, {"oeu", "ø"}, {"oe", "ø"},
	{"ch", "ʃ"}, {"gn", "ɲ"}, {"qu", "k"}, {"gu", "g"},
	{"ph", "f"}, {"th", "t"}, {"ç", "s"},
	{"é", "e"}, {"è", "ɛ"}, {"ê", "ɛ"},
	{"à", "a"}, {"â", "a"}, {"ù", "u"}, {"û", "u"},
	{"î", "i"}, {"ï", "i"}, {"ô", "o"},
}

// approxPhonemes applies the fallback rules and strips one silent
// terminal letter.
func approxPhonemes(word string) string {
	result := strings.ToLower(word)
	for _, rule := range g2pRules {
		result = strings.ReplaceAll(result, rule.from, rule.to)
	}
	if len(result) > 0 {
		switch result[len(result)-1] {
		case 'e', 's', 'x', 'z', 't':
			result = result[:len(result)-1]
		}
	}
	return result
}

func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// Ending returns the phonetic ending of a word, at most depth symbols
// long. Endings are only meaningful for equality comparison. Deeper
// endings extend shallower ones, so a rhyme at depth 3 implies one at
// depths 2 and 1.
func Ending(word string, depth int) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	if depth < 1 {
		depth = 1
	}
	for _, p := range rhymePatterns {
		if strings.HasSuffix(word, p.suffix) {
			return lastRunes(p.phoneme, depth)
		}
	}
	if ipa := strings.ReplaceAll(approxPhonemes(word), " ", ""); ipa != "" {
		return lastRunes(ipa, depth)
	}
	return lastRunes(word, depth)
}

// Rhymes reports whether two words share a non-empty phonetic ending.
// Strictness 1-3 sets how many trailing symbols must match: 3 for
// multisyllabic rhyme detection, 2 for internal rhymes.
func Rhymes(a, b string, strictness int) bool {
	ea := Ending(a, strictness)
	eb := Ending(b, strictness)
	return ea != "" && ea == eb
}

// Vowel letters plus the uppercase markers digraphs collapse to.
const vowelSet = "aeiouyàâäéèêëïîôùûüœæOUWEY"

var digraphCollapse = []struct{ from, to string }{
	{"eau", "O"}, {"au", "O"}, {"ou", "U"}, {"oi", "W"},
	{"ai", "E"}, {"ei", "E"}, {"eu", "Y"}, {"oeu", "Y"}, {"oe", "Y"},
}

// SyllableCount estimates the syllable count of a line of French text.
// Vowel clusters are counted per word after collapsing digraphs, then a
// mute final 'e' (or plural 'es') is subtracted. A word never counts as
// fewer than one syllable.
func SyllableCount(text string) int {
	if text == "" {
		return 0
	}
	total := 0
	for _, word := range textnorm.Words(text) {
		for _, d := range digraphCollapse {
			word = strings.ReplaceAll(word, d.from, d.to)
		}

		inVowel := false
		n := 0
		var runes = []rune(word)
		for _, r := range runes {
			if strings.ContainsRune(vowelSet, r) {
				if !inVowel {
					n++
					inVowel = true
				}
			} else {
				inVowel = false
			}
		}

		if strings.HasSuffix(word, "e") && len(runes) > 2 &&
			!strings.ContainsRune(vowelSet, runes[len(runes)-2]) {
			n = max(1, n-1)
		}
		if strings.HasSuffix(word, "es") && len(runes) > 3 {
			n = max(1, n-1)
		}
		total += max(1, n)
	}
	return total
}

// SyllablesPerLine returns the syllable count of each non-empty line.
func SyllablesPerLine(text string) []int {
	lines := textnorm.Lines(text)
	counts := make([]int, len(lines))
	for i, line := range lines {
		counts[i] = SyllableCount(line)
	}
	return counts
}
