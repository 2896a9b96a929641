// Package textnorm is the text normalization layer: it filters raw lyrics
// down to the French alphabet, canonicalizes rap slang, and tokenizes and
// lemmatizes text for the analyzers.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Runs of characters the downstream lexicons understand: Latin letters with
// French diacritics, digits, whitespace and basic punctuation. Everything
// else (Arabic script, Cyrillic, emoji) is dropped wholesale.
var frenchRuns = regexp.MustCompile(`[a-zA-ZàâäéèêëïîôùûüœæçÀÂÄÉÈÊËÏÎÔÙÛÜŒÆÇ0-9\s\.,;:!?'"-]+`)

var frenchWord = regexp.MustCompile(`[a-zàâäéèêëïîôùûüœæç]+`)

// FilterFrench keeps only French/Latin runs of the input, removing foreign
// scripts that would corrupt frequency statistics. Empty input yields "".
func FilterFrench(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = norm.NFC.String(text)
	matches := frenchRuns.FindAllString(text, -1)
	return strings.Join(matches, " ")
}

// Words extracts lowercase French word tokens from a line or text.
func Words(text string) []string {
	return frenchWord.FindAllString(strings.ToLower(text), -1)
}

// Lines splits lyrics into trimmed non-empty lines.
func Lines(lyrics string) []string {
	raw := strings.Split(lyrics, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Paragraphs splits lyrics into trimmed non-empty paragraph blocks.
func Paragraphs(lyrics string) []string {
	raw := strings.Split(lyrics, "\n\n")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeArtistID canonicalizes an artist identifier for lookup table
// keys: lowercased, separators collapsed to single spaces, diacritics
// folded ("Médine" and "medine" share one key).
func NormalizeArtistID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.ReplaceAll(id, "-", " ")
	id = strings.ReplaceAll(id, "_", " ")
	if folded, _, err := transform.String(diacriticFold, id); err == nil {
		id = folded
	}
	return strings.Join(strings.Fields(id), " ")
}
