// Package vocabulary measures lexical richness over lemmatized text.
package vocabulary

import (
	"sort"
	"strings"

	"rapmetrics/internal/textnorm"
)

const (
	// mtldThreshold is the TTR floor at which an MTLD factor completes.
	mtldThreshold = 0.72
	// mtldBaseline centers the diversity factor; typical prose lands
	// between 50 and 100.
	mtldBaseline = 80

	// vocabularyCap bounds the adjusted count; the public benchmark
	// tops out near 8000 unique lemmas.
	vocabularyCap = 12000

	// mtldMinWords is the minimum token count for MTLD to be stable.
	mtldMinWords = 100
)

// Metrics holds vocabulary richness measurements. UniqueWords is the
// headline metric: unique lemmas adjusted by the MTLD diversity factor.
type Metrics struct {
	UniqueWords       int
	TotalWords        int
	UniqueLemmas      int
	TTR               float64
	MTLD              float64
	VocabularyDensity float64
}

// UniqueWords computes the adjusted unique vocabulary size. Slang is
// normalized to canonical forms first so verlan variants of one word
// do not inflate the count.
func UniqueWords(tk textnorm.Toolkit, lyrics string) int {
	if strings.TrimSpace(lyrics) == "" {
		return 0
	}

	text := textnorm.FilterFrench(lyrics)
	text = textnorm.NormalizeSlang(text, false)

	raw := len(tk.UniqueLemmas(text, true))

	factor := 1.0
	if len(strings.Fields(text)) >= mtldMinWords {
		if mtld := MTLD(strings.Fields(strings.ToLower(text)), mtldThreshold); mtld > 0 {
			factor = max(0.5, min(1.5, mtld/mtldBaseline))
		}
	}

	return min(int(float64(raw)*factor), vocabularyCap)
}

// Analyze computes the full vocabulary metric set.
func Analyze(tk textnorm.Toolkit, lyrics string) Metrics {
	if strings.TrimSpace(lyrics) == "" {
		return Metrics{}
	}

	tokens := tk.Tokenize(lyrics)
	totalWords := tk.CountWords(lyrics)

	uniqueTokens := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		uniqueTokens[t] = struct{}{}
	}

	lemmas := tk.Lemmatize(lyrics)
	uniqueLemmas := make(map[string]struct{}, len(lemmas))
	for _, l := range lemmas {
		uniqueLemmas[l] = struct{}{}
	}

	m := Metrics{
		UniqueWords:  UniqueWords(tk, lyrics),
		TotalWords:   totalWords,
		UniqueLemmas: len(uniqueLemmas),
	}
	if totalWords > 0 {
		m.TTR = float64(len(uniqueTokens)) / float64(totalWords)
	}
	if totalWords >= mtldMinWords {
		m.MTLD = MTLD(strings.Fields(strings.ToLower(lyrics)), mtldThreshold)
	}

	content := tk.ContentWords(lyrics)
	if len(content) > 0 {
		uniqueContent := make(map[string]struct{}, len(content))
		for _, w := range content {
			uniqueContent[w] = struct{}{}
		}
		m.VocabularyDensity = float64(len(uniqueContent)) / float64(len(content))
	}
	return m
}

// MTLD is the Measure of Textual Lexical Diversity: the mean length of
// token runs that sustain a type-token ratio above threshold, averaged
// over a forward and a backward pass.
func MTLD(tokens []string, threshold float64) float64 {
	if len(tokens) == 0 {
		return 0
	}
	fwd := mtldPass(tokens, threshold)
	rev := make([]string, len(tokens))
	for i, t := range tokens {
		rev[len(tokens)-1-i] = t
	}
	bwd := mtldPass(rev, threshold)
	return (fwd + bwd) / 2
}

func mtldPass(tokens []string, threshold float64) float64 {
	factors := 0.0
	types := make(map[string]struct{})
	runLen := 0
	ttr := 1.0

	for _, tok := range tokens {
		runLen++
		types[tok] = struct{}{}
		ttr = float64(len(types)) / float64(runLen)
		if ttr <= threshold {
			factors++
			types = make(map[string]struct{})
			runLen = 0
			ttr = 1.0
		}
	}

	// Partial factor for the trailing run.
	if runLen > 0 {
		factors += (1 - ttr) / (1 - threshold)
	}

	if factors == 0 {
		return float64(len(tokens))
	}
	return float64(len(tokens)) / factors
}

// RareWords returns lemmas longer than three characters that occur at
// most threshold times.
func RareWords(tk textnorm.Toolkit, lyrics string, threshold int) []string {
	counts := make(map[string]int)
	for _, l := range tk.Lemmatize(lyrics) {
		counts[l]++
	}
	var rare []string
	for word, n := range counts {
		if n <= threshold && len([]rune(word)) > 3 {
			rare = append(rare, word)
		}
	}
	sort.Strings(rare)
	return rare
}
