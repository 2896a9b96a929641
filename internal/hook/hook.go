// Package hook scores chorus memorability: repetition structure,
// phonetic catchiness, rhythm regularity and brevity.
package hook

import (
	"regexp"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"rapmetrics/internal/phonetics"
	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

const (
	weightRepetition = 0.35
	weightCatchiness = 0.30
	weightRhythm     = 0.20
	weightBrevity    = 0.15
)

// Metrics holds the hook score and its sub-signals.
type Metrics struct {
	HookScore        int
	Repetition       float64
	Catchiness       float64
	RhythmRegularity float64
	Brevity          float64
	ChorusDetected   bool
}

func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: m.HookScore,
		Subscores: map[string]float64{
			"repetition":        m.Repetition,
			"catchiness":        m.Catchiness,
			"rhythm_regularity": m.RhythmRegularity,
			"brevity":           m.Brevity,
		},
		Extras: map[string]any{
			"chorus_detected": m.ChorusDetected,
		},
	}
}

// Analyze scores the combined lyrics. Fewer than 4 non-empty lines
// yields the zero record.
func Analyze(lyrics string) Metrics {
	lines := textnorm.Lines(lyrics)
	if len(lines) < 4 {
		return Metrics{}
	}

	m := Metrics{
		Repetition:       repetition(lyrics),
		Catchiness:       catchiness(lyrics),
		RhythmRegularity: rhythmRegularity(lyrics),
		Brevity:          brevity(lyrics),
		ChorusDetected:   hasChorus(lyrics),
	}

	m.HookScore = score.Final(score.Weighted(
		[2]float64{m.Repetition, weightRepetition},
		[2]float64{m.Catchiness, weightCatchiness},
		[2]float64{m.RhythmRegularity, weightRhythm},
		[2]float64{m.Brevity, weightBrevity},
	) * 100)
	return m
}

func paragraphCounts(lyrics string) map[string]int {
	counts := make(map[string]int)
	for _, p := range textnorm.Paragraphs(lyrics) {
		counts[strings.ToLower(p)]++
	}
	return counts
}

func hasChorus(lyrics string) bool {
	for _, n := range paragraphCounts(lyrics) {
		if n > 1 {
			return true
		}
	}
	return false
}

// repetition blends repeated-paragraph ratio (likely choruses) with
// repeated 3-word phrase density. With a single paragraph, falls back
// to line-level repetition.
func repetition(lyrics string) float64 {
	paragraphs := textnorm.Paragraphs(lyrics)

	if len(paragraphs) < 2 {
		lines := textnorm.Lines(lyrics)
		if len(lines) < 4 {
			return 0
		}
		counts := make(map[string]int)
		for _, line := range lines {
			counts[strings.ToLower(line)]++
		}
		repeated := 0
		for _, n := range counts {
			if n > 1 {
				repeated++
			}
		}
		return score.Clamp01(float64(repeated) / float64(len(lines)) * 4)
	}

	repeatedParas := 0
	for _, n := range paragraphCounts(lyrics) {
		if n > 1 {
			repeatedParas++
		}
	}
	chorusRatio := float64(repeatedParas) / float64(len(paragraphs))

	words := strings.Fields(strings.ToLower(lyrics))
	phraseCounts := make(map[string]int)
	for i := 0; i+2 < len(words); i++ {
		phraseCounts[words[i]+" "+words[i+1]+" "+words[i+2]]++
	}
	repeatedPhrases := 0
	for _, n := range phraseCounts {
		if n >= 3 {
			repeatedPhrases++
		}
	}
	phraseScore := min(1.0, float64(repeatedPhrases)/20)

	return chorusRatio*0.6 + phraseScore*0.4
}

var (
	frenchWord      = regexp.MustCompile(`[a-zàâäéèêëïîôùûüœæ]+`)
	complexClusters = regexp.MustCompile(`[bcdfghjklmnpqrstvwxz]{3,}`)
)

const catchVowels = "aeiouyàâäéèêëïîôùûü"

// catchiness favors short words, open final syllables, simple
// consonant clusters and repeated vowel pairs.
func catchiness(lyrics string) float64 {
	lower := strings.ToLower(lyrics)
	words := frenchWord.FindAllString(lower, -1)
	if len(words) == 0 {
		return 0
	}

	totalLen := 0
	openFinal := 0
	for _, w := range words {
		totalLen += len([]rune(w))
		runes := []rune(w)
		if strings.ContainsRune(catchVowels, runes[len(runes)-1]) {
			openFinal++
		}
	}
	avgLength := float64(totalLen) / float64(len(words))
	lengthScore := max(0, 1-(avgLength-4)/6)
	openRatio := float64(openFinal) / float64(len(words))

	clusters := len(complexClusters.FindAllString(lower, -1))
	clusterPenalty := min(1.0, float64(clusters)/float64(len(words))*10)
	clusterScore := 1 - clusterPenalty

	var vowelSeq []rune
	for _, r := range lower {
		if strings.ContainsRune(catchVowels, r) {
			vowelSeq = append(vowelSeq, r)
		}
	}
	harmonyScore := 0.5
	if len(vowelSeq) >= 2 {
		pairs := make(map[string]int)
		for i := 0; i+1 < len(vowelSeq); i++ {
			pairs[string(vowelSeq[i:i+2])]++
		}
		harmonic := 0
		for _, n := range pairs {
			if n > 2 {
				harmonic++
			}
		}
		harmonyScore = min(1.0, float64(harmonic)/10)
	}

	return lengthScore*0.3 + openRatio*0.3 + clusterScore*0.2 + harmonyScore*0.2
}

// rhythmRegularity tiers each paragraph by the coefficient of
// variation of its per-line syllable counts. Hooks keep CV low.
func rhythmRegularity(lyrics string) float64 {
	paragraphs := textnorm.Paragraphs(lyrics)
	if len(paragraphs) == 0 {
		return 0.5
	}

	var scores []float64
	for _, para := range paragraphs {
		lines := textnorm.Lines(para)
		if len(lines) < 2 {
			continue
		}
		syllables := make([]float64, len(lines))
		for i, line := range lines {
			syllables[i] = float64(phonetics.SyllableCount(line))
		}
		mean, err := stats.Mean(syllables)
		if err != nil || mean == 0 {
			continue
		}
		sd, err := stats.StandardDeviationPopulation(syllables)
		if err != nil {
			continue
		}
		cv := sd / mean

		switch {
		case cv < 0.15:
			scores = append(scores, 1.0)
		case cv < 0.3:
			scores = append(scores, 0.7)
		case cv < 0.5:
			scores = append(scores, 0.4)
		default:
			scores = append(scores, 0.2)
		}
	}

	if len(scores) == 0 {
		return 0.5
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// brevity measures average words per line in the hook sections:
// repeated paragraphs, or the three shortest when nothing repeats.
func brevity(lyrics string) float64 {
	paragraphs := textnorm.Paragraphs(lyrics)

	var avgWords float64
	if len(paragraphs) < 2 {
		lines := textnorm.Lines(lyrics)
		if len(lines) == 0 {
			return 0.5
		}
		total := 0
		for _, line := range lines {
			total += len(strings.Fields(line))
		}
		avgWords = float64(total) / float64(len(lines))
	} else {
		seen := make(map[string]string)
		var hooks []string
		for _, p := range paragraphs {
			key := strings.ToLower(p)
			if first, ok := seen[key]; ok {
				if first != "" {
					hooks = append(hooks, first)
					seen[key] = ""
				}
				continue
			}
			seen[key] = p
		}

		if len(hooks) == 0 {
			sorted := append([]string(nil), paragraphs...)
			sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) < len(sorted[j]) })
			hooks = sorted[:min(3, len(sorted))]
		}

		total, count := 0, 0
		for _, h := range hooks {
			for _, line := range strings.Split(h, "\n") {
				total += len(strings.Fields(line))
				count++
			}
		}
		avgWords = 10
		if count > 0 {
			avgWords = float64(total) / float64(count)
		}
	}

	switch {
	case avgWords < 4:
		return 0.7
	case avgWords <= 8:
		return 1.0
	case avgWords <= 12:
		return 0.7
	default:
		return max(0.3, 1-(avgWords-12)/20)
	}
}
