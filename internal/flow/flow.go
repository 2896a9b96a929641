// Package flow scores rhyme patterns and rhythmic cadence.
package flow

import (
	"github.com/montanaflynn/stats"

	"rapmetrics/internal/phonetics"
	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

// Component weights; they sum to 1.0.
const (
	weightRhymeDensity      = 0.40
	weightInternalRhymes    = 0.25
	weightSyllableVariation = 0.20
	weightMultisyllabic     = 0.15
)

// Metrics is the flow result: the final score plus its sub-components,
// each in [0,1].
type Metrics struct {
	FlowScore           int
	RhymeDensity        float64
	InternalRhymes      float64
	SyllableVariation   float64
	Multisyllabic       float64
	AvgSyllablesPerLine float64
}

// Record converts the metrics to the persisted shape.
func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: m.FlowScore,
		Subscores: map[string]float64{
			"rhyme_density":      m.RhymeDensity,
			"internal_rhymes":    m.InternalRhymes,
			"syllable_variation": m.SyllableVariation,
			"multisyllabic":      m.Multisyllabic,
		},
		Extras: map[string]any{
			"avg_syllables_per_line": m.AvgSyllablesPerLine,
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
		RhymeDensity:      rhymeDensity(lines),
		InternalRhymes:    internalRhymes(lines),
		SyllableVariation: syllableVariation(lines),
		Multisyllabic:     multisyllabicRhymes(lines),
	}

	syllables := phonetics.SyllablesPerLine(lyrics)
	if len(syllables) > 0 {
		total := 0
		for _, s := range syllables {
			total += s
		}
		m.AvgSyllablesPerLine = float64(total) / float64(len(syllables))
	}

	m.FlowScore = score.Final(score.Weighted(
		[2]float64{m.RhymeDensity, weightRhymeDensity},
		[2]float64{m.InternalRhymes, weightInternalRhymes},
		[2]float64{m.SyllableVariation, weightSyllableVariation},
		[2]float64{m.Multisyllabic, weightMultisyllabic},
	) * 100)
	return m
}

func lastWords(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		words := textnorm.Words(line)
		if len(words) > 0 {
			out[i] = words[len(words)-1]
		}
	}
	return out
}

// rhymeDensity is the ratio of rhyming end-line pairs over consecutive
// (AABB) and alternating (ABAB) positions, scaled by 2 since perfect
// rhyming is rare, capped at 1.
func rhymeDensity(lines []string) float64 {
	if len(lines) < 2 {
		return 0
	}
	ends := lastWords(lines)

	rhymes, pairs := 0, 0
	for i := 0; i+1 < len(ends); i++ {
		if ends[i] != "" && ends[i+1] != "" {
			pairs++
			if phonetics.Rhymes(ends[i], ends[i+1], 2) {
				rhymes++
			}
		}
		if i+2 < len(ends) && ends[i] != "" && ends[i+2] != "" {
			pairs++
			if phonetics.Rhymes(ends[i], ends[i+2], 2) {
				rhymes++
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return score.Clamp01(float64(rhymes) / float64(pairs) * 2)
}

// internalRhymes scores within-line rhymes between non-adjacent words at
// strictness 2, capped at 3 hits per line.
func internalRhymes(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	totalInternal := 0
	linesWithInternal := 0
	for _, line := range lines {
		words := textnorm.Words(line)
		if len(words) < 4 {
			continue
		}
		found := 0
		for i := range words {
			for j := i + 2; j < len(words); j++ {
				if phonetics.Rhymes(words[i], words[j], 2) {
					found++
				}
			}
		}
		if found > 0 {
			linesWithInternal++
			totalInternal += min(found, 3)
		}
	}
	lineRatio := float64(linesWithInternal) / float64(len(lines))
	avgInternal := float64(totalInternal) / float64(len(lines))
	return score.Clamp01(lineRatio*0.6 + min(avgInternal/2, 0.4))
}

// syllableVariation maps the coefficient of variation of per-line
// syllable counts through three zones: monotonous, sweet spot, chaotic.
func syllableVariation(lines []string) float64 {
	syllables := make([]float64, 0, len(lines))
	for _, line := range lines {
		syllables = append(syllables, float64(phonetics.SyllableCount(line)))
	}
	if len(syllables) < 4 {
		return 0.5
	}

	mean, err := stats.Mean(syllables)
	if err != nil || mean == 0 {
		return 0
	}
	sd, err := stats.StandardDeviationPopulation(syllables)
	if err != nil {
		return 0
	}
	cv := sd / mean

	var s float64
	switch {
	case cv < 0.1:
		s = cv * 5
	case cv < 0.35:
		s = 0.8 + (0.35-abs(cv-0.25))*2
	default:
		s = max(0.3, 1.0-(cv-0.35)*2)
	}
	return score.Clamp01(s)
}

// multisyllabicRhymes counts strictness-3 matches among line endings
// within a 5-line window, scaled by 5.
func multisyllabicRhymes(lines []string) float64 {
	if len(lines) < 2 {
		return 0
	}
	ends := make([]string, 0, len(lines))
	for _, w := range lastWords(lines) {
		if w != "" {
			ends = append(ends, w)
		}
	}

	multi, checked := 0, 0
	for i := range ends {
		for j := i + 1; j < min(i+5, len(ends)); j++ {
			checked++
			if phonetics.Rhymes(ends[i], ends[j], 3) {
				multi++
			}
		}
	}
	if checked == 0 {
		return 0
	}
	return score.Clamp01(float64(multi) / float64(checked) * 5)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
