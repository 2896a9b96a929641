// Package thematic scores how focused an artist's writing is: weight
// of the dominant theme discounted by the entropy of the distribution.
package thematic

import (
	"math"
	"sort"
	"strings"

	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

// minWords is the token count below which theme detection is too noisy
// to report.
const minWords = 100

// themeKeywords maps each theme to its marker vocabulary.
var themeKeywords = map[string][]string{
	"street": {
		"rue", "quartier", "bloc", "béton", "ghetto", "cité", "bitume",
		"trafic", "deal", "stup", "bicrave", "weed", "shit", "cocaine",
		"flic", "bac", "prison", "taule", "cellule",
		"gang", "bande", "crew", "équipe", "frères", "gars", "mecs",
	},
	"money": {
		"argent", "billet", "euro", "liasse", "cash", "thune", "oseille",
		"fric", "blé", "money", "fortune", "riche", "millionnaire",
		"business", "hustle", "grind", "travail", "entreprise",
		"rolex", "mercedes", "bmw", "luxe", "chaîne", "diamant",
	},
	"love": {
		"amour", "cœur", "aimer", "femme", "fille", "belle", "beauté",
		"sentiment", "relation", "couple", "mariage", "famille",
		"maman", "mère", "père", "enfant", "fils",
		"trahison", "mensonge", "tromperie", "rupture", "séparation",
	},
	"party": {
		"fête", "danse", "danser", "club", "nuit", "bouteille", "champagne",
		"alcool", "vodka", "hennessy", "whisky", "boire", "ivre",
		"ambiance", "soirée", "musique", "dj", "boîte", "discothèque",
	},
	"conscious": {
		"société", "politique", "système", "justice", "injustice", "police",
		"racisme", "discrimination", "média", "mensonge", "vérité",
		"peuple", "révolution", "combat", "lutte", "résistance",
		"éducation", "école", "histoire", "france", "banlieue",
	},
	"spiritual": {
		"dieu", "allah", "prière", "prier", "foi", "croire", "religion",
		"âme", "esprit", "destin", "karma", "paradis", "enfer",
		"mort", "vie", "éternel", "bénédiction", "miracle",
	},
	"ego": {
		"roi", "boss", "patron", "meilleur", "légende",
		"goat", "first", "top", "champion", "victoire", "succès",
		"respect", "réputation", "nom", "legacy", "histoire",
		"haters", "jaloux", "envieux", "ennemis", "clash",
	},
}

var keywordTheme = buildKeywordIndex()

func buildKeywordIndex() map[string][]string {
	idx := make(map[string][]string)
	for theme, words := range themeKeywords {
		for _, w := range words {
			idx[w] = append(idx[w], theme)
		}
	}
	return idx
}

// Metrics is the thematic result for one artist.
type Metrics struct {
	DominantTheme       string
	DominantThemeWeight float64
	ThemeEntropy        float64
	CoherenceScore      float64
	ThemeDistribution   map[string]float64
}

func (m Metrics) Record() score.Record {
	sub := make(map[string]float64, len(m.ThemeDistribution))
	for theme, w := range m.ThemeDistribution {
		sub["theme_"+theme] = w
	}
	return score.Record{
		FinalScore: score.Final(m.CoherenceScore),
		Subscores:  sub,
		Extras: map[string]any{
			"dominant_theme":        m.DominantTheme,
			"dominant_theme_weight": m.DominantThemeWeight,
			"theme_entropy":         m.ThemeEntropy,
		},
	}
}

// DetectThemes returns the normalized theme distribution. Texts under
// minWords tokens get an all-zero distribution; texts with no theme
// markers get a uniform one.
func DetectThemes(lyrics string) map[string]float64 {
	dist := make(map[string]float64, len(themeKeywords))
	for theme := range themeKeywords {
		dist[theme] = 0
	}
	if lyrics == "" {
		return dist
	}

	text := textnorm.FilterFrench(strings.ToLower(lyrics))
	words := strings.Fields(text)
	if len(words) < minWords {
		return dist
	}

	counts := make(map[string]int, len(themeKeywords))
	total := 0
	for _, w := range words {
		for _, theme := range keywordTheme[w] {
			counts[theme]++
			total++
		}
	}

	if total == 0 {
		uniform := 1 / float64(len(themeKeywords))
		for theme := range dist {
			dist[theme] = uniform
		}
		return dist
	}

	for theme, n := range counts {
		dist[theme] = float64(n) / float64(total)
	}
	return dist
}

// Entropy is the Shannon entropy of the distribution normalized by the
// uniform maximum, so 0 is single-theme and 1 is evenly spread.
func Entropy(distribution map[string]float64) float64 {
	var entropy float64
	for _, w := range distribution {
		if w > 0 {
			entropy -= w * math.Log2(w)
		}
	}
	maxEntropy := math.Log2(float64(len(distribution)))
	if maxEntropy <= 0 {
		return 0
	}
	return entropy / maxEntropy
}

// Analyze computes thematic coherence for the combined lyrics.
func Analyze(lyrics string) Metrics {
	dist := DetectThemes(lyrics)

	dominant := "unknown"
	var dominantWeight float64
	themes := make([]string, 0, len(dist))
	for theme := range dist {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	for _, theme := range themes {
		if dist[theme] > dominantWeight {
			dominant = theme
			dominantWeight = dist[theme]
		}
	}

	entropy := Entropy(dist)
	coherence := (dominantWeight * 100) * (1 - entropy*0.5)

	return Metrics{
		DominantTheme:       dominant,
		DominantThemeWeight: dominantWeight,
		ThemeEntropy:        entropy,
		CoherenceScore:      score.Clamp(coherence*2, 0, 100),
		ThemeDistribution:   dist,
	}
}
