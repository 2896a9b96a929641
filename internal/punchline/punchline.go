// Package punchline scores rhetorical craft: comparison structures,
// paradox, wordplay, and cultural references, with bonuses for the
// stylistic markers that show up in strong written verses.
package punchline

import (
	"regexp"
	"strings"

	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
)

const (
	weightRhetorical = 0.35
	weightParadox    = 0.25
	weightWordplay   = 0.25
	weightReferences = 0.15
)

// Per-line normalizers calibrated on hand-labeled verses.
const (
	rhetoricalPerLine = 0.12
	wordplayPerLine   = 0.08
	paradoxPerLine    = 0.05
	referencesPerLine = 0.02
)

// Metrics holds the punchline score and its sub-signals.
type Metrics struct {
	PunchlineScore    int
	RhetoricalDevices float64
	Wordplay          float64
	ParadoxPhilosophy float64
	CulturalRefs      float64
	SlangDensity      float64
}

func (m Metrics) Record() score.Record {
	return score.Record{
		FinalScore: m.PunchlineScore,
		Subscores: map[string]float64{
			"rhetorical_devices": m.RhetoricalDevices,
			"wordplay":           m.Wordplay,
			"paradox_philosophy": m.ParadoxPhilosophy,
			"cultural_refs":      m.CulturalRefs,
		},
		Extras: map[string]any{
			"slang_density": m.SlangDensity,
		},
	}
}

var (
	commePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bcomme\s+(?:un|une|le|la|des|les)\s+\w+`),
		regexp.MustCompile(`\bcomme\s+si\b`),
		regexp.MustCompile(`\btel(?:le)?s?\s+(?:un|une|le|la)\s+\w+`),
	}
	conditionalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bsi\s+(?:tu|on|je|il|elle|ils|elles|vous|nous)\s+\w+[^,\n]*,`),
		regexp.MustCompile(`\bsi\s+(?:j'|t'|on\s|il\s|elle\s)\w+`),
		regexp.MustCompile(`\bfaut\s+(?:pas\s+)?que\s+(?:tu|je|on)\b`),
		regexp.MustCompile(`\b(?:sinon|autrement)\b`),
	}
	questionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:qui|quoi|comment|pourquoi|où|quand)\s+\w+[^\n?]*\?`),
		regexp.MustCompile(`\bc'est\s+quoi\b`),
		regexp.MustCompile(`\bt(?:'|u\s)(?:crois|penses|veux)\s+quoi\b`),
		regexp.MustCompile(`\?`),
	}
	numberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d+\s+(?:fois|jours?|ans?|heures?|balles?|grammes?)\b`),
		regexp.MustCompile(`\b(?:cent|mille|million)\s+\w+`),
		regexp.MustCompile(`\b(?:premier|deuxième|dernier)\b`),
	}

	fallConnectors = regexp.MustCompile(`\b(?:mais|pourtant|même\s+si|alors\s+que|cependant|or|sauf\s+que)\b`)
	personalRefs   = regexp.MustCompile(`\b(?:j['’]?(?:suis|ai|étais|avais|fais|veux|peux|dois|mets|vis|reste)|mon|ma|mes|moi)\b`)
)

// homophoneGroups are sets of words that share pronunciation; two or
// more from the same group in one text signals deliberate wordplay.
var homophoneGroups = [][]string{
	{"mer", "mère", "maire"},
	{"vers", "vert", "verre", "ver"},
	{"sain", "sein", "saint", "ceint"},
	{"sang", "sans", "cent", "sent"},
	{"temps", "tant", "tend", "t'en"},
	{"voix", "voie", "vois", "voit"},
	{"foi", "fois", "foie"},
	{"air", "aire", "ère", "hère", "erre"},
	{"ancre", "encre"},
	{"chaîne", "chêne"},
	{"champ", "chant"},
	{"cou", "coup", "coût"},
	{"faim", "fin", "feint"},
	{"poids", "pois"},
	{"port", "porc", "pore"},
	{"saut", "sceau", "seau", "sot"},
	{"vingt", "vin", "vain"},
	{"compte", "conte", "comte"},
	{"court", "cour", "cours"},
	{"pain", "pin", "peint"},
	{"pot", "peau"},
	{"mot", "maux"},
	{"toi", "toit"},
	{"sou", "sous", "soûl"},
	{"père", "pair", "paire", "perd"},
	{"mur", "mûr"},
	{"bal", "balle"},
	{"date", "datte"},
	{"point", "poing"},
	{"sale", "salle"},
}

var homophoneRegexps = buildHomophoneRegexps()

func buildHomophoneRegexps() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(homophoneGroups))
	for i, group := range homophoneGroups {
		compiled := make([]*regexp.Regexp, len(group))
		for j, word := range group {
			compiled[j] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `s?\b`)
		}
		out[i] = compiled
	}
	return out
}

var polysemyIndicators = []*regexp.Regexp{
	regexp.MustCompile(`dans tous les sens`),
	regexp.MustCompile(`au propre comme au figuré`),
	regexp.MustCompile(`au sens propre`),
	regexp.MustCompile(`au premier degré`),
	regexp.MustCompile(`au second degré`),
	regexp.MustCompile(`double sens`),
	regexp.MustCompile(`si tu vois ce que`),
	regexp.MustCompile(`tu (?:vois|captes|comprends)\s+(?:le|ce que)`),
	regexp.MustCompile(`(?:c'est|y'a)\s+(?:un\s+)?jeu de mot`),
}

var (
	alliteration = regexp.MustCompile(`\b([bcdfghjklmnpqrstvwxz])\w+\s+([bcdfghjklmnpqrstvwxz])\w+\s+([bcdfghjklmnpqrstvwxz])\w+`)

	wordManipulation = []*regexp.Regexp{
		regexp.MustCompile(`\b\w+-\w+\b`),
		regexp.MustCompile(`l['’](?:a|e|é)\w+`),
	}
)

type antithesisPair struct {
	first, second *regexp.Regexp
}

var antithesisPairs = []antithesisPair{
	{regexp.MustCompile(`\b(?:vie|vivre|vivant)\b`), regexp.MustCompile(`\b(?:mort|mourir|crever|décès)\b`)},
	{regexp.MustCompile(`\b(?:amour|aimer|aime)\b`), regexp.MustCompile(`\b(?:haine|haïr|détester)\b`)},
	{regexp.MustCompile(`\b(?:riche|richesse|thune)\b`), regexp.MustCompile(`\b(?:pauvre|misère|hess|galère)\b`)},
	{regexp.MustCompile(`\b(?:ange|angélique)\b`), regexp.MustCompile(`\b(?:démon|diable|satan)\b`)},
	{regexp.MustCompile(`\b(?:ciel|paradis)\b`), regexp.MustCompile(`\b(?:enfer|terre|sol)\b`)},
	{regexp.MustCompile(`\b(?:lumière|jour|soleil)\b`), regexp.MustCompile(`\b(?:ombre|nuit|noir|obscurité)\b`)},
	{regexp.MustCompile(`\b(?:vérité|vrai)\b`), regexp.MustCompile(`\b(?:mensonge|mentir|faux)\b`)},
	{regexp.MustCompile(`\b(?:ami|frère|pote)\b`), regexp.MustCompile(`\b(?:ennemi|traître|serpent)\b`)},
	{regexp.MustCompile(`\b(?:début|commence)\b`), regexp.MustCompile(`\b(?:fin|termine|finit)\b`)},
	{regexp.MustCompile(`\b(?:monter|haut|sommet)\b`), regexp.MustCompile(`\b(?:tomber|bas|fond)\b`)},
	{regexp.MustCompile(`\b(?:espoir|rêve)\b`), regexp.MustCompile(`\b(?:désespoir|cauchemar)\b`)},
	{regexp.MustCompile(`\b(?:innocent|pur)\b`), regexp.MustCompile(`\b(?:coupable|sale|souillé)\b`)},
	{regexp.MustCompile(`\b(?:silence|muet)\b`), regexp.MustCompile(`\b(?:bruit|crier|gueuler)\b`)},
	{regexp.MustCompile(`\b(?:chaud|brûle)\b`), regexp.MustCompile(`\b(?:froid|glace|geler)\b`)},
}

var aphorismPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bla vie\s+(?:c'est|est|n'est)\b`),
	regexp.MustCompile(`\ble monde\s+(?:c'est|est)\b`),
	regexp.MustCompile(`\bl'amour\s+(?:c'est|est|n'est)\b`),
	regexp.MustCompile(`\bla mort\s+(?:c'est|est)\b`),
	regexp.MustCompile(`\ble rap\s+(?:c'est|est)\b`),
	regexp.MustCompile(`\bla rue\s+(?:c'est|est|m'a)\b`),
	regexp.MustCompile(`\brien ne sert de\b`),
	regexp.MustCompile(`\bmieux vaut\b`),
	regexp.MustCompile(`\bqui veut\s+\w+\s+doit\b`),
	regexp.MustCompile(`\bon (?:ne\s+)?(?:naît|meurt|vit)\b.*\bon (?:ne\s+)?(?:naît|meurt|vit)\b`),
}

var darkBoastPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bj'ai\s+(?:grandi|vécu)\s+.*(?:mort|seul|noir|sombre)`),
	regexp.MustCompile(`\bj(?:'|e\s)suis\s+(?:tellement|si)\s+\w+\s+que\b`),
	regexp.MustCompile(`\bsoit\s+(?:je|on)\s+\w+\s+soit\s+(?:je|on)\b`),
	regexp.MustCompile(`\bj'(?:préfère|veux)\s+(?:mourir|crever)\b`),
}

var oxymoronPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:silence|muet)\s+(?:assourdissant|bruyant)\b`),
	regexp.MustCompile(`\b(?:mort|mourir)\s+(?:vivant|de vivre)\b`),
	regexp.MustCompile(`\b(?:feu|brûle)\s+(?:froid|glacé)\b`),
	regexp.MustCompile(`\bglace\s+(?:brûle|chaud)\b`),
	regexp.MustCompile(`\bobscure\s+clarté\b`),
	regexp.MustCompile(`\bnostalgique\s+du\s+futur\b`),
}

var culturalRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:comme|tel)\s+(?:un\s+)?(?:césar|napoleon|spartacus|alexandre)\b`),
	regexp.MustCompile(`(?i)\b(?:comme|tel)\s+(?:un\s+)?(?:hercule|ulysse|achille|zeus)\b`),
	regexp.MustCompile(`(?i)\b(?:hamlet|macbeth|faust|cyrano|monte-cristo|quichotte)\b`),
	regexp.MustCompile(`(?i)\b(?:molière|hugo|voltaire|rimbaud|baudelaire|céline)\b`),
	regexp.MustCompile(`(?i)\b(?:comme|tel)\s+(?:un\s+)?(?:scarface|parrain|soprano)\b`),
	regexp.MustCompile(`(?i)\b(?:malcolm|luther\s+king|mandela|rosa\s+parks|che)\b`),
	regexp.MustCompile(`(?i)\b(?:zidane|mbappé|platini)\b.*(?:arrêt|but|match)`),
}

var brandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:gucci|louis\s*vuitton|prada|hermès|dior|chanel|balenciaga)\b`),
	regexp.MustCompile(`(?i)\b(?:rolex|cartier|audemars|patek|richard\s+mille)\b`),
	regexp.MustCompile(`(?i)\b(?:ferrari|lamborghini|porsche|bentley|maybach)\b`),
	regexp.MustCompile(`(?i)\b(?:louboutin|yeezy|jordan|supreme)\b`),
}

// Analyze scores the combined lyrics. Fewer than 4 non-empty lines
// yields the zero record.
func Analyze(lyrics string) Metrics {
	lines := textnorm.Lines(lyrics)
	if len(lines) < 4 {
		return Metrics{}
	}
	lower := strings.ToLower(lyrics)

	m := Metrics{
		RhetoricalDevices: rhetoricalDevices(lower, len(lines)),
		Wordplay:          wordplay(lower, len(lines)),
		ParadoxPhilosophy: paradoxPhilosophy(lower, lines),
		CulturalRefs:      culturalHijacking(lyrics, lower, lines),
		SlangDensity:      textnorm.SlangDensity(lyrics),
	}

	base := m.RhetoricalDevices*weightRhetorical*100 +
		m.ParadoxPhilosophy*weightParadox*100 +
		m.Wordplay*weightWordplay*100 +
		m.CulturalRefs*weightReferences*100

	connectorRatio := float64(len(fallConnectors.FindAllString(lower, -1))) / float64(len(lines))
	connectorBonus := min(8.0, connectorRatio*40)

	personalRatio := float64(len(personalRefs.FindAllString(lower, -1))) / float64(len(lines))
	personalBonus := min(5.0, personalRatio*10)

	brevityBonus := brevity(lines)

	patternsActive := 0
	for _, active := range []bool{
		m.RhetoricalDevices > 0.3,
		m.Wordplay > 0.3,
		m.ParadoxPhilosophy > 0.3,
		m.CulturalRefs > 0.2,
		connectorRatio > 0.1,
		personalRatio > 0.2,
	} {
		if active {
			patternsActive++
		}
	}
	var comboBonus float64
	switch {
	case patternsActive >= 5:
		comboBonus = 7
	case patternsActive >= 4:
		comboBonus = 5
	case patternsActive >= 3:
		comboBonus = 3
	}

	m.PunchlineScore = score.Final(base + connectorBonus + personalBonus + brevityBonus + comboBonus)
	return m
}

// brevity rewards the 8-15 words per line sweet spot where a setup and
// its fall fit in one breath.
func brevity(lines []string) float64 {
	total := 0
	for _, line := range lines {
		total += len(strings.Fields(line))
	}
	avg := float64(total) / float64(len(lines))
	switch {
	case avg >= 8 && avg <= 15:
		return 5
	case avg >= 6 && avg <= 20:
		return 3
	default:
		return 0
	}
}

func rhetoricalDevices(lower string, lineCount int) float64 {
	var s float64
	for _, re := range commePatterns {
		s += float64(len(re.FindAllString(lower, -1))) * 0.8
	}
	for _, re := range conditionalPatterns {
		s += float64(len(re.FindAllString(lower, -1))) * 1.0
	}

	var questions float64
	for i, re := range questionPatterns {
		weight := 0.3
		if i < 3 {
			weight = 1.2
		}
		questions += float64(len(re.FindAllString(lower, -1))) * weight
	}
	s += min(questions, float64(lineCount)*0.5)

	for _, re := range numberPatterns {
		s += float64(len(re.FindAllString(lower, -1))) * 0.6
	}

	return score.Clamp01(s / float64(lineCount) / rhetoricalPerLine)
}

func wordplay(lower string, lineCount int) float64 {
	var s float64

	for _, group := range homophoneRegexps {
		found := 0
		for _, re := range group {
			if re.MatchString(lower) {
				found++
			}
		}
		if found >= 2 {
			s += float64(found) * 1.5
		}
	}

	for _, re := range polysemyIndicators {
		if re.MatchString(lower) {
			s += 4
		}
	}

	for _, m := range alliteration.FindAllStringSubmatch(lower, -1) {
		if m[1] == m[2] && m[2] == m[3] {
			s += 1.0
		}
	}

	for _, re := range wordManipulation {
		s += float64(len(re.FindAllString(lower, -1))) * 0.2
	}

	return score.Clamp01(s / float64(lineCount) / wordplayPerLine)
}

func paradoxPhilosophy(lower string, lines []string) float64 {
	var s float64

	lowerLines := make([]string, len(lines))
	for i, line := range lines {
		lowerLines[i] = strings.ToLower(line)
	}

	for _, pair := range antithesisPairs {
		for i, line := range lowerLines {
			hasFirst := pair.first.MatchString(line)
			hasSecond := pair.second.MatchString(line)
			if hasFirst && hasSecond {
				s += 2.5
			}
			if i+1 < len(lowerLines) {
				next := lowerLines[i+1]
				if hasFirst && pair.second.MatchString(next) {
					s += 1.5
				}
				if hasSecond && pair.first.MatchString(next) {
					s += 1.5
				}
			}
		}
	}

	for _, re := range aphorismPatterns {
		s += float64(len(re.FindAllString(lower, -1))) * 2.0
	}
	for _, re := range darkBoastPatterns {
		s += float64(len(re.FindAllString(lower, -1))) * 2.0
	}
	for _, re := range oxymoronPatterns {
		if re.MatchString(lower) {
			s += 3.0
		}
	}

	return score.Clamp01(s / float64(len(lines)) / paradoxPerLine)
}

// culturalHijacking rewards references used as metaphor and penalizes
// bare brand drops.
func culturalHijacking(lyrics, lower string, lines []string) float64 {
	var s float64
	for _, re := range culturalRefPatterns {
		s += float64(len(re.FindAllString(lower, -1))) * 2.0
	}

	brandCount := 0
	for _, re := range brandPatterns {
		brandCount += len(re.FindAllString(lyrics, -1))
	}

	if wordCount := len(strings.Fields(lyrics)); wordCount > 0 {
		brandRatio := float64(brandCount) / float64(wordCount)
		penalty := min(0.4, brandRatio*15)
		s = max(0, s-penalty*float64(len(lines)))
	}

	return score.Clamp01(s / float64(len(lines)) / referencesPerLine)
}
