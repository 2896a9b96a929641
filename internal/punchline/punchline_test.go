package punchline

import (
	"strings"
	"testing"
)

const sampleVerse = `Je suis un loup dans la jungle de béton
Mon coeur de pierre ne connaît pas le pardon
Comme Scarface je monte les échelons
La rue m'a forgé, wallah c'est pas du bidon
C'est la hess ou la richesse, pas de milieu
Je prie le ciel mais je vis comme si y'avait pas de Dieu`

func TestAnalyzeGuardClause(t *testing.T) {
	for _, input := range []string{"", "une ligne\nune autre\nune troisième"} {
		m := Analyze(input)
		if m.PunchlineScore != 0 || m.Wordplay != 0 {
			t.Fatalf("expected zero metrics for %q, got %+v", input, m)
		}
	}
}

func TestAnalyzeDetectsDevices(t *testing.T) {
	m := Analyze(sampleVerse)
	if m.RhetoricalDevices <= 0 {
		t.Fatalf("expected comparative structures to register, got %.3f", m.RhetoricalDevices)
	}
	if m.ParadoxPhilosophy <= 0 {
		t.Fatalf("expected richesse/hess antithesis to register, got %.3f", m.ParadoxPhilosophy)
	}
	if m.PunchlineScore <= 0 || m.PunchlineScore > 100 {
		t.Fatalf("score %d out of range", m.PunchlineScore)
	}
}

func TestHomophoneGroupsCountAsWordplay(t *testing.T) {
	text := `Je compte mes fois et je garde la foi
Mon sang coule sans bruit sous mon toit
La mer appelle ma mère chaque soir
Je tends le temps comme on tend un mouchoir`

	m := Analyze(text)
	if m.Wordplay <= 0 {
		t.Fatalf("expected homophone pairs to register, got %.3f", m.Wordplay)
	}
}

func TestBrandPenaltyLowersReferences(t *testing.T) {
	base := `Comme un César je traverse la ville
Tel un Hercule je porte la famille
La nuit je marche la peur reste tranquille
Mes mots pèsent lourd ma plume reste agile`

	branded := base + "\n" + strings.Repeat("Gucci Rolex Ferrari Balenciaga\n", 8)

	clean := Analyze(base)
	loaded := Analyze(branded)
	if loaded.CulturalRefs > clean.CulturalRefs {
		t.Fatalf("brand drops should not raise references: clean=%.3f branded=%.3f",
			clean.CulturalRefs, loaded.CulturalRefs)
	}
}

func TestComboBonusRequiresMultiplePatterns(t *testing.T) {
	flat := `Le soleil se lève sur la plaine
La rivière descend vers la plaine
Les arbres poussent dans la plaine
Le vent souffle sur la plaine`

	m := Analyze(flat)
	if m.PunchlineScore > 40 {
		t.Fatalf("flat text should score low, got %d", m.PunchlineScore)
	}
}
