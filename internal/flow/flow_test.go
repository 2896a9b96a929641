package flow

import "testing"

func TestAnalyzeTooFewLines(t *testing.T) {
	m := Analyze("Je rappe\nJe rappe encore")
	if m.FlowScore != 0 {
		t.Fatalf("expected zero score for short input, got %d", m.FlowScore)
	}
	if m.RhymeDensity != 0 || m.InternalRhymes != 0 {
		t.Fatalf("expected zero components for short input, got %+v", m)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	m := Analyze("")
	if m.FlowScore != 0 {
		t.Fatalf("expected zero score for empty input, got %d", m.FlowScore)
	}
}

func TestRhymingCoupletsScoreHigher(t *testing.T) {
	rhymed := `Je marche seul vers la victoire
Mes rimes racontent mon histoire
Je reste debout malgré la tempête
Chaque couplet résonne dans ma tête`

	unrhymed := `Je marche seul dans la rue
Le ciel est couvert ce matin
Les gens passent sans regarder
Je continue mon chemin tranquille`

	a := Analyze(rhymed)
	b := Analyze(unrhymed)
	if a.RhymeDensity <= b.RhymeDensity {
		t.Fatalf("rhymed couplets %.3f should beat unrhymed %.3f", a.RhymeDensity, b.RhymeDensity)
	}
}

func TestComponentsBounded(t *testing.T) {
	text := `La nuit tombe sur la ville et je pose
Chaque mot chaque rime chaque chose
Dans le noir je trouve ma lumière
Je trace ma route à ma manière
Victoire histoire trajectoire mémoire
Je rime encore sans même y croire`

	m := Analyze(text)
	for name, v := range map[string]float64{
		"rhyme_density":      m.RhymeDensity,
		"internal_rhymes":    m.InternalRhymes,
		"syllable_variation": m.SyllableVariation,
		"multisyllabic":      m.Multisyllabic,
	} {
		if v < 0 || v > 1 {
			t.Fatalf("%s = %.3f out of [0,1]", name, v)
		}
	}
	if m.FlowScore < 0 || m.FlowScore > 100 {
		t.Fatalf("final score %d out of [0,100]", m.FlowScore)
	}
	if m.AvgSyllablesPerLine <= 0 {
		t.Fatalf("expected positive avg syllables per line, got %.2f", m.AvgSyllablesPerLine)
	}
}

func TestRecordShape(t *testing.T) {
	m := Analyze(`Je marche seul vers la victoire
Mes rimes racontent mon histoire
Je reste debout malgré la tempête
Chaque couplet résonne dans ma tête`)

	rec := m.Record()
	if rec.FinalScore != m.FlowScore {
		t.Fatalf("record score %d != metric score %d", rec.FinalScore, m.FlowScore)
	}
	if _, ok := rec.Subscores["rhyme_density"]; !ok {
		t.Fatalf("missing rhyme_density subscore: %v", rec.Subscores)
	}
}
