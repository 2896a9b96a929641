package hook

import "testing"

const withChorus = `Dans la nuit je marche seul
Les étoiles sont mon seul public
Je chante pour oublier la douleur
Ma voix résonne dans le noir

C'est le refrain de ma vie
C'est le refrain de ma vie
Je chante encore et encore
C'est le refrain de ma vie

Les rues sont vides à cette heure
Mais mon coeur bat comme un tambour
Chaque pas me rapproche du jour
Où je trouverai le bonheur

C'est le refrain de ma vie
C'est le refrain de ma vie
Je chante encore et encore
C'est le refrain de ma vie`

const withoutChorus = `Dans la nuit je marche seul
Les étoiles sont mon seul public
Je chante pour oublier la douleur
Ma voix résonne dans le noir

Les rues sont vides à cette heure
Mais mon coeur bat comme un tambour
Chaque pas me rapproche du jour
Où je trouverai le bonheur`

func TestAnalyzeGuardClause(t *testing.T) {
	m := Analyze("trop\ncourt\npour scorer")
	if m.HookScore != 0 || m.ChorusDetected {
		t.Fatalf("expected zero metrics for short input, got %+v", m)
	}
}

func TestChorusDetection(t *testing.T) {
	if m := Analyze(withChorus); !m.ChorusDetected {
		t.Fatal("repeated paragraph should be detected as chorus")
	}
	if m := Analyze(withoutChorus); m.ChorusDetected {
		t.Fatal("no paragraph repeats, chorus should not be detected")
	}
}

func TestRepetitionFavorsChorus(t *testing.T) {
	a := Analyze(withChorus)
	b := Analyze(withoutChorus)
	if a.Repetition <= b.Repetition {
		t.Fatalf("chorus text repetition %.3f should beat chorus-free %.3f", a.Repetition, b.Repetition)
	}
	if a.HookScore <= b.HookScore {
		t.Fatalf("chorus text score %d should beat chorus-free %d", a.HookScore, b.HookScore)
	}
}

func TestRepeatedLineFallback(t *testing.T) {
	// Single paragraph, "Je suis le roi" repeated four times.
	text := `Je suis le roi
Je suis le roi
Je suis le roi
Je suis le roi`

	m := Analyze(text)
	if m.Repetition < 0.9 {
		t.Fatalf("fully repeated lines should max out repetition, got %.3f", m.Repetition)
	}
}

func TestComponentsBounded(t *testing.T) {
	m := Analyze(withChorus)
	for name, v := range map[string]float64{
		"repetition": m.Repetition,
		"catchiness": m.Catchiness,
		"rhythm":     m.RhythmRegularity,
		"brevity":    m.Brevity,
	} {
		if v < 0 || v > 1 {
			t.Fatalf("%s = %.3f out of [0,1]", name, v)
		}
	}
	if m.HookScore < 0 || m.HookScore > 100 {
		t.Fatalf("score %d out of [0,100]", m.HookScore)
	}
}

func TestRhythmRegularityTiers(t *testing.T) {
	steady := "la nuit tombe sur la ville\nla nuit tombe sur la ville\nla nuit tombe sur la ville\nla nuit tombe sur la ville"
	uneven := "oui\nje traverse la ville entière sous la pluie battante encore une fois\nnon\nles lumières de la capitale brillent sur le périphérique désert"

	rs := rhythmRegularity(steady)
	ru := rhythmRegularity(uneven)
	if rs != 1.0 {
		t.Fatalf("uniform lines should hit the top tier, got %.3f", rs)
	}
	if ru >= rs {
		t.Fatalf("uneven lines %.3f should score below uniform lines %.3f", ru, rs)
	}
}

func TestRhythmRegularityNoParagraphs(t *testing.T) {
	if got := rhythmRegularity(""); got != 0.5 {
		t.Fatalf("empty lyrics should be neutral, got %.3f", got)
	}
}
