package influence

import (
	"testing"

	"rapmetrics/internal/facts"
)

func dataset(t *testing.T) *facts.Dataset {
	t.Helper()
	ds, err := facts.Default()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func TestDefaultsForUnknownArtist(t *testing.T) {
	m := Analyze("artiste fantôme", nil, dataset(t))
	if m.PresenceScore != defaultPresence {
		t.Fatalf("presence = %.1f, want default %.1f", m.PresenceScore, defaultPresence)
	}
	if m.AwardsScore != defaultAwards {
		t.Fatalf("awards = %.1f, want default %.1f", m.AwardsScore, defaultAwards)
	}
	if m.ChartsEfficiency != defaultCharts {
		t.Fatalf("charts = %.1f, want default %.1f", m.ChartsEfficiency, defaultCharts)
	}
	if m.CitationScore != 0 {
		t.Fatalf("no corpus means no citations, got %.1f", m.CitationScore)
	}
}

func TestCitationsCountOncePerArtistPlusMentions(t *testing.T) {
	ds := dataset(t)
	all := map[string]string{
		"booba":  "je suis le boss du rap game",
		"pnl":    "booba est le patron, booba toujours",
		"jul":    "dans la paranoïa comme booba",
		"nekfeu": "inspiré par iam et le 92i",
	}

	// pnl (2 mentions) + jul (1) + nekfeu via alias 92i (1):
	// 3 artists * 10 + 4 mentions = 34.
	got := Citations("booba", all, ds)
	if got != 34 {
		t.Fatalf("citations = %.1f, want 34", got)
	}
}

func TestCitationsSkipSelf(t *testing.T) {
	all := map[string]string{
		"booba": "booba booba booba",
	}
	if got := Citations("booba", all, dataset(t)); got != 0 {
		t.Fatalf("self-mentions must not count, got %.1f", got)
	}
}

func TestChartsEfficiencyVolumeBonus(t *testing.T) {
	ds := dataset(t)

	// PNL: 95 certs / 4 albums = 23.75 per album, capped at 100.
	pnl := Analyze("pnl", nil, ds)
	if pnl.ChartsEfficiency != 100 {
		t.Fatalf("pnl charts = %.1f, want capped 100", pnl.ChartsEfficiency)
	}

	// Jul: 120/18 = 6.67, x1.3 volume bonus = 8.67 -> 43.3.
	jul := Analyze("jul", nil, ds)
	if jul.ChartsEfficiency < 43 || jul.ChartsEfficiency > 44 {
		t.Fatalf("jul charts = %.2f, want ~43.3", jul.ChartsEfficiency)
	}
}

func TestTotalEqualWeights(t *testing.T) {
	m := Analyze("pnl", nil, dataset(t))
	want := (m.PresenceScore + m.AwardsScore + m.CitationScore + m.ChartsEfficiency) / 4
	if diff := m.TotalScore - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("total %.2f does not match equal-weight mean %.2f", m.TotalScore, want)
	}
}
