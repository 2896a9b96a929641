package peak

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

func TestUnknownArtistDefaults(t *testing.T) {
	m := Analyze("artiste fantôme", dataset(t))
	if m.PeakAlbumScore != defaultAlbumScore {
		t.Fatalf("album score = %.1f, want default %.1f", m.PeakAlbumScore, defaultAlbumScore)
	}
	if m.ClassicTracksCount != defaultClassicTracks {
		t.Fatalf("classic count = %d, want default %d", m.ClassicTracksCount, defaultClassicTracks)
	}
}

func TestDiamondAlbumWithEfficiencyBonus(t *testing.T) {
	ds := dataset(t)

	// MC Solaar: diamond (90 base) on a 14-track album.
	// 15/14 = 1.071 -> bonus (0.071*15) ~ 1.07 -> ~91.07.
	m := Analyze("mc solaar", ds)
	if m.PeakAlbumScore < 91 || m.PeakAlbumScore > 92 {
		t.Fatalf("mc solaar album score = %.2f, want ~91.1", m.PeakAlbumScore)
	}

	// Jul: diamond on a 25-track album. 15/25 = 0.6 -> bonus -6 -> 84.
	jul := Analyze("jul", ds)
	if jul.PeakAlbumScore != 84 {
		t.Fatalf("jul album score = %.2f, want 84", jul.PeakAlbumScore)
	}
}

func TestClassicTracksNormalization(t *testing.T) {
	ds := dataset(t)

	// Booba: 28 classics against the benchmark of 30.
	m := Analyze("booba", ds)
	if m.ClassicTracksCount != 28 {
		t.Fatalf("booba classic count = %d, want 28", m.ClassicTracksCount)
	}
	want := 28.0 / 30 * 100
	if diff := m.ClassicTracksScore - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("booba classic score = %.2f, want %.2f", m.ClassicTracksScore, want)
	}
}

func TestTotalWeighted(t *testing.T) {
	m := Analyze("pnl", dataset(t))
	want := m.PeakAlbumScore*0.60 + m.ClassicTracksScore*0.40
	if diff := m.TotalScore - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("total %.2f does not match weighted sum %.2f", m.TotalScore, want)
	}
	if m.TotalScore < 0 || m.TotalScore > 100 {
		t.Fatalf("total %.2f out of range", m.TotalScore)
	}
}
