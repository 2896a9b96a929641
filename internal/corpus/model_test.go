package corpus

import (
	"math"
	"strings"
	"testing"
)

func repeatText(base string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = base
	}
	return strings.Join(parts, " ")
}

func testLyrics() map[string]string {
	street := repeatText("la rue le bitume la nuit le quartier les frères la hess", 40)
	ego := repeatText("le rap le flow le micro la scène le public le succès", 40)
	return map[string]string{
		"alpha": street,
		"beta":  street + " " + repeatText("un peu de rap aussi", 5),
		"gamma": ego,
	}
}

func TestCombineSongs(t *testing.T) {
	got := CombineSongs([]string{" premier ", "", "  ", "second"})
	if got != "premier\n\nsecond" {
		t.Fatalf("CombineSongs = %q", got)
	}
}

func TestBuildRequiresTwoArtists(t *testing.T) {
	_, err := Build(map[string]string{"solo": "seul au monde"})
	if err != ErrInsufficientCorpus {
		t.Fatalf("expected ErrInsufficientCorpus, got %v", err)
	}
}

func TestBuildSimilarityOrdering(t *testing.T) {
	m, err := Build(testLyrics())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ids := m.ArtistIDs()
	if len(ids) != 3 || ids[0] != "alpha" {
		t.Fatalf("unexpected ids %v", ids)
	}

	// alpha and beta share most of their text; gamma is the outlier.
	simAB := m.NearestNeighborSimilarity("alpha")
	vecA, _ := m.VectorFor("alpha")
	vecG, _ := m.VectorFor("gamma")
	simAG := Cosine(vecA, vecG)
	if simAB <= simAG {
		t.Fatalf("alpha's nearest neighbor %f should beat alpha-gamma %f", simAB, simAG)
	}

	for _, id := range ids {
		cs := m.CentroidSimilarity(id)
		if cs < 0 || cs > 1 {
			t.Fatalf("centroid similarity for %s out of range: %f", id, cs)
		}
	}
	if m.CentroidSimilarity("inconnu") != -1 {
		t.Fatal("unknown artist should report -1")
	}
}

func TestUsedByOther(t *testing.T) {
	m, err := Build(testLyrics())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !m.UsedByOther("gamma", "rue") {
		t.Fatal("rue is used by alpha and beta")
	}
	if !m.UsedByOther("alpha", "scène") {
		t.Fatal("gamma uses scène, so it counts as used by another artist")
	}
	if m.UsedByOther("gamma", "scène") {
		t.Fatal("scène is exclusive to gamma, no other artist uses it")
	}
}

func TestCosine(t *testing.T) {
	a := Vector{"x": 1, "y": 1}
	b := Vector{"x": 1, "y": 1}
	if got := Cosine(a, b); math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical vectors cosine = %f, want 1", got)
	}
	c := Vector{"z": 1}
	if got := Cosine(a, c); got != 0 {
		t.Fatalf("orthogonal vectors cosine = %f, want 0", got)
	}
	if got := Cosine(a, Vector{}); got != 0 {
		t.Fatalf("empty vector cosine = %f, want 0", got)
	}
}

func TestVectorize(t *testing.T) {
	docs := []string{
		"la rue la nuit le quartier",
		"la rue la nuit le quartier",
		"le soleil la plage les vacances",
	}
	vectors := Vectorize(docs, 100)
	if len(vectors) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(vectors))
	}
	same := Cosine(vectors[0], vectors[1])
	diff := Cosine(vectors[0], vectors[2])
	if same <= diff {
		t.Fatalf("identical chunks %f should beat different chunks %f", same, diff)
	}
}
