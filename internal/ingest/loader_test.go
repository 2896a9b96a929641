package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDir(t *testing.T) {
	root := t.TempDir()

	boobaDir := filepath.Join(root, "Booba")
	if err := os.MkdirAll(boobaDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(boobaDir, "pitbull.txt"), "Texte du premier morceau")
	writeFile(t, filepath.Join(boobaDir, "dkr.txt"), "Texte du second morceau")
	writeFile(t, filepath.Join(boobaDir, "cover.jpg"), "binary junk")
	writeFile(t, filepath.Join(boobaDir, "vide.txt"), "   \n  ")

	writeFile(t, filepath.Join(root, "MC Solaar.txt"), "Morceau unique en vrac")
	writeFile(t, filepath.Join(root, ".hidden.txt"), "ignored")

	artists, err := LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(artists))
	}

	if artists[0].ID != "booba" || artists[0].Name != "Booba" {
		t.Fatalf("unexpected first artist: %+v", artists[0])
	}
	if len(artists[0].Songs) != 2 {
		t.Fatalf("expected 2 songs for booba, got %d", len(artists[0].Songs))
	}

	if artists[1].ID != "mc solaar" {
		t.Fatalf("unexpected second artist id %q", artists[1].ID)
	}
	if len(artists[1].Songs) != 1 || artists[1].Songs[0].Lyrics != "Morceau unique en vrac" {
		t.Fatalf("unexpected songs for top-level file: %+v", artists[1].Songs)
	}
}

func TestLoadDirEmptyArtistDropped(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "fantome"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	artists, err := LoadDir(root)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(artists) != 0 {
		t.Fatalf("expected no artists, got %v", artists)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
