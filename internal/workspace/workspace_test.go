package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureAt(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ws")

	got, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("EnsureAt failed: %v", err)
	}
	if got != base {
		t.Fatalf("returned base %q, want %q", got, base)
	}

	for _, dir := range []string{"corpus", "exports"} {
		info, err := os.Stat(filepath.Join(base, dir))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}

	settings, err := LoadSettings(base)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.Workers != 0 {
		t.Fatalf("default workers = %d, want 0", settings.Workers)
	}
}

func TestEnsureAtKeepsExistingSettings(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ws")
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("EnsureAt failed: %v", err)
	}

	custom := []byte(`{"facts_path":"facts.yaml","workers":4}`)
	if err := os.WriteFile(filepath.Join(base, "settings.json"), custom, 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("second EnsureAt failed: %v", err)
	}
	settings, err := LoadSettings(base)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.FactsPath != "facts.yaml" || settings.Workers != 4 {
		t.Fatalf("settings overwritten: %+v", settings)
	}
}
