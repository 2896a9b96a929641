// Package workspace manages the on-disk data directory: the sqlite
// database, export output, and persisted settings live under one base
// directory so repeated runs share state.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = ".rapmetrics"

type Settings struct {
	FactsPath string `json:"facts_path"`
	Workers   int    `json:"workers"`
}

// EnsureDefault creates the workspace under the user's home directory.
func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout at base and seeds default
// settings on first use.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "corpus"),
		filepath.Join(base, "exports"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := filepath.Join(base, "settings.json")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaults := Settings{Workers: 0}
		raw, marshalErr := json.MarshalIndent(defaults, "", "  ")
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

// DBPath returns the database location inside a workspace.
func DBPath(base string) string {
	return filepath.Join(base, "rapmetrics.db")
}

// LoadSettings reads the persisted settings from a workspace.
func LoadSettings(base string) (Settings, error) {
	raw, err := os.ReadFile(filepath.Join(base, "settings.json"))
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}
