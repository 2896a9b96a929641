package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rapmetrics/internal/textnorm"
)

// Song is one parsed lyric file belonging to an artist.
type Song struct {
	Title  string
	Lyrics string
	Source string
}

// Artist groups the songs loaded for one performer. ID is the
// normalized lookup key; Name keeps the directory's original casing.
type Artist struct {
	ID    string
	Name  string
	Songs []Song
}

// LoadDir reads a corpus directory laid out one subdirectory per
// artist, each containing that artist's lyric files. A file placed at
// the top level becomes a single-song artist named after the file.
// Unsupported file types are skipped; an artist directory whose files
// all fail to parse is dropped.
func LoadDir(root string) ([]Artist, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	var artists []Artist
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if entry.IsDir() {
			a, err := loadArtistDir(root, entry.Name())
			if err != nil {
				return nil, err
			}
			if len(a.Songs) > 0 {
				artists = append(artists, a)
			}
			continue
		}
		if !supported(entry.Name()) {
			continue
		}
		parsed, err := ParseFile(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		artists = append(artists, Artist{
			ID:   textnorm.NormalizeArtistID(parsed.Title),
			Name: parsed.Title,
			Songs: []Song{{
				Title:  parsed.Title,
				Lyrics: parsed.Text,
				Source: parsed.SourcePath,
			}},
		})
	}

	sort.Slice(artists, func(i, j int) bool { return artists[i].ID < artists[j].ID })
	return artists, nil
}

func loadArtistDir(root, name string) (Artist, error) {
	dir := filepath.Join(root, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Artist{}, fmt.Errorf("read artist dir %s: %w", name, err)
	}

	a := Artist{ID: textnorm.NormalizeArtistID(name), Name: name}
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		parsed, err := ParseFile(path)
		if err != nil {
			continue
		}
		if strings.TrimSpace(parsed.Text) == "" {
			continue
		}
		a.Songs = append(a.Songs, Song{
			Title:  parsed.Title,
			Lyrics: parsed.Text,
			Source: path,
		})
	}
	return a, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".docx", ".pdf":
		return true
	}
	return false
}
