// Package facts is the curated metadata layer: debut years, album and
// feature counts, certifications, label independence and peak-album data,
// loaded as a dataset rather than compiled into the scoring logic. Any
// artist missing from the dataset receives the documented defaults.
package facts

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"rapmetrics/internal/textnorm"
)

//go:embed dataset.yaml
var defaultDataset []byte

// PeakAlbum describes an artist's best-certified album. CertTier uses the
// original encoding: diamond=5, platinum=3, gold=1.
type PeakAlbum struct {
	Name     string `mapstructure:"name"`
	CertTier int    `mapstructure:"cert_tier"`
	Tracks   int    `mapstructure:"tracks"`
}

// Artist is one row of the curated facts table.
type Artist struct {
	DebutYear            int        `mapstructure:"debut_year"`
	Albums               int        `mapstructure:"albums"`
	Features             int        `mapstructure:"features"`
	Certifications       int        `mapstructure:"certifications"`
	Independent          *bool      `mapstructure:"independent"`
	LegendaryIndependent bool       `mapstructure:"legendary_independent"`
	SignedWithControl    bool       `mapstructure:"signed_with_control"`
	PeakAlbum            *PeakAlbum `mapstructure:"peak_album"`
	ClassicTracks        *int       `mapstructure:"classic_tracks"`
	ExternalPresenceRaw  *float64   `mapstructure:"external_presence_raw"`
	AwardsRaw            *float64   `mapstructure:"awards_raw"`
	Aliases              []string   `mapstructure:"aliases"`
}

// Pioneer records who created a style and when it became mainstream.
type Pioneer struct {
	Style          string `mapstructure:"style"`
	Artist         string `mapstructure:"artist"`
	MainstreamYear int    `mapstructure:"mainstream_year"`
}

// Dataset is the full loadable facts table.
type Dataset struct {
	// ReferenceYear anchors career-length math so a rescoring run is
	// reproducible.
	ReferenceYear int
	Artists       map[string]Artist
	Pioneers      []Pioneer
	// TrendingTerms maps a year to the terms that trended in it.
	TrendingTerms map[int][]string
}

type rawDataset struct {
	ReferenceYear int                 `mapstructure:"reference_year"`
	Artists       map[string]Artist   `mapstructure:"artists"`
	Pioneers      []Pioneer           `mapstructure:"pioneers"`
	TrendingTerms map[string][]string `mapstructure:"trending_terms"`
}

// Default loads the embedded dataset.
func Default() (*Dataset, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultDataset)); err != nil {
		return nil, fmt.Errorf("read embedded dataset: %w", err)
	}
	return fromViper(v)
}

// Load reads a dataset from a JSON/YAML/TOML file.
func Load(path string) (*Dataset, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read facts dataset: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Dataset, error) {
	var raw rawDataset
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode facts dataset: %w", err)
	}

	ds := &Dataset{
		ReferenceYear: raw.ReferenceYear,
		Artists:       make(map[string]Artist, len(raw.Artists)),
		Pioneers:      raw.Pioneers,
		TrendingTerms: make(map[int][]string, len(raw.TrendingTerms)),
	}
	if ds.ReferenceYear == 0 {
		ds.ReferenceYear = 2024
	}
	for id, a := range raw.Artists {
		ds.Artists[textnorm.NormalizeArtistID(id)] = a
	}
	for yearStr, terms := range raw.TrendingTerms {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("trending_terms: bad year %q", yearStr)
		}
		ds.TrendingTerms[year] = terms
	}
	return ds, nil
}

// Artist returns the facts row for a (possibly un-normalized) artist id.
func (d *Dataset) Artist(id string) (Artist, bool) {
	a, ok := d.Artists[textnorm.NormalizeArtistID(id)]
	return a, ok
}

// PioneerFor returns the style entry this artist pioneered, if any.
func (d *Dataset) PioneerFor(id string) (Pioneer, bool) {
	key := textnorm.NormalizeArtistID(id)
	for _, p := range d.Pioneers {
		if textnorm.NormalizeArtistID(p.Artist) == key {
			return p, true
		}
	}
	return Pioneer{}, false
}

// AliasesFor returns the search terms for citation lookups: the
// normalized id plus any known aliases.
func (d *Dataset) AliasesFor(id string) []string {
	key := textnorm.NormalizeArtistID(id)
	terms := []string{key}
	if a, ok := d.Artists[key]; ok {
		terms = append(terms, a.Aliases...)
	}
	return terms
}
