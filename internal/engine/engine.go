// Package engine orchestrates a batch scoring run: it builds the
// corpus model once, then fans per-artist analysis out to a worker
// pool and collects one score set per artist.
package engine

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"rapmetrics/internal/corpus"
	"rapmetrics/internal/facts"
	"rapmetrics/internal/flow"
	"rapmetrics/internal/hook"
	"rapmetrics/internal/influence"
	"rapmetrics/internal/innovation"
	"rapmetrics/internal/integrity"
	"rapmetrics/internal/peak"
	"rapmetrics/internal/punchline"
	"rapmetrics/internal/score"
	"rapmetrics/internal/textnorm"
	"rapmetrics/internal/thematic"
	"rapmetrics/internal/vocabulary"
)

// Metric names used as keys in ArtistScores and in persistence.
const (
	MetricFlow       = "flow"
	MetricPunchline  = "punchline"
	MetricHook       = "hook"
	MetricVocabulary = "vocabulary"
	MetricThematic   = "thematic"
	MetricInnovation = "innovation"
	MetricIntegrity  = "integrity"
	MetricInfluence  = "influence"
	MetricPeak       = "peak"
)

// Metrics lists all metric names in reporting order.
var Metrics = []string{
	MetricFlow, MetricPunchline, MetricHook, MetricVocabulary,
	MetricThematic, MetricInnovation, MetricIntegrity,
	MetricInfluence, MetricPeak,
}

type Logger interface {
	Log(level, stage, message, detail string)
}

// ArtistScores is the result of scoring one artist: one record per
// metric. Every metric lands in [0,100] except vocabulary, whose
// FinalScore is the adjusted unique-lemma count.
type ArtistScores struct {
	ArtistID string
	Scores   map[string]score.Record
}

// Engine runs the scoring pipeline. Construct it once per batch; the
// zero value is not usable.
type Engine struct {
	tk      textnorm.Toolkit
	ds      *facts.Dataset
	logger  Logger
	workers int
}

// New builds an engine. A nil dataset degrades fact-based components
// to their documented defaults; workers <= 0 uses one per CPU.
func New(tk textnorm.Toolkit, ds *facts.Dataset, logger Logger, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	return &Engine{tk: tk, ds: ds, logger: logger, workers: workers}
}

func (e *Engine) log(level, stage, message, detail string) {
	if e.logger != nil {
		e.logger.Log(level, stage, message, detail)
	}
}

// ScoreAll scores every artist in the corpus. The corpus model is
// built exactly once and shared read-only across workers; if it cannot
// be built (fewer than two artists), corpus-relative components fall
// back to their neutral defaults instead of aborting the run.
func (e *Engine) ScoreAll(allLyrics map[string]string) map[string]ArtistScores {
	if len(allLyrics) == 0 {
		return nil
	}

	model, err := corpus.Build(allLyrics)
	if err != nil {
		e.log("WARN", "CORPUS", "corpus model unavailable, using neutral defaults", err.Error())
		model = nil
	} else {
		e.log("INFO", "CORPUS", "corpus model built",
			fmt.Sprintf("artists=%d vocab=%d", len(model.ArtistIDs()), len(model.Vocab())))
	}

	ids := make([]string, 0, len(allLyrics))
	for id := range allLyrics {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	jobs := make(chan string)
	results := make(chan ArtistScores, len(ids))
	var wg sync.WaitGroup

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				results <- e.ScoreArtist(id, allLyrics[id], model, allLyrics)
			}
		}()
	}

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make(map[string]ArtistScores, len(ids))
	for res := range results {
		out[res.ArtistID] = res
	}
	return out
}

// ScoreArtist runs every analyzer for one artist. model and allLyrics
// may be nil; the corpus-relative components then return defaults.
func (e *Engine) ScoreArtist(artistID, lyrics string, model *corpus.Model, allLyrics map[string]string) ArtistScores {
	e.log("INFO", "SCORE", "scoring artist", artistID)

	vocab := vocabulary.Analyze(e.tk, lyrics)
	vocabRecord := score.Record{
		FinalScore: vocab.UniqueWords,
		Subscores: map[string]float64{
			"ttr":                vocab.TTR,
			"mtld":               vocab.MTLD,
			"vocabulary_density": vocab.VocabularyDensity,
		},
		Extras: map[string]any{
			"total_words":   vocab.TotalWords,
			"unique_lemmas": vocab.UniqueLemmas,
		},
	}

	scores := map[string]score.Record{
		MetricFlow:       flow.Analyze(lyrics).Record(),
		MetricPunchline:  punchline.Analyze(lyrics).Record(),
		MetricHook:       hook.Analyze(lyrics).Record(),
		MetricVocabulary: vocabRecord,
		MetricThematic:   thematic.Analyze(lyrics).Record(),
		MetricInnovation: innovation.Analyze(artistID, lyrics, model, e.ds).Record(),
		MetricIntegrity:  integrity.Analyze(e.tk, artistID, lyrics, e.ds).Record(),
		MetricInfluence:  influence.Analyze(artistID, allLyrics, e.ds).Record(),
		MetricPeak:       peak.Analyze(artistID, e.ds).Record(),
	}

	return ArtistScores{ArtistID: artistID, Scores: scores}
}
