// Package detector wraps statistical language identification and normalizes
// its output to the codes used by locale folders.
package detector

import (
	"strings"

	"github.com/dtnitsch/doclang/models"
	"github.com/dtnitsch/doclang/pkg/isocode"
	"github.com/pemistahl/lingua-go"
)

// Ranker returns every candidate language for text, best first, as raw
// ISO 639-3 codes.
type Ranker interface {
	Rank(text string) []models.Guess
}

// LinguaRanker ranks languages with a lingua-go detector.
type LinguaRanker struct {
	detector lingua.LanguageDetector
}

// NewLinguaRanker builds a detector for every language lingua supports.
// Building is expensive; reuse the ranker for the whole run.
func NewLinguaRanker(lowAccuracy bool) *LinguaRanker {
	builder := lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	if lowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}
	return &LinguaRanker{detector: builder.Build()}
}

// NewLinguaRankerFor builds a detector restricted to languages.
func NewLinguaRankerFor(languages ...lingua.Language) *LinguaRanker {
	return &LinguaRanker{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build(),
	}
}

func (r *LinguaRanker) Rank(text string) []models.Guess {
	values := r.detector.ComputeLanguageConfidenceValues(text)
	guesses := make([]models.Guess, 0, len(values))
	for _, v := range values {
		guesses = append(guesses, models.Guess{
			Language:    strings.ToLower(v.Language().IsoCode639_3().String()),
			Probability: v.Value(),
		})
	}
	return guesses
}

// SupportedCodes lists the 2-letter codes of every language lingua knows.
func SupportedCodes() []string {
	all := lingua.AllLanguages()
	codes := make([]string, 0, len(all))
	for _, l := range all {
		codes = append(codes, strings.ToLower(l.IsoCode639_1().String()))
	}
	return codes
}

// Classifier normalizes a Ranker's output.
type Classifier struct {
	ranker Ranker
}

func NewClassifier(r Ranker) *Classifier {
	return &Classifier{ranker: r}
}

// Classify returns the ranked guesses for text with codes converted to
// 2-letter form where a mapping exists. Scots at the top is reported as
// English. A nil result means the detector had no candidates.
func (c *Classifier) Classify(text string) []models.Guess {
	raw := c.ranker.Rank(text)
	if len(raw) == 0 || raw[0].Probability <= 0 {
		return nil
	}

	guesses := make([]models.Guess, len(raw))
	for i, g := range raw {
		guesses[i] = models.Guess{
			Language:    isocode.Normalize(g.Language),
			Probability: g.Probability,
		}
	}
	if guesses[0].Language == "sco" {
		guesses[0].Language = "en"
	}
	return guesses
}
