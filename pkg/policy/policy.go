// Package policy decides whether a document's detected language matches its
// locale.
package policy

import "github.com/dtnitsch/doclang/models"

// DefaultMaybeThreshold is the score the expected language must exceed, when
// it is not ranked first, for the document to count as Maybe.
const DefaultMaybeThreshold = 0.99

// Decide classifies one document. ranked must be non-empty, sorted best
// first and already normalized. The expected language's score has to be
// strictly greater than threshold to qualify as Maybe.
func Decide(expected string, ranked []models.Guess, threshold float64) models.Outcome {
	top := ranked[0]
	out := models.Outcome{
		Expected:    expected,
		Guessed:     top.Language,
		Probability: top.Probability,
	}
	if top.Language == expected {
		out.Verdict = models.VerdictRight
		return out
	}

	for _, g := range ranked {
		if g.Language == expected {
			out.ExpectedProbability = g.Probability
			out.ExpectedFound = true
			break
		}
	}
	if out.ExpectedFound && out.ExpectedProbability > threshold {
		out.Verdict = models.VerdictMaybe
		return out
	}

	out.Verdict = models.VerdictWrong
	out.WasEnglish = top.Language == "en" && expected != "en"
	return out
}
