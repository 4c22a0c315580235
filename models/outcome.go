package models

import "time"

// Verdict is the classification decision for a single document.
type Verdict int

const (
	VerdictRight Verdict = iota
	VerdictMaybe         // expected language confidently present but not top-ranked
	VerdictWrong
)

func (v Verdict) String() string {
	switch v {
	case VerdictRight:
		return "right"
	case VerdictMaybe:
		return "maybe"
	case VerdictWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Guess is one ranked entry of a classification result.
type Guess struct {
	Language    string
	Probability float64
}

// Outcome is the policy decision for one document.
type Outcome struct {
	Verdict     Verdict
	Expected    string
	Guessed     string  // top-ranked language
	Probability float64 // confidence of Guessed

	// ExpectedProbability is the expected language's own score, valid only
	// when ExpectedFound is set.
	ExpectedProbability float64
	ExpectedFound       bool

	// WasEnglish marks a Wrong outcome that guessed English for a
	// non-English locale.
	WasEnglish bool
}

// Tally holds running counters. Counters only ever increase during a run.
type Tally struct {
	Right      int
	Wrong      int
	Maybe      int
	WasEnglish int
}

// Add counts one outcome.
func (t *Tally) Add(o Outcome) {
	switch o.Verdict {
	case VerdictRight:
		t.Right++
	case VerdictMaybe:
		t.Maybe++
	case VerdictWrong:
		t.Wrong++
		if o.WasEnglish {
			t.WasEnglish++
		}
	}
}

// Merge adds another tally's counters to t.
func (t *Tally) Merge(other Tally) {
	t.Right += other.Right
	t.Wrong += other.Wrong
	t.Maybe += other.Maybe
	t.WasEnglish += other.WasEnglish
}

// Classified is the number of documents that received a verdict.
func (t Tally) Classified() int {
	return t.Right + t.Wrong + t.Maybe
}

// LocaleStats is the report row for one locale folder.
type LocaleStats struct {
	Locale   string
	Expected string
	Tally
	Skipped int // candidates excluded by the length guard or without guesses
	Took    time.Duration
}

// Suspect is a Wrong document waiting for its metadata to be loaded.
type Suspect struct {
	Document
	Guessed     string
	Probability float64
}

// SuspectRecord is one entry of a <locale>.json report file.
type SuspectRecord struct {
	Metadata    Metadata `json:"metadata"`
	Probably    string   `json:"probably"`
	Probability float64  `json:"probability"`
}
