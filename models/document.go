package models

import "strings"

// Metadata is a document's front matter, kept opaque and serialized verbatim.
type Metadata map[string]any

// Document is one candidate folder found by the walker.
type Document struct {
	Locale   string // locale folder name, e.g. "pt-br"
	Expected string // language implied by Locale, e.g. "pt"
	Folder   string // slash-separated path inside the corpus
}

// ExpectedLanguage derives the expected language code from a locale folder
// name by taking the segment before the first hyphen.
func ExpectedLanguage(locale string) string {
	code, _, _ := strings.Cut(strings.ToLower(locale), "-")
	return code
}
