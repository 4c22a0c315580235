// Package isocode maps ISO 639 language codes and resolves display names.
package isocode

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ToAlpha2 converts a 3-letter ISO 639 code to its 2-letter equivalent.
// ok is false when no 2-letter code exists.
func ToAlpha2(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	base, err := language.ParseBase(code)
	if err != nil {
		return "", false
	}
	short := base.String()
	if len(short) != 2 {
		return "", false
	}
	return short, true
}

// Normalize returns the 2-letter form of code when one exists, otherwise the
// lowercased code unchanged.
func Normalize(code string) string {
	if short, ok := ToAlpha2(code); ok {
		return short
	}
	return strings.ToLower(strings.TrimSpace(code))
}

// Names is a read-only table from 2-letter language code to English name.
type Names map[string]string

// NewNames builds the table once for the given codes. Codes without a known
// English name are left out so lookups fall back to the code.
func NewNames(codes ...string) Names {
	namer := display.English.Languages()
	names := make(Names, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, seen := names[code]; seen {
			continue
		}
		base, err := language.ParseBase(code)
		if err != nil {
			continue
		}
		if name := namer.Name(base); name != "" {
			names[code] = name
		}
	}
	return names
}

// Name returns the display name for code, or code itself when unknown.
func (n Names) Name(code string) string {
	if name, ok := n[code]; ok {
		return name
	}
	return code
}
