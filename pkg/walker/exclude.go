package walker

import (
	"strings"

	"github.com/dtnitsch/doclang/models"
)

// Rule reports whether a directory should be excluded. rel is the directory
// path relative to its locale root, slash-separated, without a leading slash.
type Rule func(rel string) bool

// DenySegments excludes directories whose first path segment equals one of
// segments exactly (case-sensitive).
func DenySegments(segments ...string) Rule {
	deny := make(map[string]struct{}, len(segments))
	for _, s := range segments {
		deny[s] = struct{}{}
	}
	return func(rel string) bool {
		first, _, _ := strings.Cut(rel, "/")
		_, ok := deny[first]
		return ok
	}
}

// ReservedPrefixes excludes directories whose relative path starts with one of
// prefixes. The directory itself is matched too, so "Archive" is caught by
// the "Archive/" prefix.
func ReservedPrefixes(prefixes ...string) Rule {
	return func(rel string) bool {
		withSlash := rel + "/"
		for _, p := range prefixes {
			if strings.HasPrefix(withSlash, p) {
				return true
			}
		}
		return false
	}
}

// ShouldExclude reports whether any rule matches rel.
func ShouldExclude(rel string, rules ...Rule) bool {
	for _, rule := range rules {
		if rule(rel) {
			return true
		}
	}
	return false
}

// RulesFor builds the exclusion rules selected by the config.
func RulesFor(cfg models.AuditConfig) []Rule {
	switch cfg.ExcludeMode {
	case models.ExcludeModeSegment:
		return []Rule{DenySegments(cfg.ExcludeSegments...)}
	case models.ExcludeModePrefix:
		return []Rule{ReservedPrefixes(cfg.ReservedPrefixes...)}
	default:
		return nil
	}
}
