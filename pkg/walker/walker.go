// Package walker enumerates locale roots in a documentation corpus and the
// candidate document folders below them.
package walker

import (
	"fmt"
	"io/fs"
	"strings"
)

// VisitFunc is called once per directory with the names of the non-directory
// entries it directly contains. Returning an error aborts the walk.
type VisitFunc func(dir string, files []string) error

// LocaleRoots returns the immediate subdirectories of the corpus root, sorted
// by name. A non-empty allow list keeps only matching names (case-insensitive);
// names on the skip list are dropped.
func LocaleRoots(fsys fs.FS, allow, skip []string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus root: %w", err)
	}

	allowed := lowerSet(allow)
	skipped := lowerSet(skip)

	var roots []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if len(allowed) > 0 {
			if _, ok := allowed[name]; !ok {
				continue
			}
		}
		if _, ok := skipped[name]; ok {
			continue
		}
		roots = append(roots, e.Name())
	}
	return roots, nil
}

// Walk visits every directory below localeRoot depth-first, in lexical order.
// The locale root itself is not visited. Directories matched by a rule are
// neither visited nor descended into.
func Walk(fsys fs.FS, localeRoot string, rules []Rule, visit VisitFunc) error {
	return fs.WalkDir(fsys, localeRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", p, err)
		}
		if !d.IsDir() || p == localeRoot {
			return nil
		}

		rel := strings.TrimPrefix(p, localeRoot+"/")
		if ShouldExclude(rel, rules...) {
			return fs.SkipDir
		}

		entries, err := fs.ReadDir(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		files := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
		return visit(p, files)
	})
}

// IsCandidate reports whether a directory holds both the content file and the
// metadata file.
func IsCandidate(files []string, contentFile, metadataFile string) bool {
	var hasContent, hasMetadata bool
	for _, f := range files {
		switch f {
		case contentFile:
			hasContent = true
		case metadataFile:
			hasMetadata = true
		}
	}
	return hasContent && hasMetadata
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
