// Package corpus reads per-document sidecar files from a documentation corpus.
package corpus

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/dtnitsch/doclang/models"
	"gopkg.in/yaml.v3"
)

// ReadContent returns the raw markup of a document folder.
func ReadContent(fsys fs.FS, folder, name string) (string, error) {
	data, err := fs.ReadFile(fsys, path.Join(folder, name))
	if err != nil {
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return string(data), nil
}

// LoadMetadata parses the front matter file of a document folder.
// Nested mappings are converted so the result always encodes as JSON.
func LoadMetadata(fsys fs.FS, folder, name string) (models.Metadata, error) {
	p := path.Join(folder, name)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse metadata %s: %w", p, err)
	}
	if raw == nil {
		return models.Metadata{}, nil
	}

	meta := make(models.Metadata, len(raw))
	for k, v := range raw {
		meta[k] = normalize(v)
	}
	return meta, nil
}

// normalize turns YAML mappings with non-string keys into string-keyed maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
