// Package models defines data structures for configuration, documents and
// classification outcomes.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Exclusion modes for the corpus walker.
const (
	ExcludeModeSegment = "segment" // first path segment on a denylist
	ExcludeModePrefix  = "prefix"  // reserved namespace prefixes
	ExcludeModeNone    = "none"
)

// AuditConfig holds runtime configuration for an audit run.
// Values start from DefaultAuditConfig, are overlaid by an optional YAML file
// and finally by CLI flags.
type AuditConfig struct {
	ContentFile      string   `yaml:"content_file"`
	MetadataFile     string   `yaml:"metadata_file"`
	MinTextLength    int      `yaml:"min_text_length"`
	MaybeThreshold   float64  `yaml:"maybe_threshold"`
	ExcludeMode      string   `yaml:"exclude_mode"`
	ExcludeSegments  []string `yaml:"exclude_segments"`
	ReservedPrefixes []string `yaml:"reserved_prefixes"`
	ExtraNoise       []string `yaml:"extra_noise"`
	SkipLocales      []string `yaml:"skip_locales"`
	WorkerCount      int      `yaml:"workers"`
	LowAccuracy      bool     `yaml:"low_accuracy"`
	Table            bool     `yaml:"table"`
}

// DefaultAuditConfig returns the configuration used when nothing overrides it.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		ContentFile:     "index.html",
		MetadataFile:    "index.yaml",
		MinTextLength:   250,
		MaybeThreshold:  0.99,
		ExcludeMode:     ExcludeModeSegment,
		ExcludeSegments: []string{"archive", "mozilla", "mdn"},
		ReservedPrefixes: []string{
			"Archive/",
			"User:",
			"Talk:",
			"User_talk:",
			"Template_talk:",
			"Project_talk:",
			"Experiment:",
		},
		WorkerCount: 1,
	}
}

// LoadAuditConfig reads a YAML config file on top of the defaults.
// Keys missing from the file keep their default values.
func LoadAuditConfig(path string) (AuditConfig, error) {
	cfg := DefaultAuditConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot drive a run.
func (c AuditConfig) Validate() error {
	if c.ContentFile == "" || c.MetadataFile == "" {
		return fmt.Errorf("content_file and metadata_file must be set")
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("min_text_length must not be negative, got %d", c.MinTextLength)
	}
	if c.MaybeThreshold < 0 || c.MaybeThreshold > 1 {
		return fmt.Errorf("maybe_threshold must be within [0,1], got %g", c.MaybeThreshold)
	}
	switch c.ExcludeMode {
	case ExcludeModeSegment, ExcludeModePrefix, ExcludeModeNone:
	default:
		return fmt.Errorf("unknown exclude_mode %q", c.ExcludeMode)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.WorkerCount)
	}
	return nil
}
