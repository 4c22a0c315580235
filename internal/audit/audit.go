package audit

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/dtnitsch/doclang/models"
	"github.com/dtnitsch/doclang/pkg/corpus"
	"github.com/dtnitsch/doclang/pkg/detector"
	"github.com/dtnitsch/doclang/pkg/parser"
	"github.com/dtnitsch/doclang/pkg/policy"
	"github.com/dtnitsch/doclang/pkg/walker"
)

// Auditor runs the classification pipeline over one corpus.
type Auditor struct {
	logger     *slog.Logger
	cfg        models.AuditConfig
	fsys       fs.FS
	parser     *parser.Parser
	classifier *detector.Classifier
	rules      []walker.Rule
}

// NewAuditor wires the pipeline for a corpus rooted at fsys.
func NewAuditor(logger *slog.Logger, cfg models.AuditConfig, fsys fs.FS, ranker detector.Ranker) (*Auditor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := parser.NewParser(cfg.ExtraNoise...)
	if err != nil {
		return nil, err
	}
	return &Auditor{
		logger:     logger,
		cfg:        cfg,
		fsys:       fsys,
		parser:     p,
		classifier: detector.NewClassifier(ranker),
		rules:      walker.RulesFor(cfg),
	}, nil
}

// Run audits each locale folder in order. One locale is finished before the
// next one starts.
func (a *Auditor) Run(locales []string) ([]models.LocaleStats, []models.Suspect, error) {
	stats := make([]models.LocaleStats, 0, len(locales))
	var suspects []models.Suspect
	for _, locale := range locales {
		s, sus, err := a.auditLocale(locale)
		if err != nil {
			return nil, nil, err
		}
		stats = append(stats, s)
		suspects = append(suspects, sus...)
	}
	return stats, suspects, nil
}

func (a *Auditor) auditLocale(locale string) (models.LocaleStats, []models.Suspect, error) {
	start := time.Now()
	stats := models.LocaleStats{Locale: locale, Expected: models.ExpectedLanguage(locale)}
	a.logger.Info("Auditing locale", "locale", locale, "expected", stats.Expected)

	docs, err := a.candidates(locale, stats.Expected)
	if err != nil {
		return stats, nil, err
	}

	results, err := a.classifyAll(docs)
	if err != nil {
		return stats, nil, err
	}

	var suspects []models.Suspect
	for i, r := range results {
		if !r.Classified {
			stats.Skipped++
			continue
		}
		stats.Add(r.Outcome)
		if r.Outcome.Verdict == models.VerdictWrong {
			suspects = append(suspects, models.Suspect{
				Document:    docs[i],
				Guessed:     r.Outcome.Guessed,
				Probability: r.Outcome.Probability,
			})
		}
	}

	stats.Took = time.Since(start)
	a.logger.Info("Locale audited",
		"locale", locale,
		"candidates", len(docs),
		"right", stats.Right,
		"wrong", stats.Wrong,
		"maybe", stats.Maybe,
		"skipped", stats.Skipped,
		"was_english", stats.WasEnglish,
		"took", stats.Took.Round(time.Millisecond).String(),
	)
	return stats, suspects, nil
}

// candidates lists the document folders of one locale in traversal order.
func (a *Auditor) candidates(locale, expected string) ([]models.Document, error) {
	var docs []models.Document
	err := walker.Walk(a.fsys, locale, a.rules, func(dir string, files []string) error {
		if walker.IsCandidate(files, a.cfg.ContentFile, a.cfg.MetadataFile) {
			docs = append(docs, models.Document{Locale: locale, Expected: expected, Folder: dir})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// classify runs one document through extraction, detection and the policy.
// classified is false when the document is too short or has no candidates.
func (a *Auditor) classify(doc models.Document) (outcome models.Outcome, classified bool, err error) {
	html, err := corpus.ReadContent(a.fsys, doc.Folder, a.cfg.ContentFile)
	if err != nil {
		return outcome, false, err
	}
	text, err := a.parser.PlainText(html)
	if err != nil {
		return outcome, false, fmt.Errorf("%s: %w", doc.Folder, err)
	}
	if !parser.LongEnough(text, a.cfg.MinTextLength) {
		a.logger.Debug("Skipping short document", "folder", doc.Folder, "length", len([]rune(text)))
		return outcome, false, nil
	}

	ranked := a.classifier.Classify(text)
	if len(ranked) == 0 {
		a.logger.Debug("No language candidates", "folder", doc.Folder)
		return outcome, false, nil
	}
	return policy.Decide(doc.Expected, ranked, a.cfg.MaybeThreshold), true, nil
}

// SuspectRecords loads the metadata of every suspect and groups the records
// by locale folder.
func (a *Auditor) SuspectRecords(suspects []models.Suspect) (map[string][]models.SuspectRecord, error) {
	records := make(map[string][]models.SuspectRecord)
	for _, s := range suspects {
		meta, err := corpus.LoadMetadata(a.fsys, s.Folder, a.cfg.MetadataFile)
		if err != nil {
			return nil, err
		}
		if s.Probability < 1 {
			a.logger.Debug("Low confidence suspect", "folder", s.Folder, "probably", s.Guessed, "probability", s.Probability, "metadata", meta)
		}
		records[s.Locale] = append(records[s.Locale], models.SuspectRecord{
			Metadata:    meta,
			Probably:    s.Guessed,
			Probability: s.Probability,
		})
	}
	return records, nil
}
