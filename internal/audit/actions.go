package audit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/doclang/models"
	"github.com/dtnitsch/doclang/pkg/detector"
	"github.com/dtnitsch/doclang/pkg/isocode"
	"github.com/dtnitsch/doclang/pkg/report"
	"github.com/dtnitsch/doclang/pkg/storage"
	"github.com/dtnitsch/doclang/pkg/walker"
	"github.com/urfave/cli/v2"
)

// ErrConfig marks errors found before any document is processed.
var ErrConfig = errors.New("invalid configuration")

// Options describe one audit run.
type Options struct {
	Root    string   // corpus root directory
	Dest    string   // destination for <locale>.json files
	Locales []string // optional locale folder allow list
	Config  models.AuditConfig
}

// AuditAction is the CLI entry point:
//
//	doclang [flags] CONTENTDIR DESTINATIONDIR [LOCALE...]
func AuditAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit("Error: CONTENTDIR and DESTINATIONDIR are required\n\nUsage:\n  doclang [flags] CONTENTDIR DESTINATIONDIR [LOCALE...]", 1)
	}

	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	} else if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := configFromFlags(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	args := c.Args().Slice()
	opts := Options{
		Root:    args[0],
		Dest:    args[1],
		Locales: lowerAll(args[2:]),
		Config:  cfg,
	}

	logger.Info("Loading language models", "low_accuracy", cfg.LowAccuracy)
	ranker := detector.NewLinguaRanker(cfg.LowAccuracy)

	if err := Run(logger, opts, ranker, c.App.Writer); err != nil {
		if errors.Is(err, ErrConfig) {
			return cli.Exit(err.Error(), 2)
		}
		return err
	}
	return nil
}

// Run audits the corpus and writes the summary to out. Suspect files are
// written only after every locale has been classified.
func Run(logger *slog.Logger, opts Options, ranker detector.Ranker, out io.Writer) error {
	startTime := time.Now()
	store := &storage.Storage{}

	if err := store.RequireDir(opts.Root); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	dest, err := store.EnsureDir(opts.Dest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	fsys := os.DirFS(opts.Root)
	auditor, err := NewAuditor(logger, opts.Config, fsys, ranker)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	locales, err := walker.LocaleRoots(fsys, opts.Locales, opts.Config.SkipLocales)
	if err != nil {
		return err
	}
	logger.Info("Starting audit", "root", opts.Root, "destination", dest, "locales", len(locales), "workers", opts.Config.WorkerCount)

	stats, suspects, err := auditor.Run(locales)
	if err != nil {
		return err
	}

	codes := detector.SupportedCodes()
	for _, s := range stats {
		codes = append(codes, s.Expected)
	}
	reporter := report.New(out, isocode.NewNames(codes...), opts.Config.Table)
	reporter.Summary(stats)

	records, err := auditor.SuspectRecords(suspects)
	if err != nil {
		return err
	}
	if _, err := reporter.WriteSuspects(store, dest, records); err != nil {
		return err
	}

	fmt.Fprintf(out, "Took %.1fs\n", time.Since(startTime).Seconds())
	return nil
}

// configFromFlags loads the optional config file and applies flags on top.
func configFromFlags(c *cli.Context) (models.AuditConfig, error) {
	cfg, err := models.LoadAuditConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("exclude-mode") {
		cfg.ExcludeMode = c.String("exclude-mode")
	}
	if c.IsSet("exclude") {
		cfg.ExcludeSegments = c.StringSlice("exclude")
	}
	if c.Bool("include-archive") {
		cfg.ExcludeMode = models.ExcludeModeNone
	}
	if c.IsSet("extra-noise") {
		cfg.ExtraNoise = append(cfg.ExtraNoise, c.StringSlice("extra-noise")...)
	}
	if c.IsSet("skip-locale") {
		cfg.SkipLocales = append(cfg.SkipLocales, c.StringSlice("skip-locale")...)
	}
	if c.IsSet("min-length") {
		cfg.MinTextLength = c.Int("min-length")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("low-accuracy") {
		cfg.LowAccuracy = c.Bool("low-accuracy")
	}
	if c.IsSet("table") {
		cfg.Table = c.Bool("table")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
