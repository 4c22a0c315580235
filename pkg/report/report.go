// Package report prints locale accuracy summaries and writes the per-locale
// suspect files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/dtnitsch/doclang/models"
	"github.com/dtnitsch/doclang/pkg/isocode"
	"github.com/dtnitsch/doclang/pkg/mapreduce"
	"github.com/dtnitsch/doclang/pkg/storage"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Reporter renders the console summary.
type Reporter struct {
	out   io.Writer
	names isocode.Names
	table bool
}

// New returns a Reporter writing to out. names is treated as read-only.
// With asTable set, the worst-offenders section is rendered as a table.
func New(out io.Writer, names isocode.Names, asTable bool) *Reporter {
	return &Reporter{out: out, names: names, table: asTable}
}

// Summary prints the per-locale lines in traversal order, the same rows
// ordered by wrong count and the totals block.
func (r *Reporter) Summary(stats []models.LocaleStats) {
	for _, s := range stats {
		fmt.Fprintln(r.out, r.line(s, "%s"))
	}

	fmt.Fprintln(r.out, "\nOrdered by wrongs...")
	worst := mapreduce.WorstOffenders(stats)
	if r.table {
		fmt.Fprintln(r.out, r.renderTable(worst))
	} else {
		for _, s := range worst {
			fmt.Fprintln(r.out, r.line(s, "%3s"))
		}
	}

	r.totals(mapreduce.Totals(stats))
}

func (r *Reporter) line(s models.LocaleStats, codeFormat string) string {
	return fmt.Sprintf(codeFormat+": right %s of the time (%s right. %s wrong) %s",
		s.Expected,
		Percent(s.Right, s.Right+s.Wrong),
		humanize.Comma(int64(s.Right)),
		humanize.Comma(int64(s.Wrong)),
		r.names.Name(s.Expected),
	)
}

func (r *Reporter) totals(t models.Tally) {
	total := t.Classified()
	fmt.Fprintln(r.out, "\nIn total...")
	fmt.Fprintf(r.out, "right %s of the time\n", Percent(t.Right, total))
	fmt.Fprintf(r.out, "maybe %s of the time\n", Percent(t.Maybe, total))
	fmt.Fprintf(r.out, "%s right. %s maybe. %s wrong. \n",
		humanize.Comma(int64(t.Right)),
		humanize.Comma(int64(t.Maybe)),
		humanize.Comma(int64(t.Wrong)),
	)
	fmt.Fprintf(r.out, "(%s documents)\n", humanize.Comma(int64(total)))
	if t.WasEnglish > 0 {
		fmt.Fprintf(r.out, "%s of the wrong ones were guessed as English\n", humanize.Comma(int64(t.WasEnglish)))
	}
}

func (r *Reporter) renderTable(stats []models.LocaleStats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Locale", "Right %", "Right", "Wrong", "Maybe", "Language"})
	for _, s := range stats {
		tw.AppendRow(table.Row{
			s.Locale,
			Percent(s.Right, s.Right+s.Wrong),
			humanize.Comma(int64(s.Right)),
			humanize.Comma(int64(s.Wrong)),
			humanize.Comma(int64(s.Maybe)),
			r.names.Name(s.Expected),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

// Percent formats 100*n/d with one decimal place, or "n/a" when d is zero.
func Percent(n, d int) string {
	if d == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(d))
}

// WriteSuspects writes one <locale>.json file per locale into dest, in locale
// order, printing each path once written. dest should be absolute. Every
// record set must already be complete; nothing is written incrementally.
func (r *Reporter) WriteSuspects(s *storage.Storage, dest string, records map[string][]models.SuspectRecord) ([]string, error) {
	locales := make([]string, 0, len(records))
	for locale := range records {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	written := make([]string, 0, len(locales))
	for _, locale := range locales {
		data, err := json.MarshalIndent(records[locale], "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to marshal suspects for %s: %w", locale, err)
		}
		p := filepath.Join(dest, locale+".json")
		if err := s.SaveFile(p, append(data, '\n')); err != nil {
			return written, err
		}
		written = append(written, p)
		fmt.Fprintf(r.out, "Wrote %s\n", p)
	}
	return written, nil
}
