// Package output provides formatting for WoS CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
)

// OutputConfig controls which output mode(s) are active.
type OutputConfig struct {
	JSON    bool   // Structured JSON
	Human   bool   // Rich terminal output with color
	Full    bool   // Show full abstract (human mode)
	CSVFile string // Export records to this CSV path (works alongside any mode)
	RISFile string // Export records to this RIS path (works alongside any mode)
}

// FormatRecords writes parsed records.
func FormatRecords(w io.Writer, records []*wosfile.Record, cfg OutputConfig) error {
	if cfg.CSVFile != "" {
		if err := writeRecordsCSV(cfg.CSVFile, records); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}
	if cfg.RISFile != "" {
		if err := writeRecordsRIS(cfg.RISFile, records); err != nil {
			return fmt.Errorf("RIS export failed: %w", err)
		}
	}
	if cfg.JSON {
		return writeJSON(w, records)
	}
	if cfg.Human {
		return formatRecordsHuman(w, records, cfg.Full)
	}
	return formatRecordsPlain(w, records)
}

// FormatTags writes the field-tag dictionary.
func FormatTags(w io.Writer, tags []wosfile.TagInfo, cfg OutputConfig) error {
	if cfg.JSON {
		return writeJSON(w, tags)
	}
	if cfg.Human {
		return formatTagsHuman(w, tags)
	}
	return formatTagsPlain(w, tags)
}

// --- Plain text formatters (default) ---

func formatRecordsPlain(w io.Writer, records []*wosfile.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	for i, r := range records {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("─", 80))
		}

		if ut := r.Value("UT"); ut != "" {
			fmt.Fprintf(w, "Accession: %s\n", ut)
		}
		fmt.Fprintf(w, "Title: %s\n", r.Value("TI"))

		if authors := r.Values("AU"); len(authors) > 0 {
			fmt.Fprintf(w, "Authors: %s\n", strings.Join(authors, ", "))
		}

		fmt.Fprintf(w, "Source: %s\n", sourceLine(r))

		if di := r.Value("DI"); di != "" {
			fmt.Fprintf(w, "DOI: %s\n", di)
		}
		if kw := r.Values("DE"); len(kw) > 0 {
			fmt.Fprintf(w, "Keywords: %s\n", strings.Join(kw, ", "))
		}
		if ab := r.Value("AB"); ab != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Abstract:")
			fmt.Fprintln(w, ab)
		}
	}

	return nil
}

// sourceLine builds a compact "Journal 12(3):45-67 (2016)" citation line.
func sourceLine(r *wosfile.Record) string {
	s := r.Value("SO")
	if vl := r.Value("VL"); vl != "" {
		s += " " + vl
		if is := r.Value("IS"); is != "" {
			s += "(" + is + ")"
		}
	}
	if bp := r.Value("BP"); bp != "" {
		s += ":" + bp
		if ep := r.Value("EP"); ep != "" {
			s += "-" + ep
		}
	}
	if py := r.Value("PY"); py != "" {
		s += " (" + py + ")"
	}
	return s
}

func formatTagsPlain(w io.Writer, tags []wosfile.TagInfo) error {
	for _, t := range tags {
		kind := "scalar"
		if t.Iterable {
			kind = "multi-value"
		}
		fmt.Fprintf(w, "%s  %-35s %s\n", t.Tag, t.Label, kind)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
