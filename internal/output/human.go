package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
)

// --- Styles ---

var (
	cyan       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold       = lipgloss.NewStyle().Bold(true)
	dim        = lipgloss.NewStyle().Faint(true)
	green      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// truncate cuts a string to maxLen characters, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

// --- Records ---

func formatRecordsHuman(w io.Writer, records []*wosfile.Record, full bool) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	fmt.Fprintln(w, bold.Render(fmt.Sprintf("Read %d records", len(records))))
	fmt.Fprintln(w)

	// Overview table ahead of the detail cards
	var rows [][]string
	for _, r := range records {
		rows = append(rows, []string{
			cyan.Render(r.Value("UT")),
			r.Value("AU"),
			r.Value("PY"),
			bold.Render(truncate(r.Value("TI"), 50)),
			truncate(r.Value("SO"), 30),
		})
	}

	tbl := table.New().
		Headers("Accession", "Author", "Year", "Title", "Source").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintln(w)

	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}

		// Title card
		titleLine := bold.Render(r.Value("TI"))
		meta := cyan.Render(r.ID())
		if ut := r.Value("UT"); ut != "" {
			meta += dim.Render(" · ") + ut
		}
		card := titleLine + "\n" + meta
		fmt.Fprintln(w, boxStyle.Render(card))
		fmt.Fprintln(w)

		// Fields
		if authors := r.Values("AU"); len(authors) > 0 {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Authors:"), strings.Join(authors, ", "))
		}
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Source:"), sourceLine(r))
		if di := r.Value("DI"); di != "" {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("DOI:"), yellow.Render(di))
		}
		if dt := r.Value("DT"); dt != "" {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Type:"), dt)
		}

		// Keywords
		if kw := r.Values("DE"); len(kw) > 0 {
			var terms []string
			for _, k := range kw {
				terms = append(terms, green.Render(k))
			}
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Keywords:"), strings.Join(terms, ", "))
		}

		// Abstract
		if ab := r.Value("AB"); ab != "" {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %s\n", labelStyle.Render("Abstract:"))
			if !full && len(ab) > 500 {
				fmt.Fprintf(w, "  %s\n", ab[:497]+"...")
				fmt.Fprintf(w, "  %s\n", dim.Render("[use --full for complete abstract]"))
			} else {
				fmt.Fprintf(w, "  %s\n", ab)
			}
		}
	}

	return nil
}

// --- Tags ---

func formatTagsHuman(w io.Writer, tags []wosfile.TagInfo) error {
	var rows [][]string
	for _, t := range tags {
		kind := ""
		if t.Iterable {
			kind = green.Render("multi-value")
		}
		rows = append(rows, []string{cyan.Render(t.Tag), truncate(t.Label, 50), kind})
	}

	tbl := table.New().
		Headers("Tag", "Field", "Kind").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, tbl.Render())
	return nil
}
