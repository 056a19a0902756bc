package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatRecordsHumanOverviewTable(t *testing.T) {
	recs := parseRecords(t, sampleExport)

	var buf bytes.Buffer
	if err := FormatRecords(&buf, recs, OutputConfig{Human: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	// The overview table precedes the detail cards.
	for _, want := range []string{
		"Read 1 records",
		"Accession", "Author", "Year", "Title", "Source",
		"WOS:000000000000001",
		"Doe, J",
		"2016",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected human output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "Accession") > strings.Index(out, "Abstract") {
		t.Fatalf("overview table should come before the detail cards:\n%s", out)
	}
}
