package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
)

const preamble = "FN Thomson Reuters Web of Science\nVR 1.0\n"

// parseRecords parses a plain-text export snippet into records.
func parseRecords(t *testing.T, data string) []*wosfile.Record {
	t.Helper()
	rr := wosfile.NewRecordReader(
		wosfile.New([]io.Reader{strings.NewReader(data)}),
		wosfile.RecordOptions{},
	)
	recs, err := rr.ReadAll()
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return recs
}

const sampleExport = preamble +
	"PT J\n" +
	"AU Doe, J; Foo, B\n" +
	"TI Testing Output Formatting\n" +
	"SO JOURNAL OF CLI TESTING\n" +
	"DE testing; formatting\n" +
	"AB An abstract sentence.\n" +
	"PY 2016\n" +
	"VL 4\n" +
	"IS 2\n" +
	"BP 102\n" +
	"EP 110\n" +
	"DI 10.1000/example\n" +
	"UT WOS:000000000000001\n" +
	"ER\nEF"

func TestFormatRecordsPlain(t *testing.T) {
	recs := parseRecords(t, sampleExport)

	var buf bytes.Buffer
	if err := FormatRecords(&buf, recs, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	expected := []string{
		"Accession: WOS:000000000000001",
		"Title: Testing Output Formatting",
		"Authors: Doe, J, Foo, B",
		"Source: JOURNAL OF CLI TESTING 4(2):102-110 (2016)",
		"DOI: 10.1000/example",
		"Keywords: testing, formatting",
		"An abstract sentence.",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatRecordsPlainEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatRecords(&buf, nil, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No records found.") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestFormatRecordsJSON(t *testing.T) {
	recs := parseRecords(t, sampleExport)

	var buf bytes.Buffer
	if err := FormatRecords(&buf, recs, OutputConfig{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	if _, ok := decoded[0]["AU"].([]any); !ok {
		t.Fatalf("AU should be an array, got %T", decoded[0]["AU"])
	}
	if decoded[0]["TI"] != "Testing Output Formatting" {
		t.Fatalf("TI = %v", decoded[0]["TI"])
	}
}

func TestFormatTagsPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTags(&buf, wosfile.Tags(), OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "AU") || !strings.Contains(out, "Authors") {
		t.Fatalf("expected tag listing to include AU/Authors, got:\n%s", out)
	}
	if !strings.Contains(out, "multi-value") {
		t.Fatalf("expected multi-value marker in:\n%s", out)
	}
}

func TestSourceLine(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "full",
			data: preamble + "PT J\nSO J.Test\nVL 4\nIS 2\nBP 1\nEP 9\nPY 2016\nER\nEF",
			want: "J.Test 4(2):1-9 (2016)",
		},
		{
			name: "no pages",
			data: preamble + "PT J\nSO J.Test\nVL 4\nPY 2016\nER\nEF",
			want: "J.Test 4 (2016)",
		},
		{
			name: "journal only",
			data: preamble + "PT J\nSO J.Test\nER\nEF",
			want: "J.Test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := parseRecords(t, tt.data)
			if got := sourceLine(recs[0]); got != tt.want {
				t.Fatalf("sourceLine = %q, expected %q", got, tt.want)
			}
		})
	}
}
