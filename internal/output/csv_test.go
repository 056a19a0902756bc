package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRecordsCSV(t *testing.T) {
	recs := parseRecords(t, sampleExport)

	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	if err := writeRecordsCSV(path, recs); err != nil {
		t.Fatalf("unexpected error writing CSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(rows))
	}

	header, row := rows[0], rows[1]
	if header[0] != "Accession Number" || header[1] != "Authors" {
		t.Fatalf("unexpected header: %v", header)
	}
	if row[0] != "WOS:000000000000001" {
		t.Fatalf("UT column = %q", row[0])
	}
	if row[1] != "Doe, J; Foo, B" {
		t.Fatalf("AU column = %q, expected subdelimited join", row[1])
	}
}
