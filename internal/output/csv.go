package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
)

// csvColumns is the fixed export column set, in order.
var csvColumns = []string{"UT", "AU", "TI", "SO", "PY", "VL", "IS", "BP", "EP", "DI", "DE"}

// writeRecordsCSV exports records to a CSV file, one row per record.
// Multi-value fields are joined with the subdelimiter.
func writeRecordsCSV(path string, records []*wosfile.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, len(csvColumns))
	for i, tag := range csvColumns {
		header[i] = wosfile.TagLabel(tag)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		row := make([]string, len(csvColumns))
		for i, tag := range csvColumns {
			row[i] = strings.Join(r.Values(tag), wosfile.DefaultSubdelimiter)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}
	return nil
}
