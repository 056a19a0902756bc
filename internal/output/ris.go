package output

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
)

// writeRecordsRIS exports records to RIS format for citation managers.
func writeRecordsRIS(path string, records []*wosfile.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating RIS file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, r := range records {
		writeRISTag(w, "TY", risType(r.Value("PT")))
		writeRISTag(w, "TI", r.Value("TI"))

		for _, au := range r.Values("AU") {
			writeRISTag(w, "AU", strings.TrimSpace(au))
		}

		writeRISTag(w, "PY", r.Value("PY"))
		writeRISTag(w, "JO", r.Value("SO"))
		writeRISTag(w, "VL", r.Value("VL"))
		writeRISTag(w, "IS", r.Value("IS"))
		writeRISTag(w, "SP", r.Value("BP"))
		writeRISTag(w, "EP", r.Value("EP"))
		writeRISTag(w, "SN", r.Value("SN"))
		writeRISTag(w, "DO", r.Value("DI"))
		writeRISTag(w, "AB", r.Value("AB"))

		for _, kw := range r.Values("DE") {
			writeRISTag(w, "KW", strings.TrimSpace(kw))
		}

		if ut := r.Value("UT"); ut != "" {
			writeRISTag(w, "ID", ut)
		}
		writeRISTag(w, "ER", "")

		if i < len(records)-1 {
			if _, err := w.WriteString("\n"); err != nil {
				return fmt.Errorf("writing RIS separator: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing RIS output: %w", err)
	}

	return nil
}

// risType maps a WoS publication type code to a RIS reference type.
func risType(pt string) string {
	switch pt {
	case "J":
		return "JOUR"
	case "B":
		return "BOOK"
	case "S":
		return "SER"
	case "P":
		return "PAT"
	}
	return "GEN"
}

func writeRISTag(w *bufio.Writer, tag, value string) {
	if tag == "" {
		return
	}
	if tag != "ER" && strings.TrimSpace(value) == "" {
		return
	}
	if tag == "ER" {
		_, _ = w.WriteString("ER  -\n")
		return
	}
	_, _ = w.WriteString(tag + "  - " + sanitizeRISValue(value) + "\n")
}

func sanitizeRISValue(v string) string {
	v = strings.ReplaceAll(v, "\r\n", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	return strings.TrimSpace(v)
}
