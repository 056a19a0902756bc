package wosfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format identifies a WoS serialization.
type Format int

const (
	// FormatAuto lets the read facade detect the format per input.
	FormatAuto Format = iota
	// FormatPlainText is the line-oriented export with two-letter tags.
	FormatPlainText
	// FormatTabDelimited is the export with a tab-separated header row.
	FormatTabDelimited
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPlainText:
		return "plain text"
	case FormatTabDelimited:
		return "tab-delimited"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// detectPeekSize bounds how far Detect looks into the stream.
const detectPeekSize = 4096

// Detect inspects the start of the stream and reports which reader applies.
// It peeks without consuming, so the chosen reader can be constructed on
// the same bufio.Reader. Leading blank lines and a byte-order mark are
// skipped. An unrecognized header fails with an error matching ErrFormat.
func Detect(br *bufio.Reader) (Format, error) {
	head, err := br.Peek(detectPeekSize)
	if len(head) == 0 {
		if err == nil || err == io.EOF {
			return FormatAuto, fmt.Errorf("%w: empty stream", ErrFormat)
		}
		return FormatAuto, err
	}

	text := strings.TrimPrefix(string(head), "\ufeff")
	line := ""
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			line = strings.TrimRight(l, "\r")
			break
		}
	}

	switch {
	case strings.HasPrefix(line, "FN"):
		return FormatPlainText, nil
	case strings.Split(line, "\t")[0] == "PT":
		return FormatTabDelimited, nil
	}
	return FormatAuto, fmt.Errorf("%w: unrecognized header %q", ErrFormat, line)
}

// DetectFile opens path, detects its format, and closes it again.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatAuto, err
	}
	defer f.Close()
	return Detect(decode(f))
}
