package wosfile

import (
	"bufio"
	"io"
	"strings"
)

// TabDelimitedReader reads records from a WoS tab-delimited export: a
// header row of field tags, then one tab-separated row per record.
// Values arrive whole, so there is no continuation handling.
//
// A reader is bound to one stream and is not safe for concurrent use.
type TabDelimitedReader struct {
	s    *bufio.Scanner
	tags []string
	line int
	err  error
}

// NewTabDelimitedReader creates a reader on r and consumes the header row.
func NewTabDelimitedReader(r io.Reader) (*TabDelimitedReader, error) {
	tr := &TabDelimitedReader{s: bufio.NewScanner(r)}
	tr.s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	header, err := tr.nextNonEmpty()
	if err != nil {
		return nil, tr.formatErr("missing header row")
	}
	header = strings.TrimPrefix(header, "\ufeff")
	tr.tags = strings.Split(strings.TrimRight(header, " \r"), "\t")
	return tr, nil
}

// Read returns the next record, or io.EOF at end of stream. Errors are
// sticky.
func (r *TabDelimitedReader) Read() (*RawRecord, error) {
	if r.err != nil {
		return nil, r.err
	}

	line, err := r.nextNonEmpty()
	if err != nil {
		return nil, err
	}

	values := strings.Split(strings.TrimRight(line, "\r"), "\t")
	// A spurious trailing tab produces one extra empty column; drop it.
	if len(values) == len(r.tags)+1 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	if len(values) != len(r.tags) {
		err := r.formatErr("row has %d columns, header has %d", len(values), len(r.tags))
		r.err = err
		return nil, err
	}

	rec := newRawRecord()
	for i, tag := range r.tags {
		rec.set(tag, values[i])
	}
	return rec, nil
}

// nextNonEmpty returns the next line with content, skipping blank lines.
func (r *TabDelimitedReader) nextNonEmpty() (string, error) {
	for {
		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
				r.err = err
				return "", err
			}
			return "", io.EOF
		}
		r.line++
		line := r.s.Text()
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

func (r *TabDelimitedReader) formatErr(format string, args ...any) error {
	return formatErrAt(r.line, format, args...)
}
