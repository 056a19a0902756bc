package wosfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// acceptedBanners are the FN file-type banners WoS has shipped.
var acceptedBanners = map[string]bool{
	"Thomson Reuters Web of Science":     true,
	"Clarivate Analytics Web of Science": true,
}

const plainTextVersion = "1.0"

// PlainTextReader reads records from a WoS "plain text" export: a two-line
// preamble, then per record a block of "TT value" lines with optional
// indented continuation lines, closed by an ER marker. The file ends with
// an EF marker.
//
// A reader is bound to one stream and is not safe for concurrent use.
type PlainTextReader struct {
	s    *bufio.Scanner
	line int
	done bool
	err  error
}

// NewPlainTextReader creates a reader on r and validates the preamble:
// an accepted FN banner line followed by "VR 1.0". Any deviation fails
// here with an error matching ErrFormat, not on first Read.
func NewPlainTextReader(r io.Reader) (*PlainTextReader, error) {
	pr := &PlainTextReader{s: bufio.NewScanner(r)}
	pr.s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	banner, err := pr.nextNonEmpty()
	if err != nil {
		return nil, pr.formatErr("missing FN banner line")
	}
	banner = strings.TrimPrefix(banner, "\ufeff")
	if !strings.HasPrefix(banner, "FN ") || !acceptedBanners[strings.TrimSpace(banner[3:])] {
		return nil, pr.formatErr("unrecognized banner %q", banner)
	}

	version, err := pr.nextNonEmpty()
	if err != nil {
		return nil, pr.formatErr("missing VR version line")
	}
	if version != "VR "+plainTextVersion {
		return nil, pr.formatErr("unsupported version %q, want %q", version, "VR "+plainTextVersion)
	}
	return pr, nil
}

// Read returns the next record, or io.EOF once the EF marker has been
// consumed. Errors are sticky: after a failure every subsequent call
// returns the same error.
func (r *PlainTextReader) Read() (*RawRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.done {
		return nil, io.EOF
	}

	rec, err := r.readRecord()
	if err != nil {
		if err == io.EOF {
			r.done = true
		} else {
			r.err = err
		}
		return nil, err
	}
	return rec, nil
}

// readRecord consumes lines until an ER marker closes the record or an EF
// marker ends the file.
func (r *PlainTextReader) readRecord() (*RawRecord, error) {
	var order []string
	parts := make(map[string][]string)
	lastTag := ""

	for {
		line, err := r.nextNonEmpty()
		if err == io.EOF {
			return nil, r.formatErr("missing EF marker at end of stream")
		}
		if err != nil {
			return nil, err
		}

		// Lines indented by at least two spaces (or a tab) continue the
		// value of the most recent tag. A single stray leading space still
		// reads as a tag line.
		if strings.HasPrefix(line, "  ") || line[0] == '\t' {
			if lastTag == "" {
				return nil, r.formatErr("continuation line %q outside a field", line)
			}
			parts[lastTag] = append(parts[lastTag], strings.TrimSpace(line))
			continue
		}

		tag, value, ok := splitTagLine(strings.TrimSpace(line))
		if !ok {
			return nil, r.formatErr("malformed line %q", line)
		}

		switch tag {
		case "ER":
			return joinRecord(order, parts), nil
		case "EF":
			if len(order) > 0 {
				return nil, r.formatErr("missing ER marker before EF")
			}
			return nil, io.EOF
		}

		if _, known := IsIterable(tag); !known {
			return nil, &ParseError{Line: r.line, Err: fmt.Errorf("%w %q", ErrUnknownTag, tag)}
		}
		if _, seen := parts[tag]; !seen {
			order = append(order, tag)
		}
		parts[tag] = append(parts[tag], value)
		lastTag = tag
	}
}

// joinRecord assembles the per-tag line fragments into final values.
// Iterable tags join with the subdelimiter, prose tags with a space.
func joinRecord(order []string, parts map[string][]string) *RawRecord {
	rec := newRawRecord()
	for _, tag := range order {
		sep := " "
		if iterable, _ := IsIterable(tag); iterable {
			sep = "; "
		}
		rec.set(tag, strings.Join(parts[tag], sep))
	}
	return rec
}

// splitTagLine splits a content line into its two-character tag and value.
func splitTagLine(line string) (tag, value string, ok bool) {
	if len(line) < 2 {
		return "", "", false
	}
	if len(line) > 2 && line[2] != ' ' {
		return "", "", false
	}
	return line[:2], strings.TrimSpace(line[2:]), true
}

// nextNonEmpty returns the next line with content, skipping blank lines.
func (r *PlainTextReader) nextNonEmpty() (string, error) {
	for {
		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
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

func (r *PlainTextReader) formatErr(format string, args ...any) error {
	return formatErrAt(r.line, format, args...)
}
