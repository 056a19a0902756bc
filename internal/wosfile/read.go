package wosfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// recordReader is the pull interface both format readers satisfy.
type recordReader interface {
	Read() (*RawRecord, error)
}

// decode wraps r so UTF-8 and UTF-16 exports both arrive as UTF-8 with
// any byte-order mark stripped. WoS exports saved on Windows are often
// UTF-16 with a BOM.
func decode(r io.Reader) *bufio.Reader {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return bufio.NewReader(transform.NewReader(r, dec))
}

// input is one pending source for a Records sequence.
type input struct {
	path   string    // opened lazily when non-empty
	stream io.Reader // used when path is empty
}

func (in input) name() string {
	if in.path != "" {
		return in.path
	}
	return "stream"
}

// Option configures a Records sequence.
type Option func(*Records)

// WithFormat forces the reader type for every input instead of running
// detection per input.
func WithFormat(f Format) Option {
	return func(rs *Records) { rs.format = f }
}

// Records is a lazy, single-pass sequence of raw records drawn from one
// or more inputs in order. Input N is exhausted before input N+1 starts.
// Files opened by path are closed when their records are exhausted, when
// a read fails, or on Close. Streams passed in by the caller are closed
// under the same contract if they implement io.Closer.
//
// A Records sequence is not safe for concurrent use.
type Records struct {
	inputs []input
	format Format

	idx      int
	cur      recordReader
	curName  string
	curClose io.Closer
	err      error
}

// Open builds a record sequence over files identified by path. The files
// are opened lazily, one at a time, as the sequence reaches them.
func Open(paths []string, opts ...Option) *Records {
	rs := &Records{}
	for _, p := range paths {
		rs.inputs = append(rs.inputs, input{path: p})
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// New builds a record sequence over already-open streams. Each stream is
// read exactly once; callers must not reuse it concurrently.
func New(streams []io.Reader, opts ...Option) *Records {
	rs := &Records{}
	for _, s := range streams {
		rs.inputs = append(rs.inputs, input{stream: s})
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Read returns the next record across all inputs, or io.EOF once every
// input is exhausted. Errors are sticky and abort the remaining sequence;
// records already returned stay valid.
func (rs *Records) Read() (*RawRecord, error) {
	if rs.err != nil {
		return nil, rs.err
	}

	for {
		if rs.cur == nil {
			if rs.idx >= len(rs.inputs) {
				return nil, io.EOF
			}
			if err := rs.nextInput(); err != nil {
				rs.err = err
				return nil, err
			}
		}

		rec, err := rs.cur.Read()
		if err == io.EOF {
			if cerr := rs.releaseCurrent(); cerr != nil {
				rs.err = cerr
				return nil, cerr
			}
			continue
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", rs.curName, err)
			rs.releaseCurrent()
			rs.err = err
			return nil, err
		}
		return rec, nil
	}
}

// ReadAll exhausts the sequence, returning every remaining record.
func (rs *Records) ReadAll() ([]*RawRecord, error) {
	var recs []*RawRecord
	for {
		rec, err := rs.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Close releases the currently open input and ends the sequence early.
// Further reads return io.EOF. Safe to call after exhaustion.
func (rs *Records) Close() error {
	err := rs.releaseCurrent()
	rs.idx = len(rs.inputs)
	return err
}

// nextInput acquires the next input's stream and constructs its reader.
func (rs *Records) nextInput() error {
	in := rs.inputs[rs.idx]
	rs.idx++
	rs.curName = in.name()

	var src io.Reader
	if in.path != "" {
		f, err := os.Open(in.path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		src = f
		rs.curClose = f
	} else {
		src = in.stream
		if c, ok := in.stream.(io.Closer); ok {
			rs.curClose = c
		}
	}

	br := decode(src)

	format := rs.format
	if format == FormatAuto {
		var err error
		format, err = Detect(br)
		if err != nil {
			rs.releaseCurrent()
			return fmt.Errorf("%s: %w", rs.curName, err)
		}
	}

	var (
		rd  recordReader
		err error
	)
	switch format {
	case FormatPlainText:
		rd, err = NewPlainTextReader(br)
	case FormatTabDelimited:
		rd, err = NewTabDelimitedReader(br)
	default:
		err = fmt.Errorf("%w: unsupported format %v", ErrFormat, format)
	}
	if err != nil {
		rs.releaseCurrent()
		return fmt.Errorf("%s: %w", rs.curName, err)
	}

	rs.cur = rd
	return nil
}

// releaseCurrent closes the active input, if any, and clears it.
func (rs *Records) releaseCurrent() error {
	rs.cur = nil
	c := rs.curClose
	rs.curClose = nil
	if c == nil {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", rs.curName, err)
	}
	return nil
}
