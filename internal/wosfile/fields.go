package wosfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultSubdelimiter separates the parts of a multi-value field.
const DefaultSubdelimiter = "; "

// RecordOptions controls how a RawRecord is turned into a Record.
type RecordOptions struct {
	// Subdelimiter splits multi-value fields. Empty means DefaultSubdelimiter.
	Subdelimiter string
	// KeepEmpty retains fields whose value is the empty string.
	KeepEmpty bool
}

// Record is a parsed WoS record: multi-value fields are split on the
// subdelimiter, scalar fields stay whole. It is a value object built from
// a RawRecord; it does not mutate or retain the raw mapping.
type Record struct {
	order  []string
	fields map[string][]string
}

// NewRecord builds a Record from raw. Fields with empty values are
// dropped unless opts.KeepEmpty is set. A tag missing from the field
// dictionary fails with an error matching ErrUnknownTag.
func NewRecord(raw *RawRecord, opts RecordOptions) (*Record, error) {
	sub := opts.Subdelimiter
	if sub == "" {
		sub = DefaultSubdelimiter
	}

	rec := &Record{fields: make(map[string][]string)}
	for _, tag := range raw.Tags() {
		value, _ := raw.Get(tag)
		if value == "" && !opts.KeepEmpty {
			continue
		}
		iterable, known := IsIterable(tag)
		if !known {
			return nil, fmt.Errorf("%w %q", ErrUnknownTag, tag)
		}
		if iterable {
			rec.fields[tag] = strings.Split(value, sub)
		} else {
			rec.fields[tag] = []string{value}
		}
		rec.order = append(rec.order, tag)
	}
	return rec, nil
}

// Tags returns the record's tags in source order.
func (r *Record) Tags() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether the record contains tag.
func (r *Record) Has(tag string) bool {
	_, ok := r.fields[tag]
	return ok
}

// Value returns the first (for scalar fields, the only) value of tag,
// or "" when absent.
func (r *Record) Value(tag string) string {
	if vals := r.fields[tag]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Values returns every value of tag, or nil when absent.
func (r *Record) Values(tag string) []string {
	vals := r.fields[tag]
	if vals == nil {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// authorComma rewrites "Last, First" as "Last First"; the greedy match
// drops only the final comma, like the original citation format.
var authorComma = regexp.MustCompile(`(.*), (.*)`)

// ID returns a human-readable citation identifier for the record, built
// from first author, year, journal, volume, page, and DOI. Absent parts
// are omitted.
func (r *Record) ID() string {
	var parts []string
	if au := r.Value("AU"); au != "" {
		parts = append(parts, authorComma.ReplaceAllString(au, "$1 $2"))
	}
	if py := r.Value("PY"); py != "" {
		parts = append(parts, py)
	}
	for _, tag := range []string{"J9", "BS", "SO"} {
		if j := r.Value(tag); j != "" {
			parts = append(parts, j)
			break
		}
	}
	if vl := r.Value("VL"); vl != "" {
		parts = append(parts, "V"+vl)
	}
	if bp := r.Value("BP"); bp != "" {
		parts = append(parts, "P"+bp)
	}
	if di := r.Value("DI"); di != "" {
		parts = append(parts, "DOI "+di)
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON renders scalar fields as strings and multi-value fields as
// arrays. Keys appear in the record's source tag order, not alphabetically.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tag := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		var v any = r.fields[tag]
		if iterable, _ := IsIterable(tag); !iterable {
			v = r.fields[tag][0]
		}
		key, err := json.Marshal(tag)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Addresses is a parsed C1 (author address) field: either a flat address
// list, or addresses grouped by the bracketed author lists preceding them.
type Addresses struct {
	List     []string
	ByAuthor map[string][]string
}

// addressGroup matches one "[author; author]" prefix.
var addressGroup = regexp.MustCompile(`\[([^\[\]]+)\]\s*`)

// ParseAddresses parses a C1 field value. Values without brackets are a
// plain "; "-separated list. Values with brackets group each address
// under every author named in its bracket; ungrouped leading addresses in
// a mixed value are dropped. A "[" that opens no well-formed group is an
// error.
func ParseAddresses(field string) (*Addresses, error) {
	if !strings.Contains(field, "[") {
		return &Addresses{List: strings.Split(field, "; ")}, nil
	}

	groups := addressGroup.FindAllStringSubmatchIndex(field, -1)
	if len(groups) == 0 {
		return nil, fmt.Errorf("wosfile: malformed address field %q", field)
	}

	byAuthor := make(map[string][]string)
	for i, g := range groups {
		authors := field[g[2]:g[3]]
		end := len(field)
		if i+1 < len(groups) {
			end = groups[i+1][0]
		}
		addr := strings.TrimRight(field[g[1]:end], "; ")
		for _, author := range strings.Split(authors, "; ") {
			byAuthor[author] = append(byAuthor[author], addr)
		}
	}
	return &Addresses{ByAuthor: byAuthor}, nil
}

// Addresses parses the record's C1 field, or returns nil when absent.
func (r *Record) Addresses() (*Addresses, error) {
	vals := r.Values("C1")
	if len(vals) == 0 {
		return nil, nil
	}
	return ParseAddresses(strings.Join(vals, DefaultSubdelimiter))
}

// RecordReader yields parsed Records from an underlying Records sequence.
type RecordReader struct {
	rs   *Records
	opts RecordOptions
}

// NewRecordReader wraps rs; each pulled RawRecord is transformed with opts.
func NewRecordReader(rs *Records, opts RecordOptions) *RecordReader {
	return &RecordReader{rs: rs, opts: opts}
}

// Read returns the next parsed record, or io.EOF at the end of the
// sequence.
func (r *RecordReader) Read() (*Record, error) {
	raw, err := r.rs.Read()
	if err != nil {
		return nil, err
	}
	return NewRecord(raw, r.opts)
}

// ReadAll exhausts the sequence, returning every remaining record.
func (r *RecordReader) ReadAll() ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Close releases the underlying sequence.
func (r *RecordReader) Close() error {
	return r.rs.Close()
}

// ReadRecords parses every record from rs with opts and closes the
// sequence when done.
func ReadRecords(rs *Records, opts RecordOptions) ([]*Record, error) {
	rr := NewRecordReader(rs, opts)
	defer rr.Close()
	return rr.ReadAll()
}
