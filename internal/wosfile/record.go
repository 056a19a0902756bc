package wosfile

// RawRecord is an ordered mapping from field tag to its reconstructed
// string value. Tag order matches the order of first appearance in the
// source stream.
type RawRecord struct {
	tags   []string
	values map[string]string
}

func newRawRecord() *RawRecord {
	return &RawRecord{values: make(map[string]string)}
}

// set stores value under tag, preserving first-appearance order.
func (r *RawRecord) set(tag, value string) {
	if _, ok := r.values[tag]; !ok {
		r.tags = append(r.tags, tag)
	}
	r.values[tag] = value
}

// Get returns the value for tag and whether the tag is present.
func (r *RawRecord) Get(tag string) (string, bool) {
	v, ok := r.values[tag]
	return v, ok
}

// Tags returns the record's tags in source order.
func (r *RawRecord) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len returns the number of fields in the record.
func (r *RawRecord) Len() int {
	return len(r.tags)
}
