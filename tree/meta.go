package tree

// Well-known metadata keys.
const (
	// MetaLine holds the 1-based source line of a Form (int).
	MetaLine = "line"
	// MetaFormat holds original formatting hints the printer must
	// round-trip unchanged (e.g. "keyword" for keyword-style pairs).
	MetaFormat = "format"
)

// MetaKV is a single metadata entry.
type MetaKV struct {
	Key   string
	Value any
}

// Meta is an ordered key→value list attached to Form nodes. The zero
// value is an empty, usable metadata list. Meta values are treated as
// immutable; With returns an updated copy.
type Meta []MetaKV

// Get returns the value for key and whether it is present.
func (m Meta) Get(key string) (any, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return nil, false
}

// With returns a copy of m with key set to value, preserving entry order.
// An existing entry is updated in place (in the copy), a new entry is
// appended.
func (m Meta) With(key string, value any) Meta {
	out := make(Meta, len(m))
	copy(out, m)

	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}

	return append(out, MetaKV{Key: key, Value: value})
}

// Line returns the source line recorded in m, or ok=false when unknown.
func (m Meta) Line() (int, bool) {
	v, ok := m.Get(MetaLine)
	if !ok {
		return 0, false
	}

	line, ok := v.(int)

	return line, ok
}

// WithLine returns a copy of m with the source line set.
func (m Meta) WithLine(line int) Meta {
	return m.With(MetaLine, line)
}

// LineMeta is shorthand for a metadata list holding only a source line.
// A non-positive line yields nil metadata (line unknown).
func LineMeta(line int) Meta {
	if line <= 0 {
		return nil
	}

	return Meta{{Key: MetaLine, Value: line}}
}
