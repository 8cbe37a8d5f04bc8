package record

// Field is a single key/value pair in a Record.
type Field struct {
	Key   string
	Value any
}

// Record is a tree-shaped value: an ordered list of fields whose values are
// scalars (string, int, float64, bool), lists ([]any), or nested *Records.
// Unlike a map, a Record remembers insertion order, so serialized output
// matches generation order.
type Record struct {
	fields []Field
}

// New creates an empty record.
func New() *Record {
	return &Record{}
}

// Set appends a field, or replaces the value in place if the key already
// exists. Returns the record for chaining.
func (r *Record) Set(key string, value any) *Record {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return r
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
	return r
}

// Get returns the value for key and whether it exists.
func (r *Record) Get(key string) (any, bool) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			return r.fields[i].Value, true
		}
	}
	return nil, false
}

// Len returns the number of top-level fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in insertion order. The slice is shared with the
// record; callers must not modify it.
func (r *Record) Fields() []Field {
	return r.fields
}

// ContainsString reports whether s occurs as a string value anywhere in v.
// It descends into *Record, decoded-JSON maps, and lists; keys are not
// searched, only values.
func ContainsString(v any, s string) bool {
	switch val := v.(type) {
	case string:
		return val == s
	case *Record:
		for _, f := range val.fields {
			if ContainsString(f.Value, s) {
				return true
			}
		}
	case map[string]any:
		for _, item := range val {
			if ContainsString(item, s) {
				return true
			}
		}
	case []any:
		for _, item := range val {
			if ContainsString(item, s) {
				return true
			}
		}
	}
	return false
}
