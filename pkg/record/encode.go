package record

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const indent = "  "

// Encode serializes a record as indented JSON with fields in insertion
// order. Output is meant for human inspection: two-space indent, one field
// per line, trailing newline omitted.
func Encode(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeRecord(&buf, r, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeRecord(buf *bytes.Buffer, r *Record, depth int) error {
	if r.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	for i, f := range r.fields {
		writeIndent(buf, depth+1)
		key, err := json.Marshal(f.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(": ")
		if err := encodeValue(buf, f.Value, depth+1); err != nil {
			return fmt.Errorf("encode field %q: %w", f.Key, err)
		}
		if i < len(r.fields)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any, depth int) error {
	switch val := v.(type) {
	case *Record:
		return encodeRecord(buf, val, depth)
	case []any:
		return encodeList(buf, val, depth)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(raw)
		return nil
	}
}

func encodeList(buf *bytes.Buffer, items []any, depth int) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i, item := range items {
		writeIndent(buf, depth+1)
		if err := encodeValue(buf, item, depth+1); err != nil {
			return err
		}
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte(']')
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(indent)
	}
}
