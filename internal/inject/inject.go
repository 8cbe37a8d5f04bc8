// Package inject hides the marker string inside a generated record. Four
// structurally distinct techniques exist so that the marker's location cannot
// be predicted from record shape alone.
package inject

import (
	"math/rand/v2"

	"pkg.jsn.cam/haystack/pkg/record"
)

// Marker is the sentinel string embedded in exactly one record per batch.
const Marker = "golden"

const (
	treasureKey = "treasure"
	specialKey  = "special"
	tagsKey     = "tags"
)

// Technique identifies one of the four embedding methods.
type Technique int

const (
	// AddField adds a new top-level "treasure" field.
	AddField Technique = iota
	// ReplaceString overwrites the first string-valued top-level field.
	ReplaceString
	// NestedField adds a "special" field inside the first nested record.
	NestedField
	// TagList adds a top-level "tags" list containing the marker.
	TagList
)

var techniqueNames = [...]string{
	AddField:      "add_field",
	ReplaceString: "replace_string",
	NestedField:   "nested_field",
	TagList:       "tag_list",
}

func (t Technique) String() string {
	if t < 0 || int(t) >= len(techniqueNames) {
		return "unknown"
	}
	return techniqueNames[t]
}

// Techniques lists every technique in dispatch order.
var Techniques = []Technique{AddField, ReplaceString, NestedField, TagList}

var appliers = map[Technique]func(*record.Record) *record.Record{
	AddField:      addField,
	ReplaceString: replaceString,
	NestedField:   nestedField,
	TagList:       tagList,
}

// Inject embeds the marker using a uniformly chosen technique. The technique
// choice is independent of the record's archetype; techniques that need a
// qualifying field fall back rather than fail.
func Inject(r *rand.Rand, rec *record.Record) *record.Record {
	return Apply(Techniques[r.IntN(len(Techniques))], rec)
}

// Apply embeds the marker with a specific technique. The record is mutated
// and returned.
func Apply(t Technique, rec *record.Record) *record.Record {
	return appliers[t](rec)
}

func addField(rec *record.Record) *record.Record {
	return rec.Set(treasureKey, Marker)
}

// replaceString overwrites the first string-valued top-level field. A record
// with no string field falls back to addField; without the fallback such a
// record would carry no marker at all. Deliberate choice, not all archetypes
// are guaranteed a string field.
func replaceString(rec *record.Record) *record.Record {
	for _, f := range rec.Fields() {
		if _, ok := f.Value.(string); ok {
			return rec.Set(f.Key, Marker)
		}
	}
	return addField(rec)
}

// nestedField places the marker inside the first nested-record field. Flat
// records (e.g. transactions) get the "special" field at top level instead.
func nestedField(rec *record.Record) *record.Record {
	for _, f := range rec.Fields() {
		if nested, ok := f.Value.(*record.Record); ok {
			nested.Set(specialKey, Marker)
			return rec
		}
	}
	return rec.Set(specialKey, Marker)
}

func tagList(rec *record.Record) *record.Record {
	return rec.Set(tagsKey, []any{"special", Marker, "rare"})
}
