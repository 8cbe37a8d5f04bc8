// Package generate produces randomly shaped test records. Each record
// follows one of five fixed archetypes; field values are sampled from fixed
// tables so downstream tools see realistic but bounded data.
package generate

import (
	"math/rand/v2"

	"pkg.jsn.cam/haystack/pkg/record"
)

// Archetype identifies one of the five record shapes.
type Archetype int

const (
	Profile Archetype = iota
	Product
	Transaction
	Event
	Department
)

var archetypeNames = [...]string{
	Profile:     "profile",
	Product:     "product",
	Transaction: "transaction",
	Event:       "event",
	Department:  "department",
}

func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return "unknown"
	}
	return archetypeNames[a]
}

// Archetypes lists every archetype in dispatch order.
var Archetypes = []Archetype{Profile, Product, Transaction, Event, Department}

// constructors maps each archetype to its builder. Dispatch goes through
// this table rather than a branch chain so each shape stays self-contained.
var constructors = map[Archetype]func(r *rand.Rand) *record.Record{
	Profile:     buildProfile,
	Product:     buildProduct,
	Transaction: buildTransaction,
	Event:       buildEvent,
	Department:  buildDepartment,
}

// Pick chooses an archetype uniformly at random.
func Pick(r *rand.Rand) Archetype {
	return Archetypes[r.IntN(len(Archetypes))]
}

// Build constructs a fresh record of the given archetype.
func Build(a Archetype, r *rand.Rand) *record.Record {
	return constructors[a](r)
}

// Generate constructs one record of a uniformly chosen archetype. It always
// succeeds; the only side effect is consuming entropy from r.
func Generate(r *rand.Rand) *record.Record {
	return Build(Pick(r), r)
}
