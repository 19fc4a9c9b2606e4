package condition

import "fmt"

// ConflictKind classifies a conflict between a newly applied condition and
// an already-active one.
type ConflictKind string

const (
	// ConflictDuplicate means the same condition is already active.
	ConflictDuplicate ConflictKind = "duplicate"
	// ConflictSuperseded means one condition implies the other through
	// the hierarchy table. When the new condition supersedes the
	// existing one, the existing instance is auto-deactivated.
	ConflictSuperseded ConflictKind = "superseded"
	// ConflictIncompatible means the two conditions cannot sensibly
	// coexist (e.g. invisible and blinded-by-seen-target mechanics).
	ConflictIncompatible ConflictKind = "incompatible"
)

// Conflict is one non-fatal warning produced by conflict checking. The
// new condition is applied regardless.
type Conflict struct {
	Kind ConflictKind
	// Existing is the already-active condition name involved.
	Existing string
	// Applied is the condition name being applied.
	Applied string
	// DeactivatesExisting is true when the existing instance was
	// auto-deactivated because the new condition supersedes it.
	DeactivatesExisting bool
	Message             string
}

// hierarchy maps a condition name to the conditions it implies and
// therefore supersedes while active.
var hierarchy = map[string][]string{
	"unconscious": {"incapacitated", "prone"},
	"paralyzed":   {"incapacitated"},
	"petrified":   {"incapacitated"},
	"stunned":     {"incapacitated"},
}

// incompatible lists unordered condition pairs that should not coexist.
var incompatible = [][2]string{
	{"invisible", "blinded"},
}

// supersedes reports whether having a implies b.
func supersedes(a, b string) bool {
	for _, implied := range hierarchy[a] {
		if implied == b {
			return true
		}
	}
	return false
}

// incompatiblePair reports whether a and b are listed as incompatible.
func incompatiblePair(a, b string) bool {
	for _, pair := range incompatible {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// CheckConflicts evaluates applying newName against the names of the
// currently active conditions. All results are warnings, never errors.
func CheckConflicts(active []string, newName string) []Conflict {
	var out []Conflict
	for _, existing := range active {
		switch {
		case existing == newName:
			out = append(out, Conflict{
				Kind:     ConflictDuplicate,
				Existing: existing,
				Applied:  newName,
				Message:  fmt.Sprintf("%s is already active", newName),
			})
		case supersedes(newName, existing):
			out = append(out, Conflict{
				Kind:                ConflictSuperseded,
				Existing:            existing,
				Applied:             newName,
				DeactivatesExisting: true,
				Message:             fmt.Sprintf("%s supersedes %s; %s deactivated", newName, existing, existing),
			})
		case supersedes(existing, newName):
			out = append(out, Conflict{
				Kind:     ConflictSuperseded,
				Existing: existing,
				Applied:  newName,
				Message:  fmt.Sprintf("%s is already implied by %s", newName, existing),
			})
		case incompatiblePair(existing, newName):
			out = append(out, Conflict{
				Kind:     ConflictIncompatible,
				Existing: existing,
				Applied:  newName,
				Message:  fmt.Sprintf("%s conflicts with active %s", newName, existing),
			})
		}
	}
	return out
}
