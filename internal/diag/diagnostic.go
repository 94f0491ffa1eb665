package diag

import "lifec/internal/source"

// Diagnostic is a single user-facing finding: a level, the source range it
// points at, a message, and any nested notes.
type Diagnostic struct {
	Level   Level
	Range   source.Range
	Message string
	Notes   []Diagnostic
}

// WithNote returns a copy of d with note appended as a nested Note-level
// diagnostic. The caller supplies the note's own range (often the same
// range as d, or a more specific sub-range).
func (d Diagnostic) WithNote(rng source.Range, message string) Diagnostic {
	d.Notes = append(d.Notes, Diagnostic{Level: Note, Range: rng, Message: message})
	return d
}
