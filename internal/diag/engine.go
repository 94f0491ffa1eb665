package diag

import "lifec/internal/source"

// Engine owns a file's source map and the ordered diagnostics accumulated
// against it. It outlives any parser that borrows its source bytes.
type Engine struct {
	SourceMap *source.Map

	diagnostics []Diagnostic
}

// NewEngine constructs an Engine over the given source map.
func NewEngine(sm *source.Map) *Engine {
	return &Engine{SourceMap: sm}
}

// Add appends a diagnostic as-is.
func (e *Engine) Add(d Diagnostic) {
	e.diagnostics = append(e.diagnostics, d)
}

// AddError appends an Error-level diagnostic over range with message.
func (e *Engine) AddError(rng source.Range, message string) {
	e.Add(Diagnostic{Level: Error, Range: rng, Message: message})
}

// AddWarning appends a Warning-level diagnostic over range with message.
func (e *Engine) AddWarning(rng source.Range, message string) {
	e.Add(Diagnostic{Level: Warning, Range: rng, Message: message})
}

// Diagnostics returns the accumulated diagnostics in report order.
func (e *Engine) Diagnostics() []Diagnostic {
	return e.diagnostics
}

// HasErrors reports whether any accumulated diagnostic is Error level.
func (e *Engine) HasErrors() bool {
	for _, d := range e.diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// Len returns the number of top-level diagnostics accumulated.
func (e *Engine) Len() int {
	return len(e.diagnostics)
}

// Truncate drops every diagnostic appended after index n, used to unwind
// diagnostics from a speculative parse that is then backtracked.
func (e *Engine) Truncate(n int) {
	if n < len(e.diagnostics) {
		e.diagnostics = e.diagnostics[:n]
	}
}

// Merge appends another engine's diagnostics onto e, used when a module
// loader folds per-file engines into one report.
func (e *Engine) Merge(other *Engine) {
	if other == nil {
		return
	}
	e.diagnostics = append(e.diagnostics, other.diagnostics...)
}
