package diag

import (
	"testing"

	"lifec/internal/source"
)

func rng(line, col uint32) source.Range {
	p := source.Position{Line: line, Column: col}
	return source.Range{Start: p, End: p}
}

func TestEngineHasErrors(t *testing.T) {
	tests := []struct {
		name string
		add  func(e *Engine)
		want bool
	}{
		{"empty", func(e *Engine) {}, false},
		{"only warning", func(e *Engine) { e.AddWarning(rng(1, 1), "hm") }, false},
		{"has error", func(e *Engine) { e.AddError(rng(1, 1), "bad") }, true},
		{"warning then error", func(e *Engine) {
			e.AddWarning(rng(1, 1), "hm")
			e.AddError(rng(2, 1), "bad")
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(source.New("t.life", []byte("x")))
			tt.add(e)
			if got := e.HasErrors(); got != tt.want {
				t.Errorf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngineMerge(t *testing.T) {
	a := NewEngine(source.New("a.life", []byte("x")))
	a.AddError(rng(1, 1), "a-err")

	b := NewEngine(source.New("b.life", []byte("y")))
	b.AddWarning(rng(1, 1), "b-warn")

	a.Merge(b)
	if got := len(a.Diagnostics()); got != 2 {
		t.Fatalf("len(Diagnostics()) = %d, want 2", got)
	}
	if !a.HasErrors() {
		t.Errorf("HasErrors() = false after merge, want true")
	}
}

func TestDiagnosticWithNote(t *testing.T) {
	d := Diagnostic{Level: Error, Range: rng(1, 1), Message: "bad"}
	d = d.WithNote(rng(2, 1), "see here")
	if len(d.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(d.Notes))
	}
	if d.Notes[0].Level != Note {
		t.Errorf("Notes[0].Level = %v, want Note", d.Notes[0].Level)
	}
}
