package sexp

import (
	"strings"
	"testing"

	"lifec/internal/parser"
)

func TestRenderCompactFunction(t *testing.T) {
	mod, engine := parser.ParseModule("t.life", []byte(`pub fn add(a: I32, b: I32): I32 { return a; }`))
	if engine.HasErrors() {
		t.Fatalf("unexpected errors: %v", engine.Diagnostics())
	}
	out := Render(mod, 0)
	if !strings.Contains(out, "(fn pub add") {
		t.Errorf("expected rendered fn header, got: %s", out)
	}
	if !strings.Contains(out, "(return") {
		t.Errorf("expected rendered return, got: %s", out)
	}
}

func TestRenderPrettyIndents(t *testing.T) {
	mod, engine := parser.ParseModule("t.life", []byte(`fn f(): I32 { return 0; }`))
	if engine.HasErrors() {
		t.Fatalf("unexpected errors: %v", engine.Diagnostics())
	}
	out := Render(mod, 2)
	if !strings.Contains(out, "\n") {
		t.Error("expected pretty output to contain newlines")
	}
}

func TestRenderStructAndEnum(t *testing.T) {
	mod, engine := parser.ParseModule("t.life", []byte(`
pub struct Point { x: I32, y: I32 }
pub enum Shape { Circle(I32), Square { side: I32 } }
`))
	if engine.HasErrors() {
		t.Fatalf("unexpected errors: %v", engine.Diagnostics())
	}
	out := Render(mod, 0)
	if !strings.Contains(out, "(struct pub Point") {
		t.Errorf("missing struct header: %s", out)
	}
	if !strings.Contains(out, "(enum pub Shape") {
		t.Errorf("missing enum header: %s", out)
	}
}

func TestRenderImport(t *testing.T) {
	mod, engine := parser.ParseModule("t.life", []byte("import Geometry.Shapes.{Point, Circle as C};\nfn main(): I32 { return 0; }"))
	if engine.HasErrors() {
		t.Fatalf("unexpected errors: %v", engine.Diagnostics())
	}
	out := Render(mod, 0)
	if !strings.Contains(out, "(import Geometry.Shapes") {
		t.Errorf("missing import header: %s", out)
	}
	if !strings.Contains(out, "as C") {
		t.Errorf("missing aliased use: %s", out)
	}
}
