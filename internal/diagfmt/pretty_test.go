package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lifec/internal/diag"
	"lifec/internal/source"
)

func TestFprintSingleLine(t *testing.T) {
	sm := source.New("demo.life", []byte("let x = 1;\n"))
	e := diag.NewEngine(sm)
	e.AddError(source.Range{
		Start: source.Position{Line: 1, Column: 5},
		End:   source.Position{Line: 1, Column: 6},
	}, "expected identifier")

	var buf bytes.Buffer
	Fprint(&buf, e, Options{Color: false})
	out := buf.String()

	if !strings.Contains(out, "demo.life:1:5: error: expected identifier") {
		t.Errorf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "let x = 1;") {
		t.Errorf("missing source excerpt, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret, got:\n%s", out)
	}
}

func TestFprintMultiLine(t *testing.T) {
	sm := source.New("demo.life", []byte("fn f() {\nlet a = 1;\nlet mid = 0;\nlet b = 2;\n}\n"))
	e := diag.NewEngine(sm)
	e.AddError(source.Range{
		Start: source.Position{Line: 2, Column: 1},
		End:   source.Position{Line: 4, Column: 5},
	}, "unexpected construct")

	var buf bytes.Buffer
	Fprint(&buf, e, Options{Color: false})
	out := buf.String()

	if !strings.Contains(out, "let a = 1;") || !strings.Contains(out, "let b = 2;") {
		t.Fatalf("missing source lines, got:\n%s", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("missing ellipsis row for multi-line range, got:\n%s", out)
	}
}

func TestFprintNotes(t *testing.T) {
	sm := source.New("demo.life", []byte("x\n"))
	e := diag.NewEngine(sm)
	d := diag.Diagnostic{
		Level: diag.Error,
		Range: source.Range{Start: source.Position{1, 1}, End: source.Position{1, 2}},
		Message: "bad",
	}
	d = d.WithNote(source.Range{Start: source.Position{1, 1}, End: source.Position{1, 2}}, "see also")
	e.Add(d)

	var buf bytes.Buffer
	Fprint(&buf, e, Options{Color: false})
	lines := strings.Split(buf.String(), "\n")

	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "  demo.life:1:1: note: see also") {
			found = true
		}
	}
	if !found {
		t.Errorf("note not indented by two spaces, got:\n%s", buf.String())
	}
}

func TestVisualColumnsTabs(t *testing.T) {
	cols := visualColumns([]byte("\tx"))
	if cols[0] != 1 {
		t.Errorf("cols[0] = %d, want 1", cols[0])
	}
	if cols[1] != 9 {
		t.Errorf("cols[1] = %d, want 9", cols[1])
	}
}
