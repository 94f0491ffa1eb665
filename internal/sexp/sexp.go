// Package sexp renders a parsed Module as an indented S-expression, the
// textual form the command-line driver prints on a successful parse. It
// is a pure structural dump: no name resolution, no type information,
// just the shape of the tree the parser produced.
package sexp

import (
	"strconv"
	"strings"

	"lifec/internal/ast"
)

// Render returns mod as an S-expression. indent is the number of spaces
// added per nesting level; 0 produces a single compact line.
func Render(mod *ast.Module, indent int) string {
	w := &writer{step: indent}
	w.writeModule(mod)
	return w.buf.String()
}

type writer struct {
	buf   strings.Builder
	step  int
	depth int
}

func (w *writer) pretty() bool { return w.step > 0 }

func (w *writer) newlineIndent() {
	if !w.pretty() {
		return
	}
	w.buf.WriteByte('\n')
	w.buf.WriteString(strings.Repeat(" ", w.depth*w.step))
}

// open writes "(tag" and, for pretty output, indents one level for what
// follows; sep (called between children) decides whether a space or a
// fresh indented line separates each child.
func (w *writer) open(tag string) {
	w.buf.WriteByte('(')
	w.buf.WriteString(tag)
	w.depth++
}

func (w *writer) close() {
	w.depth--
	w.buf.WriteByte(')')
}

func (w *writer) sep() {
	if w.pretty() {
		w.newlineIndent()
	} else {
		w.buf.WriteByte(' ')
	}
}

// atom writes s on the current line, after a single space.
func (w *writer) atom(s string) {
	w.buf.WriteByte(' ')
	w.buf.WriteString(s)
}

func (w *writer) quoted(s string) {
	w.sep()
	w.buf.WriteString(strconv.Quote(s))
}

func (w *writer) writeModule(mod *ast.Module) {
	w.open("module")
	if mod.Path != "" {
		w.quoted(mod.Path)
	}
	for _, imp := range mod.Imports {
		w.writeImport(imp)
	}
	for _, item := range mod.Items {
		w.writeItem(item)
	}
	w.close()
}

func (w *writer) writeImport(imp ast.ImportStatement) {
	w.sep()
	w.open("import")
	w.atom(strings.Join(imp.ModulePath, "."))
	for _, it := range imp.Items {
		w.sep()
		w.open("use")
		w.atom(it.Name)
		if it.Alias != "" {
			w.atom("as")
			w.atom(it.Alias)
		}
		w.close()
	}
	w.close()
}
