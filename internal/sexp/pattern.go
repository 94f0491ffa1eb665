package sexp

import "lifec/internal/ast"

func (w *writer) writePattern(pat ast.Pattern) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		w.atom("_")
	case *ast.SimplePattern:
		w.atom(p.Name)
	case *ast.LiteralPattern:
		w.open("lit-pattern")
		w.sep()
		w.writeExpr(p.Expr)
		w.close()
	case *ast.TuplePattern:
		w.open("tuple-pattern")
		for _, e := range p.Elements {
			w.sep()
			w.writePattern(e)
		}
		w.close()
	case *ast.EnumPattern:
		w.open("enum-pattern")
		w.sep()
		w.writeTypeName(p.TypeName)
		for _, sub := range p.SubPatterns {
			w.sep()
			w.writePattern(sub)
		}
		w.close()
	case *ast.StructPattern:
		w.open("struct-pattern")
		w.sep()
		w.writeTypeName(p.TypeName)
		for _, f := range p.Fields {
			w.sep()
			w.open("field")
			w.atom(f.Name)
			w.sep()
			w.writePattern(f.Pattern)
			w.close()
		}
		w.close()
	default:
		w.atom("pattern-unknown")
	}
}
