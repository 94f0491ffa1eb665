package sexp

import "lifec/internal/ast"

func (w *writer) writeTypeName(tn ast.TypeName) {
	if tn == nil {
		w.atom("_")
		return
	}
	switch t := tn.(type) {
	case *ast.PathType:
		w.open("type")
		for _, seg := range t.Segments {
			if len(seg.TypeParams) == 0 {
				w.atom(seg.Name)
				continue
			}
			w.sep()
			w.open(seg.Name)
			for _, tp := range seg.TypeParams {
				w.sep()
				w.writeTypeName(tp)
			}
			w.close()
		}
		w.close()
	case *ast.FunctionType:
		w.open("fn-type")
		w.sep()
		w.open("params")
		for _, p := range t.ParamTypes {
			w.sep()
			w.writeTypeName(p)
		}
		w.close()
		w.sep()
		w.writeTypeName(t.ReturnType)
		w.close()
	default:
		w.atom("type-unknown")
	}
}
