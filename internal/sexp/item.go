package sexp

import "lifec/internal/ast"

func (w *writer) writeItem(item ast.Item) {
	w.sep()
	switch it := item.(type) {
	case *ast.FuncDef:
		w.writeFuncDef(it)
	case *ast.StructDef:
		w.writeStructDef(it)
	case *ast.EnumDef:
		w.writeEnumDef(it)
	case *ast.TraitDef:
		w.writeTraitDef(it)
	case *ast.ImplBlock:
		w.writeImplBlock(it)
	case *ast.TraitImpl:
		w.writeTraitImpl(it)
	case *ast.TypeAlias:
		w.writeTypeAlias(it)
	default:
		w.open("item-unknown")
		w.close()
	}
}

func (w *writer) pubFlag(isPub bool) {
	if isPub {
		w.atom("pub")
	}
}

func (w *writer) writeTypeParams(params []ast.TypeParam) {
	if len(params) == 0 {
		return
	}
	w.sep()
	w.open("type-params")
	for _, p := range params {
		w.atom(p.Name)
	}
	w.close()
}

func (w *writer) writeFuncDecl(decl ast.FuncDecl) {
	w.atom(decl.Name)
	w.writeTypeParams(decl.TypeParams)
	w.sep()
	w.open("params")
	for _, p := range decl.Params {
		w.sep()
		w.open("param")
		if p.IsMut {
			w.atom("mut")
		}
		w.atom(p.Name)
		if p.Type != nil {
			w.writeTypeName(p.Type)
		}
		w.close()
	}
	w.close()
	w.sep()
	w.open("return")
	w.writeTypeName(decl.ReturnType)
	w.close()
}

func (w *writer) writeFuncDef(fd *ast.FuncDef) {
	w.open("fn")
	w.pubFlag(fd.IsPub)
	w.writeFuncDecl(fd.Decl)
	if fd.Body != nil {
		w.sep()
		w.writeBlock(fd.Body)
	}
	w.close()
}

func (w *writer) writeStructDef(sd *ast.StructDef) {
	w.open("struct")
	w.pubFlag(sd.IsPub)
	w.atom(sd.Name)
	w.writeTypeParams(sd.TypeParams)
	for _, f := range sd.Fields {
		w.sep()
		w.open("field")
		w.pubFlag(f.IsPub)
		w.atom(f.Name)
		w.writeTypeName(f.Type)
		w.close()
	}
	w.close()
}

func (w *writer) writeEnumDef(ed *ast.EnumDef) {
	w.open("enum")
	w.pubFlag(ed.IsPub)
	w.atom(ed.Name)
	w.writeTypeParams(ed.TypeParams)
	for _, v := range ed.Variants {
		w.sep()
		w.open("variant")
		w.atom(v.Name)
		switch v.Kind {
		case ast.TupleVariant:
			for _, t := range v.FieldTypes {
				w.sep()
				w.writeTypeName(t)
			}
		case ast.StructVariant:
			for _, f := range v.Fields {
				w.sep()
				w.open("field")
				w.atom(f.Name)
				w.writeTypeName(f.Type)
				w.close()
			}
		}
		w.close()
	}
	w.close()
}

func (w *writer) writeTraitDef(td *ast.TraitDef) {
	w.open("trait")
	w.pubFlag(td.IsPub)
	w.atom(td.Name)
	w.writeTypeParams(td.TypeParams)
	for _, a := range td.AssocTypes {
		w.sep()
		w.open("assoc-type")
		w.atom(a)
		w.close()
	}
	for _, m := range td.Methods {
		w.sep()
		w.open("method-decl")
		w.writeFuncDecl(m)
		w.close()
	}
	w.close()
}

func (w *writer) writeImplBlock(ib *ast.ImplBlock) {
	w.open("impl")
	w.pubFlag(ib.IsPub)
	w.sep()
	w.writeTypeName(ib.TypeName)
	w.writeTypeParams(ib.TypeParams)
	for _, m := range ib.Methods {
		w.sep()
		w.writeFuncDef(m)
	}
	w.close()
}

func (w *writer) writeTraitImpl(ti *ast.TraitImpl) {
	w.open("trait-impl")
	w.pubFlag(ti.IsPub)
	w.sep()
	w.writeTypeName(ti.TraitName)
	w.sep()
	w.writeTypeName(ti.TypeName)
	w.writeTypeParams(ti.TypeParams)
	for _, a := range ti.AssocTypeImpls {
		w.sep()
		w.open("assoc-type")
		w.atom(a.Name)
		w.writeTypeName(a.Type)
		w.close()
	}
	for _, m := range ti.Methods {
		w.sep()
		w.writeFuncDef(m)
	}
	w.close()
}

func (w *writer) writeTypeAlias(ta *ast.TypeAlias) {
	w.open("type-alias")
	w.pubFlag(ta.IsPub)
	w.atom(ta.Name)
	w.writeTypeParams(ta.TypeParams)
	w.sep()
	w.writeTypeName(ta.AliasedType)
	w.close()
}
