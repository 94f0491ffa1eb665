package sexp

import "lifec/internal/ast"

var binaryOpNames = map[ast.BinaryOp]string{
	ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/", ast.Mod: "%",
	ast.Lt: "<", ast.Gt: ">", ast.Le: "<=", ast.Ge: ">=",
	ast.Eq: "==", ast.Ne: "!=", ast.And: "&&", ast.Or: "||",
	ast.BitAnd: "&", ast.BitOr: "|", ast.BitXor: "^", ast.Shl: "<<", ast.Shr: ">>",
}

var unaryOpNames = map[ast.UnaryOp]string{
	ast.Neg: "-", ast.Pos: "+", ast.Not: "!", ast.BitNot: "~",
}

func (w *writer) writeExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Integer:
		w.open("int")
		w.atom(e.Digits)
		w.close()
	case *ast.Float:
		w.open("float")
		w.atom(e.Digits)
		w.close()
	case *ast.String:
		w.open("string")
		w.atom(e.Raw)
		w.close()
	case *ast.Char:
		w.open("char")
		w.atom(e.Raw)
		w.close()
	case *ast.Unit:
		w.atom("unit")
	case *ast.VarName:
		w.atom(e.String())
	case *ast.StructLiteral:
		w.open("struct-lit")
		w.sep()
		w.writeTypeName(e.TypeName)
		for _, f := range e.Fields {
			w.sep()
			w.open("field")
			w.atom(f.Name)
			w.sep()
			w.writeExpr(f.Value)
			w.close()
		}
		w.close()
	case *ast.FieldAccess:
		w.open("field-access")
		w.sep()
		w.writeExpr(e.Object)
		w.atom(e.Field)
		w.close()
	case *ast.FuncCall:
		w.open("call")
		w.atom(e.Name.String())
		for _, a := range e.Args {
			w.sep()
			w.writeExpr(a)
		}
		w.close()
	case *ast.Unary:
		w.open("unary")
		w.atom(unaryOpNames[e.Op])
		w.sep()
		w.writeExpr(e.Operand)
		w.close()
	case *ast.Binary:
		w.open("binary")
		w.atom(binaryOpNames[e.Op])
		w.sep()
		w.writeExpr(e.LHS)
		w.sep()
		w.writeExpr(e.RHS)
		w.close()
	case *ast.RangeExpr:
		w.open("range")
		if e.Inclusive {
			w.atom("inclusive")
		} else {
			w.atom("exclusive")
		}
		w.sep()
		w.writeExpr(e.Start)
		w.sep()
		w.writeExpr(e.End)
		w.close()
	case *ast.Assignment:
		w.open("assign")
		w.sep()
		w.writeExpr(e.Target)
		w.sep()
		w.writeExpr(e.Value)
		w.close()
	case *ast.If:
		w.open("if")
		w.sep()
		w.writeExpr(e.Condition)
		w.sep()
		w.writeBlock(e.Then)
		for _, ei := range e.ElseIfs {
			w.sep()
			w.open("else-if")
			w.sep()
			w.writeExpr(ei.Condition)
			w.sep()
			w.writeBlock(ei.Block)
			w.close()
		}
		if e.ElseBlock != nil {
			w.sep()
			w.open("else")
			w.sep()
			w.writeBlock(e.ElseBlock)
			w.close()
		}
		w.close()
	case *ast.While:
		w.open("while")
		w.sep()
		w.writeExpr(e.Condition)
		w.sep()
		w.writeBlock(e.Body)
		w.close()
	case *ast.For:
		w.open("for")
		w.sep()
		w.writePattern(e.Pattern)
		w.sep()
		w.writeExpr(e.Iterator)
		w.sep()
		w.writeBlock(e.Body)
		w.close()
	case *ast.Match:
		w.open("match")
		w.sep()
		w.writeExpr(e.Scrutinee)
		for _, arm := range e.Arms {
			w.sep()
			w.open("arm")
			w.sep()
			w.writePattern(arm.Pattern)
			if arm.Guard != nil {
				w.sep()
				w.open("guard")
				w.sep()
				w.writeExpr(arm.Guard)
				w.close()
			}
			w.sep()
			w.writeExpr(arm.Result)
			w.close()
		}
		w.close()
	case *ast.Block:
		w.writeBlock(e)
	default:
		w.atom("expr-unknown")
	}
}
