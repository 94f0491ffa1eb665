package ast

import "lifec/internal/source"

// VarNameSegment is one dot-separated segment of a VarName, optionally
// carrying explicit type arguments (e.g. `make<I32>`).
type VarNameSegment struct {
	Range      source.Range
	Name       string
	TypeParams []TypeName
}

// VarName is a non-empty dot-separated sequence of segments naming a
// variable, function, or path-qualified value.
type VarName struct {
	Range    source.Range
	Segments []VarNameSegment
}

func (*VarName) exprNode() {}

// String renders the dotted textual form, ignoring type arguments.
func (v *VarName) String() string {
	s := ""
	for i, seg := range v.Segments {
		if i > 0 {
			s += "."
		}
		s += seg.Name
	}
	return s
}

// TypeNameSegment is one dot-separated segment of a PathType.
type TypeNameSegment struct {
	Range      source.Range
	Name       string
	TypeParams []TypeName
}

// PathType is a non-empty dot-separated sequence naming a nominal type,
// e.g. `Std.Collections.Vec<I32>`.
type PathType struct {
	Range    source.Range
	Segments []TypeNameSegment
}

func (*PathType) typeNameNode() {}

// FunctionType is the type of a function value: `fn(T1, T2): R`.
type FunctionType struct {
	Range      source.Range
	ParamTypes []TypeName
	ReturnType TypeName
}

func (*FunctionType) typeNameNode() {}

// TypeName is a tagged union of PathType and FunctionType.
type TypeName interface {
	typeNameNode()
}
