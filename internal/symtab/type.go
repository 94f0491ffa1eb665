// Package symtab implements the scope chain and type-value model used by
// later compiler passes (type-checking, codegen) to resolve names and
// describe the types those names carry.
package symtab

import (
	"strconv"
	"strings"
)

// Kind tags the shape of a Type value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindUnit
	KindError
	KindStruct
	KindEnum
	KindFunction
	KindArray
	KindTuple
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindUnit:
		return "unit"
	case KindError:
		return "error"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindFunction:
		return "function"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindGeneric:
		return "generic"
	default:
		return "invalid"
	}
}

// Primitive enumerates the language's built-in scalar types.
type Primitive uint8

const (
	I8 Primitive = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	Bool
	Char
	String
)

func (p Primitive) String() string {
	switch p {
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case String:
		return "String"
	default:
		return "<invalid-primitive>"
	}
}

// Field is one named, typed member of a Struct type.
type Field struct {
	Name string
	Type Type
}

// Variant is one member of an Enum type; Fields is non-empty only for
// struct-shaped variants, and is otherwise ignored (tuple-shaped variants
// aren't a distinct Type concern — they show up in the owning EnumDef).
type Variant struct {
	Name   string
	Fields []Field
}

// Type is a tagged union over every value-level type the symbol table
// tracks. Only the fields relevant to Kind are meaningful.
type Type struct {
	Kind       Kind
	Primitive  Primitive      // KindPrimitive
	Name       string         // KindStruct, KindEnum, KindGeneric
	TypeParams []string       // KindStruct, KindEnum
	Fields     []Field        // KindStruct
	Variants   []Variant      // KindEnum
	Params     []Type         // KindFunction
	Result     *Type          // KindFunction
	Elem       *Type          // KindArray
	Length     *int           // KindArray; nil means unsized ([T] rather than [T; N])
	Elements   []Type         // KindTuple
}

// Unit is the zero-size `()` type.
var Unit = Type{Kind: KindUnit}

// ErrorType is the sentinel type attached to an expression whose type
// could not be determined; it equals nothing, including itself, so it
// never masks a real type-mismatch diagnostic downstream.
var ErrorType = Type{Kind: KindError}

// NewPrimitive builds a primitive Type.
func NewPrimitive(p Primitive) Type {
	return Type{Kind: KindPrimitive, Primitive: p}
}

// NewArray builds a fixed-length array type [elem; n].
func NewArray(elem Type, n int) Type {
	return Type{Kind: KindArray, Elem: &elem, Length: &n}
}

// NewSlice builds an unsized array type [elem].
func NewSlice(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

// NewFunction builds a function type fn(params...): result.
func NewFunction(params []Type, result Type) Type {
	return Type{Kind: KindFunction, Params: params, Result: &result}
}

// NewTuple builds a tuple type (elements...).
func NewTuple(elements []Type) Type {
	return Type{Kind: KindTuple, Elements: elements}
}

// NewGeneric builds a reference to a type parameter.
func NewGeneric(name string) Type {
	return Type{Kind: KindGeneric, Name: name}
}

// String renders t using the fixed textual form type-checking diagnostics
// rely on: primitives print their mnemonic, functions print
// `fn(T1, …, Tn): R`, arrays print `[T; N]` or `[T]`, tuples print
// `(T1, T2, …)`, the unit type prints `()`, and the error type prints
// `<error>`.
func (t Type) String() string {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive.String()
	case KindUnit:
		return "()"
	case KindError:
		return "<error>"
	case KindStruct, KindEnum, KindGeneric:
		return t.Name
	case KindFunction:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		result := "()"
		if t.Result != nil {
			result = t.Result.String()
		}
		return "fn(" + strings.Join(parts, ", ") + "): " + result
	case KindArray:
		elem := "<invalid>"
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		if t.Length != nil {
			return "[" + elem + "; " + strconv.Itoa(*t.Length) + "]"
		}
		return "[" + elem + "]"
	case KindTuple:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<invalid>"
	}
}

// Equal reports whether t and other are structurally identical. Struct,
// enum and generic types compare by Name and TypeParams only; their
// Fields and Variants are not compared. The error type never equals
// anything, not even another error type, so it can't silently mask a
// real mismatch.
func (t Type) Equal(other Type) bool {
	if t.Kind == KindError || other.Kind == KindError {
		return false
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive == other.Primitive
	case KindUnit:
		return true
	case KindStruct, KindEnum, KindGeneric:
		return t.Name == other.Name && equalStrings(t.TypeParams, other.TypeParams)
	case KindFunction:
		if !equalTypes(t.Params, other.Params) {
			return false
		}
		if (t.Result == nil) != (other.Result == nil) {
			return false
		}
		return t.Result == nil || t.Result.Equal(*other.Result)
	case KindArray:
		if (t.Elem == nil) != (other.Elem == nil) {
			return false
		}
		if t.Elem != nil && !t.Elem.Equal(*other.Elem) {
			return false
		}
		if (t.Length == nil) != (other.Length == nil) {
			return false
		}
		return t.Length == nil || *t.Length == *other.Length
	case KindTuple:
		return equalTypes(t.Elements, other.Elements)
	default:
		return false
	}
}

func equalTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
