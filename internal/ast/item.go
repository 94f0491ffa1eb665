package ast

import "lifec/internal/source"

// Item is the tagged union of every module-level declaration.
type Item interface {
	itemNode()
	ItemName() string
	Pub() bool
	ItemRange() source.Range
}

// TypeParam is a single generic parameter name, e.g. the `T` in `<T>`.
type TypeParam struct {
	Range source.Range
	Name  string
}

// FuncParam is one parameter of a FuncDecl.
type FuncParam struct {
	Range source.Range
	IsMut bool
	Name  string
	Type  TypeName // nil if omitted (e.g. `self`)
}

// WhereClause constrains a set of type parameters; kept opaque (raw
// constraint text per parameter) since constraint resolution is a later
// compiler phase.
type WhereClause struct {
	Range       source.Range
	Constraints []string
}

// FuncDecl is a function signature: `fn name<T>(params): ReturnType where ...`.
type FuncDecl struct {
	Range      source.Range
	Name       string
	TypeParams []TypeParam
	Params     []FuncParam
	ReturnType TypeName
	Where      *WhereClause // nil if absent
}

// FuncDef is a function declaration with its body.
type FuncDef struct {
	Range  source.Range
	IsPub  bool
	Decl   FuncDecl
	Body   *Block
}

func (*FuncDef) itemNode()            {}
func (f *FuncDef) ItemName() string   { return f.Decl.Name }
func (f *FuncDef) Pub() bool          { return f.IsPub }
func (f *FuncDef) ItemRange() source.Range { return f.Range }

// StructField is one `name: type` entry of a StructDef.
type StructField struct {
	Range source.Range
	Name  string
	Type  TypeName
	IsPub bool
}

// StructDef declares a struct type.
type StructDef struct {
	Range      source.Range
	IsPub      bool
	Name       string
	TypeParams []TypeParam
	Fields     []StructField
	Where      *WhereClause
}

func (*StructDef) itemNode()          {}
func (s *StructDef) ItemName() string { return s.Name }
func (s *StructDef) Pub() bool        { return s.IsPub }
func (s *StructDef) ItemRange() source.Range { return s.Range }

// EnumVariantKind tags the three EnumVariant shapes.
type EnumVariantKind int

const (
	UnitVariant EnumVariantKind = iota
	TupleVariant
	StructVariant
)

// EnumVariant is one variant of an EnumDef.
type EnumVariant struct {
	Range      source.Range
	Kind       EnumVariantKind
	Name       string
	FieldTypes []TypeName     // TupleVariant
	Fields     []StructField  // StructVariant
}

// EnumDef declares an enum type.
type EnumDef struct {
	Range      source.Range
	IsPub      bool
	Name       string
	TypeParams []TypeParam
	Variants   []EnumVariant
	Where      *WhereClause
}

func (*EnumDef) itemNode()          {}
func (e *EnumDef) ItemName() string { return e.Name }
func (e *EnumDef) Pub() bool        { return e.IsPub }
func (e *EnumDef) ItemRange() source.Range { return e.Range }

// TraitDef declares a trait: associated types plus method signatures.
type TraitDef struct {
	Range      source.Range
	IsPub      bool
	Name       string
	TypeParams []TypeParam
	AssocTypes []string
	Methods    []FuncDecl
	Where      *WhereClause
}

func (*TraitDef) itemNode()          {}
func (t *TraitDef) ItemName() string { return t.Name }
func (t *TraitDef) Pub() bool        { return t.IsPub }
func (t *TraitDef) ItemRange() source.Range { return t.Range }

// ImplBlock is an inherent `impl TypeName { ... }` block.
type ImplBlock struct {
	Range      source.Range
	IsPub      bool
	TypeName   TypeName
	TypeParams []TypeParam
	Methods    []*FuncDef
	Where      *WhereClause
}

func (*ImplBlock) itemNode() {}
func (i *ImplBlock) ItemName() string {
	if pt, ok := i.TypeName.(*PathType); ok && len(pt.Segments) > 0 {
		return pt.Segments[len(pt.Segments)-1].Name
	}
	return ""
}
func (i *ImplBlock) Pub() bool { return i.IsPub }
func (i *ImplBlock) ItemRange() source.Range { return i.Range }

// AssocTypeImpl binds an associated type in a TraitImpl.
type AssocTypeImpl struct {
	Range source.Range
	Name  string
	Type  TypeName
}

// TraitImpl is `impl TraitName for TypeName { ... }`.
type TraitImpl struct {
	Range          source.Range
	IsPub          bool
	TraitName      TypeName
	TypeName       TypeName
	TypeParams     []TypeParam
	AssocTypeImpls []AssocTypeImpl
	Methods        []*FuncDef
	Where          *WhereClause
}

func (*TraitImpl) itemNode() {}
func (t *TraitImpl) ItemName() string {
	if pt, ok := t.TypeName.(*PathType); ok && len(pt.Segments) > 0 {
		return pt.Segments[len(pt.Segments)-1].Name
	}
	return ""
}
func (t *TraitImpl) Pub() bool { return t.IsPub }
func (t *TraitImpl) ItemRange() source.Range { return t.Range }

// TypeAlias is `type Name<T> = AliasedType;`.
type TypeAlias struct {
	Range        source.Range
	IsPub        bool
	Name         string
	TypeParams   []TypeParam
	AliasedType  TypeName
}

func (*TypeAlias) itemNode()          {}
func (t *TypeAlias) ItemName() string { return t.Name }
func (t *TypeAlias) Pub() bool        { return t.IsPub }
func (t *TypeAlias) ItemRange() source.Range { return t.Range }
