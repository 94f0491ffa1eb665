package symtab

import "testing"

func TestTypeStringFixedForms(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want string
	}{
		{"primitive", NewPrimitive(I32), "I32"},
		{"unit", Unit, "()"},
		{"error", ErrorType, "<error>"},
		{"sized array", NewArray(NewPrimitive(I32), 4), "[I32; 4]"},
		{"slice", NewSlice(NewPrimitive(U8)), "[U8]"},
		{"tuple", NewTuple([]Type{NewPrimitive(I32), NewPrimitive(Bool)}), "(I32, Bool)"},
		{"empty tuple", NewTuple(nil), "()"},
		{"function", NewFunction([]Type{NewPrimitive(I32), NewPrimitive(I32)}, NewPrimitive(Bool)), "fn(I32, I32): Bool"},
		{"function no params", NewFunction(nil, Unit), "fn(): ()"},
		{"generic", NewGeneric("T"), "T"},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("%s: String() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestTypeEqual(t *testing.T) {
	a := NewArray(NewPrimitive(I32), 3)
	b := NewArray(NewPrimitive(I32), 3)
	c := NewArray(NewPrimitive(I32), 4)
	if !a.Equal(b) {
		t.Error("identical array types should be equal")
	}
	if a.Equal(c) {
		t.Error("arrays of different length should not be equal")
	}
}

func TestErrorTypeNeverEqual(t *testing.T) {
	if ErrorType.Equal(ErrorType) {
		t.Error("the error type should never equal itself")
	}
	if NewPrimitive(I32).Equal(ErrorType) {
		t.Error("a concrete type should never equal the error type")
	}
}

func TestStructEnumEquality(t *testing.T) {
	point := Type{Kind: KindStruct, Name: "Point", Fields: []Field{{Name: "x", Type: NewPrimitive(I32)}}}
	samePoint := Type{Kind: KindStruct, Name: "Point", Fields: []Field{{Name: "x", Type: NewPrimitive(I32)}}}
	other := Type{Kind: KindStruct, Name: "Circle"}
	if !point.Equal(samePoint) {
		t.Error("structs with the same name and type params should be equal")
	}
	if point.Equal(other) {
		t.Error("differently named structs should not be equal")
	}
}
