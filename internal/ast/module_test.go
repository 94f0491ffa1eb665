package ast

import "testing"

func TestModuleFindItem(t *testing.T) {
	m := &Module{
		Path: "Main",
		Items: []Item{
			&FuncDef{Decl: FuncDecl{Name: "helper"}},
			&StructDef{Name: "Point"},
		},
	}

	if got := m.FindItem("helper"); got == nil {
		t.Fatalf("FindItem(helper) = nil, want FuncDef")
	}
	if got := m.FindItem("Point"); got == nil {
		t.Fatalf("FindItem(Point) = nil, want StructDef")
	}
	if got := m.FindItem("missing"); got != nil {
		t.Errorf("FindItem(missing) = %v, want nil", got)
	}
}

func TestVarNameString(t *testing.T) {
	v := &VarName{Segments: []VarNameSegment{{Name: "Geometry"}, {Name: "Point"}}}
	if got, want := v.String(), "Geometry.Point"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestItemPubAndName(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		wantName string
		wantPub  bool
	}{
		{"func", &FuncDef{IsPub: true, Decl: FuncDecl{Name: "f"}}, "f", true},
		{"struct", &StructDef{IsPub: false, Name: "S"}, "S", false},
		{"enum", &EnumDef{IsPub: true, Name: "E"}, "E", true},
		{"alias", &TypeAlias{Name: "A"}, "A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.ItemName(); got != tt.wantName {
				t.Errorf("ItemName() = %q, want %q", got, tt.wantName)
			}
			if got := tt.item.Pub(); got != tt.wantPub {
				t.Errorf("Pub() = %v, want %v", got, tt.wantPub)
			}
		})
	}
}
