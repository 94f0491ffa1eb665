package symtab

import "testing"

func TestChainShadowing(t *testing.T) {
	c := NewChain()
	c.DefineValue(&Symbol{Name: "x", Kind: SymbolVariable, Type: NewPrimitive(I32)})

	c.Push()
	c.DefineValue(&Symbol{Name: "x", Kind: SymbolVariable, Type: NewPrimitive(Bool)})
	sym, ok := c.LookupValue("x")
	if !ok {
		t.Fatal("expected x to resolve")
	}
	if sym.Type.Kind != KindPrimitive || sym.Type.Primitive != Bool {
		t.Errorf("inner x = %v, want Bool", sym.Type)
	}

	c.Pop()
	sym, ok = c.LookupValue("x")
	if !ok {
		t.Fatal("expected x to resolve after pop")
	}
	if sym.Type.Primitive != I32 {
		t.Errorf("outer x = %v, want I32", sym.Type)
	}
}

func TestChainValuesAndTypesSeparate(t *testing.T) {
	c := NewChain()
	c.DefineValue(&Symbol{Name: "Point", Kind: SymbolVariable, Type: NewPrimitive(I32)})
	c.DefineType(&Symbol{Name: "Point", Kind: SymbolType, Type: Type{Kind: KindStruct, Name: "Point"}})

	v, ok := c.LookupValue("Point")
	if !ok || v.Kind != SymbolVariable {
		t.Fatal("expected value-table Point to be a variable")
	}
	ty, ok := c.LookupType("Point")
	if !ok || ty.Kind != SymbolType {
		t.Fatal("expected type-table Point to be a type")
	}
}

func TestChainLookupMiss(t *testing.T) {
	c := NewChain()
	if _, ok := c.LookupValue("nowhere"); ok {
		t.Error("expected lookup miss for undefined name")
	}
}

func TestChainPopOutermostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic popping the outermost scope")
		}
	}()
	c := NewChain()
	c.Pop()
}
