package semctx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lifec/internal/ast"
)

func writeLife(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadModulesPopulatesContext(t *testing.T) {
	root := t.TempDir()
	writeLife(t, filepath.Join(root, "geometry", "shapes.life"), `
pub struct Point { x: I32, y: I32 }
pub fn area(): I32 { return 0; }
`)

	c := New()
	_, ok := c.LoadModules(context.Background(), root)
	if !ok {
		t.Fatal("expected LoadModules to succeed")
	}

	mod, found := c.GetModule("Geometry")
	if !found {
		t.Fatal("module Geometry not loaded")
	}
	if _, ok := c.FindTypeDef("Geometry", "Point"); !ok {
		t.Error("FindTypeDef did not find Point")
	}
	if _, ok := c.FindFuncDef("Geometry", "area"); !ok {
		t.Error("FindFuncDef did not find area")
	}
	if len(mod.Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(mod.Items))
	}
}

func TestLoadModulesReportsFailure(t *testing.T) {
	root := t.TempDir()
	writeLife(t, filepath.Join(root, "broken", "a.life"), "fn f(): I32 { return 007; }")

	c := New()
	results, ok := c.LoadModules(context.Background(), root)
	if ok {
		t.Fatal("expected LoadModules to report failure")
	}
	if len(results) != 1 || results[0].OK {
		t.Fatalf("results = %+v, want one failing result", results)
	}
}

func TestFindMethodDef(t *testing.T) {
	root := t.TempDir()
	writeLife(t, filepath.Join(root, "geometry", "shapes.life"), `
pub struct Point { x: I32, y: I32 }
impl Point {
    fn distance(self): I32 { return 0; }
}
`)
	c := New()
	if _, ok := c.LoadModules(context.Background(), root); !ok {
		t.Fatal("load failed")
	}
	fd, ok := c.FindMethodDef("Geometry", "Point", "distance")
	if !ok {
		t.Fatal("expected to find method distance on Point")
	}
	if fd.Decl.Name != "distance" {
		t.Errorf("Decl.Name = %q, want distance", fd.Decl.Name)
	}
}

func TestFindTypeDefSkipsImplBlockSharingName(t *testing.T) {
	root := t.TempDir()
	writeLife(t, filepath.Join(root, "geometry", "shapes.life"), `
impl Point {
    fn distance(self): I32 { return 0; }
}
pub struct Point { x: I32, y: I32 }
`)
	c := New()
	if _, ok := c.LoadModules(context.Background(), root); !ok {
		t.Fatal("load failed")
	}
	// Items[0] is the ImplBlock (same name "Point" as the struct it
	// extends); FindTypeDef must skip past it to the StructDef rather
	// than returning the first Items entry whose ItemName matches.
	item, ok := c.FindTypeDef("Geometry", "Point")
	if !ok {
		t.Fatal("FindTypeDef did not find Point")
	}
	if _, isStruct := item.(*ast.StructDef); !isStruct {
		t.Fatalf("FindTypeDef returned %T, want *ast.StructDef", item)
	}
}

func TestModulePathsSorted(t *testing.T) {
	c := New()
	c.modules["Zeta"] = nil
	c.modules["Alpha"] = nil
	paths := c.ModulePaths()
	if len(paths) != 2 || paths[0] != "Alpha" || paths[1] != "Zeta" {
		t.Errorf("ModulePaths() = %v, want [Alpha Zeta]", paths)
	}
}
