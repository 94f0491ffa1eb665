package modload

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverModulesDirectoryNaming(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "user_profile", "account.life"), "fn f(): I32 { return 0; }")
	writeFile(t, filepath.Join(root, "std", "collections", "vec.life"), "fn f(): I32 { return 0; }")

	descriptors, err := DiscoverModules(root)
	if err != nil {
		t.Fatal(err)
	}

	byPath := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		byPath[d.DottedPath()] = d
	}

	if _, ok := byPath["User_Profile"]; !ok {
		t.Errorf("missing module User_Profile, got %+v", byPath)
	}
	if _, ok := byPath["Std.Collections"]; !ok {
		t.Errorf("missing module Std.Collections, got %+v", byPath)
	}
}

func TestDiscoverModulesSymlinkRejected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "geometry", "shapes.life"), "fn f(): I32 { return 0; }")

	link := filepath.Join(root, "geo_link")
	if err := os.Symlink(filepath.Join(root, "geometry"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	descriptors, err := DiscoverModules(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range descriptors {
		if d.Directory == link {
			t.Fatalf("symlinked module directory %q was not rejected", link)
		}
	}
	found := false
	for _, d := range descriptors {
		if d.DottedPath() == "Geometry" {
			found = true
		}
	}
	if !found {
		t.Error("real geometry module missing from discovery")
	}
}

func TestDiscoverModulesGroupsByParentDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "geometry", "a.life"), "fn f(): I32 { return 0; }")
	writeFile(t, filepath.Join(root, "geometry", "b.life"), "fn g(): I32 { return 0; }")

	descriptors, err := DiscoverModules(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(descriptors) != 1 {
		t.Fatalf("len(descriptors) = %d, want 1", len(descriptors))
	}
	if len(descriptors[0].FilePaths) != 2 {
		t.Fatalf("len(FilePaths) = %d, want 2", len(descriptors[0].FilePaths))
	}
}
