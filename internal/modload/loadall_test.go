package modload

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLoadAllIndependentModules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "geometry", "a.life"), "pub fn area(): I32 { return 0; }")
	writeFile(t, filepath.Join(root, "user_profile", "a.life"), "pub fn load(): I32 { return 0; }")

	results, err := LoadAll(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		if !r.OK {
			t.Errorf("module %s failed to load", r.Descriptor.DottedPath())
		}
	}
}

func TestLoadAllEmptyRoot(t *testing.T) {
	root := t.TempDir()
	results, err := LoadAll(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}
