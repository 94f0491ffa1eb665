package modload

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadModuleMergesFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "geometry", "a.life"), "pub fn area(): I32 { return 0; }")
	writeFile(t, filepath.Join(root, "geometry", "b.life"), "pub fn perimeter(): I32 { return 0; }")

	descriptors, err := DiscoverModules(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(descriptors) != 1 {
		t.Fatalf("len(descriptors) = %d, want 1", len(descriptors))
	}

	res := LoadModule(descriptors[0])
	if !res.OK {
		t.Fatalf("load failed: %+v", res.Engines)
	}
	if len(res.Module.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(res.Module.Items))
	}
}

func TestLoadModuleDuplicateRejected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "geometry", "a.life"), "pub fn helper(): I32 { return 1; }")
	writeFile(t, filepath.Join(root, "geometry", "b.life"), "pub fn helper(): I32 { return 2; }")

	descriptors, err := DiscoverModules(root)
	if err != nil {
		t.Fatal(err)
	}
	res := LoadModule(descriptors[0])
	if res.OK {
		t.Fatal("expected load to fail on duplicate definition")
	}

	foundDup := false
	for _, eng := range res.Engines {
		if eng == nil {
			continue
		}
		for _, d := range eng.Diagnostics() {
			if strings.Contains(d.Message, "duplicate") && strings.Contains(d.Message, "helper") {
				foundDup = true
			}
		}
	}
	if !foundDup {
		t.Error("no diagnostic mentioned 'duplicate' and 'helper'")
	}
}

func TestLoadModuleParseFailureAborts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken", "a.life"), "fn helper(): I32 { return 007; }")

	descriptors, err := DiscoverModules(root)
	if err != nil {
		t.Fatal(err)
	}
	res := LoadModule(descriptors[0])
	if res.OK {
		t.Fatal("expected load to fail on parse error")
	}
	if res.Module != nil {
		t.Error("Module should be nil on failure")
	}
}
