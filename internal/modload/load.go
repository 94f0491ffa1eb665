package modload

import (
	"fmt"
	"os"

	"lifec/internal/ast"
	"lifec/internal/diag"
	"lifec/internal/parser"
	"lifec/internal/source"
)

// Result is the outcome of loading one Descriptor. Engines holds one
// diagnostic engine per file in Descriptor.FilePaths order, regardless of
// success, so a caller can render whichever ones carry errors. Module is
// nil unless OK is true: a module load is all-or-nothing.
type Result struct {
	Descriptor Descriptor
	Module     *ast.Module
	Engines    []*diag.Engine
	OK         bool
}

// itemKindCollides reports whether i participates in a module's flat
// name namespace. Inherent impl blocks and trait implementations are
// named after the type they extend, and a type legitimately gathers more
// than one of each, so they are exempt from duplicate-name rejection.
func itemKindCollides(i ast.Item) bool {
	switch i.(type) {
	case *ast.ImplBlock, *ast.TraitImpl:
		return false
	default:
		return true
	}
}

// LoadModule parses every file named by desc, in order, and merges the
// results into a single Module. Any read failure, parse failure, or
// duplicate item name aborts the whole load: Module is left nil and OK
// is false, but Engines still carries one engine per file so the caller
// can report why.
func LoadModule(desc Descriptor) Result {
	engines := make([]*diag.Engine, len(desc.FilePaths))
	mod := &ast.Module{Path: desc.DottedPath()}
	seen := make(map[string]source.Range)
	ok := true

	for i, path := range desc.FilePaths {
		src, err := os.ReadFile(path)
		if err != nil {
			sm := source.New(path, nil)
			eng := diag.NewEngine(sm)
			eng.AddError(source.Range{}, fmt.Sprintf("failed to read %s: %v", path, err))
			engines[i] = eng
			ok = false
			continue
		}

		fileMod, eng := parser.ParseModule(path, src)
		engines[i] = eng
		if eng.HasErrors() || fileMod == nil {
			ok = false
			continue
		}

		mod.Imports = append(mod.Imports, fileMod.Imports...)
		for _, item := range fileMod.Items {
			name := item.ItemName()
			if itemKindCollides(item) {
				if _, dup := seen[name]; dup {
					eng.AddError(item.ItemRange(), fmt.Sprintf("duplicate definition of '%s'", name))
					ok = false
					continue
				}
				seen[name] = item.ItemRange()
			}
			mod.Items = append(mod.Items, item)
		}
	}

	if !ok {
		return Result{Descriptor: desc, Engines: engines, OK: false}
	}
	return Result{Descriptor: desc, Module: mod, Engines: engines, OK: true}
}
