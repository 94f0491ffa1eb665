package semctx

import (
	"strings"

	"lifec/internal/ast"
)

// ResolveTypeName resolves a type name used inside currentModule. Only a
// *ast.PathType carries a resolvable dotted name; a *ast.FunctionType
// never does.
func (c *Context) ResolveTypeName(currentModule string, tn ast.TypeName) (definingModule string, item ast.Item, ok bool) {
	pt, isPath := tn.(*ast.PathType)
	if !isPath {
		return "", nil, false
	}
	segments := make([]string, len(pt.Segments))
	for i, s := range pt.Segments {
		segments[i] = s.Name
	}
	return c.resolve(currentModule, segments, isTypeDefItem)
}

// ResolveVarName resolves a value name (a function; `life` has no
// module-level variable bindings) used inside currentModule.
func (c *Context) ResolveVarName(currentModule string, vn *ast.VarName) (definingModule string, item ast.Item, ok bool) {
	segments := make([]string, len(vn.Segments))
	for i, s := range vn.Segments {
		segments[i] = s.Name
	}
	return c.resolve(currentModule, segments, isFuncDefItem)
}

// isTypeDefItem reports whether item is one of the kinds find_type_def
// scans for: struct, enum, trait, or type alias.
func isTypeDefItem(item ast.Item) bool {
	switch item.(type) {
	case *ast.StructDef, *ast.EnumDef, *ast.TraitDef, *ast.TypeAlias:
		return true
	default:
		return false
	}
}

// isFuncDefItem reports whether item is the kind find_func_def scans for.
func isFuncDefItem(item ast.Item) bool {
	_, ok := item.(*ast.FuncDef)
	return ok
}

// findItemByKind scans mod's items for one named name that also satisfies
// matches, checking the kind while scanning rather than returning the
// first same-named item regardless of kind: an ImplBlock/TraitImpl can
// legitimately share a name with the type it extends.
func findItemByKind(mod *ast.Module, name string, matches func(ast.Item) bool) ast.Item {
	for _, it := range mod.Items {
		if it.ItemName() == name && matches(it) {
			return it
		}
	}
	return nil
}

// resolve implements the shared lookup algorithm for both type and value
// names: a fully qualified name (two or more segments) is looked up
// directly and must be public; a single-segment name first checks the
// current module's own items (a local match wins even when an import
// also provides the name), then each import's aliased item list. matches
// restricts the scan to the item kinds appropriate for the caller (types
// for ResolveTypeName, functions for ResolveVarName).
func (c *Context) resolve(currentModule string, segments []string, matches func(ast.Item) bool) (string, ast.Item, bool) {
	if len(segments) == 0 {
		return "", nil, false
	}
	name := segments[len(segments)-1]

	if len(segments) >= 2 {
		modPath := strings.Join(segments[:len(segments)-1], ".")
		mod, ok := c.modules[modPath]
		if !ok {
			return "", nil, false
		}
		item := findItemByKind(mod, name, matches)
		if item == nil || !item.Pub() {
			return "", nil, false
		}
		return modPath, item, true
	}

	mod, hasCurrent := c.modules[currentModule]
	if hasCurrent {
		if item := findItemByKind(mod, name, matches); item != nil {
			return currentModule, item, true
		}
	}
	if !hasCurrent {
		return "", nil, false
	}

	for _, imp := range mod.Imports {
		importedPath := strings.Join(imp.ModulePath, ".")
		for _, use := range imp.Items {
			exposedAs := use.Name
			if use.Alias != "" {
				exposedAs = use.Alias
			}
			if exposedAs != name {
				continue
			}
			importedMod, ok := c.modules[importedPath]
			if !ok {
				continue
			}
			item := findItemByKind(importedMod, use.Name, matches)
			if item == nil || !item.Pub() {
				continue
			}
			return importedPath, item, true
		}
	}
	return "", nil, false
}
