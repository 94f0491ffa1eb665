package ast

import "lifec/internal/source"

// UseItem is one `name [as alias]` entry of an ImportStatement.
type UseItem struct {
	Range source.Range
	Name  string
	Alias string // "" if absent
}

// ImportStatement is `import Path.To.Module.{ use_item, ... };`.
type ImportStatement struct {
	Range      source.Range
	ModulePath []string
	Items      []UseItem
}

// Module is every file of a directory parsed and merged into one tree:
// the concatenation of their imports and items.
type Module struct {
	// Path is the dotted module path, e.g. "Std.Collections".
	Path string

	Imports []ImportStatement
	Items   []Item
}

// FindItem returns the first item with the given name, or nil if absent.
// Module load only guarantees uniqueness within the kinds it checks for
// collision (internal/modload deliberately exempts ImplBlock/TraitImpl,
// since a type legitimately gathers more than one); a module can validly
// contain both a StructDef and an ImplBlock/TraitImpl sharing its name, so
// callers that care about a specific kind must filter by kind while they
// scan rather than call FindItem and test the result afterward.
func (m *Module) FindItem(name string) Item {
	for _, it := range m.Items {
		if it.ItemName() == name {
			return it
		}
	}
	return nil
}
