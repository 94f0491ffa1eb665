// Package semctx holds the merged, cross-referenced view of every module
// a compilation run has loaded, and implements the name-resolution rules
// later passes (type-checking, codegen) depend on.
package semctx

import (
	"context"
	"sort"

	"lifec/internal/ast"
	"lifec/internal/modload"
)

// Context maps a module's dotted path to its merged AST. Its map is
// writable only while LoadModules runs; every other method treats it as
// read-only, so no internal locking is needed as long as callers don't
// call LoadModules concurrently with lookups.
type Context struct {
	modules map[string]*ast.Module
}

// New returns an empty Context.
func New() *Context {
	return &Context{modules: make(map[string]*ast.Module)}
}

// LoadModules discovers and loads every module under root, populating the
// Context on success. It returns the per-module load results (so a
// caller can render diagnostics for whichever modules failed) and
// whether every module loaded cleanly. A single failing module still
// leaves the Context holding whatever modules did succeed, matching
// load_module's per-module atomicity without making the whole run an
// all-or-nothing unit.
func (c *Context) LoadModules(ctx context.Context, root string) ([]modload.Result, bool) {
	results, err := modload.LoadAll(ctx, root)
	if err != nil {
		return results, false
	}
	ok := true
	for _, r := range results {
		if !r.OK {
			ok = false
			continue
		}
		c.modules[r.Descriptor.DottedPath()] = r.Module
	}
	return results, ok
}

// GetModule returns the module at path, if loaded.
func (c *Context) GetModule(path string) (*ast.Module, bool) {
	m, ok := c.modules[path]
	return m, ok
}

// ModulePaths returns every loaded module's dotted path, sorted.
func (c *Context) ModulePaths() []string {
	paths := make([]string, 0, len(c.modules))
	for p := range c.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// FindTypeDef scans modulePath's items for a struct, enum, trait, or type
// alias named typeName. The kind check happens while scanning, not after:
// an ImplBlock/TraitImpl can legitimately share typeName with the struct
// or enum it extends (internal/modload exempts those kinds from
// duplicate-name rejection for exactly this reason), so the first
// same-named item in Items isn't necessarily the right one.
func (c *Context) FindTypeDef(modulePath, typeName string) (ast.Item, bool) {
	mod, ok := c.modules[modulePath]
	if !ok {
		return nil, false
	}
	for _, item := range mod.Items {
		if item.ItemName() != typeName {
			continue
		}
		switch item.(type) {
		case *ast.StructDef, *ast.EnumDef, *ast.TraitDef, *ast.TypeAlias:
			return item, true
		}
	}
	return nil, false
}

// FindFuncDef scans modulePath's items for a FuncDef named funcName.
func (c *Context) FindFuncDef(modulePath, funcName string) (*ast.FuncDef, bool) {
	mod, ok := c.modules[modulePath]
	if !ok {
		return nil, false
	}
	for _, item := range mod.Items {
		if fd, ok := item.(*ast.FuncDef); ok && fd.ItemName() == funcName {
			return fd, true
		}
	}
	return nil, false
}

// FindMethodDef scans modulePath's impl blocks and trait implementations
// bound to typeName for a method named methodName.
func (c *Context) FindMethodDef(modulePath, typeName, methodName string) (*ast.FuncDef, bool) {
	mod, ok := c.modules[modulePath]
	if !ok {
		return nil, false
	}
	for _, item := range mod.Items {
		var methods []*ast.FuncDef
		switch it := item.(type) {
		case *ast.ImplBlock:
			if it.ItemName() != typeName {
				continue
			}
			methods = it.Methods
		case *ast.TraitImpl:
			if it.ItemName() != typeName {
				continue
			}
			methods = it.Methods
		default:
			continue
		}
		for _, fd := range methods {
			if fd.Decl.Name == methodName {
				return fd, true
			}
		}
	}
	return nil, false
}
