package parser

import (
	"lifec/internal/ast"
	"lifec/internal/diag"
	"lifec/internal/source"
)

// ParseModule parses one source file into a Module (imports and items
// only; the dotted module Path is filled in later by the loader that
// merges one or more files into a module). On any parse failure it
// returns a nil Module and an Engine containing at least one error; on
// success it returns a populated Module and an Engine with no errors.
func ParseModule(filename string, src []byte) (*ast.Module, *diag.Engine) {
	sm := source.New(filename, src)
	engine := diag.NewEngine(sm)
	c := newCursor(src, engine)

	mod := &ast.Module{}
	for {
		if !c.skipTrivia() {
			return nil, engine
		}
		if c.atEnd() {
			break
		}
		if c.peekKeyword("import") {
			imp, ok := c.parseImportStatement()
			if !ok {
				return nil, engine
			}
			mod.Imports = append(mod.Imports, *imp)
			continue
		}
		if c.atItemStart() {
			item, ok := c.parseItem()
			if !ok {
				return nil, engine
			}
			mod.Items = append(mod.Items, item)
			continue
		}
		c.errorHere("expected an item or import at module level")
		return nil, engine
	}

	if engine.HasErrors() {
		return nil, engine
	}
	return mod, engine
}

// parseImportStatement parses `import Path.To.Module.{ name [as alias], ... };`.
func (c *cursor) parseImportStatement() (*ast.ImportStatement, bool) {
	start := c.mark()
	c.consumeKeyword("import")
	c.skipTrivia()

	var path []string
	seg, ok := c.parseIdentifier()
	if !ok {
		return nil, false
	}
	path = append(path, seg.Name)
	c.skipTrivia()
	for c.peek() == '.' && isIdentStart(c.peekAt(1)) {
		c.bump()
		s, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		path = append(path, s.Name)
		c.skipTrivia()
	}

	if !c.expectByte('.', ". before import item list") {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('{', "{ to start import item list") {
		return nil, false
	}
	c.skipTrivia()

	var items []ast.UseItem
	for {
		iStart := c.mark()
		nameSeg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		alias := ""
		c.skipTrivia()
		if c.consumeKeyword("as") {
			c.skipTrivia()
			aSeg, ok := c.parseIdentifier()
			if !ok {
				return nil, false
			}
			alias = aSeg.Name
		}
		items = append(items, ast.UseItem{Range: c.rangeFrom(iStart), Name: nameSeg.Name, Alias: alias})
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('}', "} to close import item list") {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte(';', "; to end import statement") {
		return nil, false
	}
	return &ast.ImportStatement{Range: c.rangeFrom(start), ModulePath: path, Items: items}, true
}
