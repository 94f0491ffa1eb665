package parser

import "lifec/internal/ast"

// parsePattern parses the patterns used by let bindings, for-loops, and
// match arms.
func (c *cursor) parsePattern() (ast.Pattern, bool) {
	c.skipTrivia()
	start := c.mark()

	if c.peek() == '_' && !isIdentContinue(c.peekAt(1)) {
		c.bump()
		return &ast.WildcardPattern{Range: c.rangeFrom(start)}, true
	}

	if isDigit(c.peek()) || c.peek() == '"' || c.peek() == '\'' || c.peek() == '-' {
		expr, ok := c.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.LiteralPattern{Range: c.rangeFrom(start), Expr: expr}, true
	}

	if c.peek() == '(' {
		c.bump()
		c.skipTrivia()
		var elems []ast.Pattern
		if c.peek() != ')' {
			for {
				p, ok := c.parsePattern()
				if !ok {
					return nil, false
				}
				elems = append(elems, p)
				c.skipTrivia()
				if c.consumeByte(',') {
					c.skipTrivia()
					continue
				}
				break
			}
		}
		if !c.expectByte(')', ") to close tuple pattern") {
			return nil, false
		}
		return &ast.TuplePattern{Range: c.rangeFrom(start), Elements: elems}, true
	}

	if isIdentStart(c.peek()) {
		isUpper := isUpperASCII(c.peek())
		typeName, ok := c.parsePathType()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		if isUpper {
			if c.peek() == '{' {
				return c.parseStructPatternTail(typeName, start)
			}
			if c.peek() == '(' {
				return c.parseEnumPatternTail(typeName, start)
			}
		}
		if len(typeName.Segments) == 1 && len(typeName.Segments[0].TypeParams) == 0 {
			return &ast.SimplePattern{Range: c.rangeFrom(start), Name: typeName.Segments[0].Name}, true
		}
		return &ast.EnumPattern{Range: c.rangeFrom(start), TypeName: typeName}, true
	}

	c.errorHere("expected pattern")
	return nil, false
}

func (c *cursor) parseStructPatternTail(tn ast.TypeName, start mark) (ast.Pattern, bool) {
	c.bump() // '{'
	c.skipTrivia()
	var fields []ast.FieldPattern
	for c.peek() != '}' {
		fStart := c.mark()
		nameSeg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		if !c.expectByte(':', ": in struct pattern field") {
			return nil, false
		}
		c.skipTrivia()
		pat, ok := c.parsePattern()
		if !ok {
			return nil, false
		}
		fields = append(fields, ast.FieldPattern{Range: c.rangeFrom(fStart), Name: nameSeg.Name, Pattern: pat})
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('}', "} to close struct pattern") {
		return nil, false
	}
	return &ast.StructPattern{Range: c.rangeFrom(start), TypeName: tn, Fields: fields}, true
}

func (c *cursor) parseEnumPatternTail(tn ast.TypeName, start mark) (ast.Pattern, bool) {
	c.bump() // '('
	c.skipTrivia()
	var subs []ast.Pattern
	if c.peek() != ')' {
		for {
			p, ok := c.parsePattern()
			if !ok {
				return nil, false
			}
			subs = append(subs, p)
			c.skipTrivia()
			if c.consumeByte(',') {
				c.skipTrivia()
				continue
			}
			break
		}
	}
	if !c.expectByte(')', ") to close enum pattern") {
		return nil, false
	}
	return &ast.EnumPattern{Range: c.rangeFrom(start), TypeName: tn, SubPatterns: subs}, true
}
