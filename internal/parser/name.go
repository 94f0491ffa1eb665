package parser

import "lifec/internal/ast"

// typeParamDepthLenAt returns the byte length of a balanced `<...>` run
// starting at delta bytes ahead of the cursor (0 if none), counting
// nesting depth so `<A<B>>` is consumed as one run.
func (c *cursor) typeParamDepthLenAt(delta uint32) uint32 {
	if c.peekAt(delta) != '<' {
		return 0
	}
	depth := 0
	n := uint32(0)
	for {
		b := c.peekAt(delta + n)
		if b == 0 {
			return 0
		}
		switch b {
		case '<':
			depth++
		case '>':
			depth--
		}
		n++
		if depth == 0 {
			return n
		}
	}
}

// parseTypeParamsArgs parses an optional `<T1, T2>` type-argument list.
func (c *cursor) parseTypeParamsArgs() ([]ast.TypeName, bool) {
	if c.peek() != '<' {
		return nil, true
	}
	c.bump()
	c.skipTrivia()
	var params []ast.TypeName
	if c.peek() == '>' {
		c.bump()
		return params, true
	}
	for {
		t, ok := c.parseTypeName()
		if !ok {
			return nil, false
		}
		params = append(params, t)
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('>', "> to close type argument list") {
		return nil, false
	}
	return params, true
}

// parseVarName parses a dot-separated VarName, each segment optionally
// carrying a `<...>` type-argument list.
func (c *cursor) parseVarName() (*ast.VarName, bool) {
	start := c.mark()
	var segs []ast.VarNameSegment
	for {
		segStart := c.mark()
		seg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		params, ok := c.parseTypeParamsArgs()
		if !ok {
			return nil, false
		}
		seg.TypeParams = params
		seg.Range = c.rangeFrom(segStart)
		segs = append(segs, seg)
		if c.peek() == '.' && isIdentStart(c.peekAt(1)) {
			c.bump()
			continue
		}
		break
	}
	return &ast.VarName{Range: c.rangeFrom(start), Segments: segs}, true
}

// parseTypeName parses a TypeName: either a function type (`fn(...): R`)
// or a dotted path type with per-segment type arguments.
func (c *cursor) parseTypeName() (ast.TypeName, bool) {
	c.skipTrivia()
	if c.peekKeyword("fn") && c.peekAt(uint32(len("fn"))) == '(' {
		return c.parseFunctionType()
	}
	return c.parsePathType()
}

func (c *cursor) parseFunctionType() (*ast.FunctionType, bool) {
	start := c.mark()
	c.consumeKeyword("fn")
	c.skipTrivia()
	if !c.expectByte('(', "( in function type") {
		return nil, false
	}
	c.skipTrivia()
	var params []ast.TypeName
	if c.peek() != ')' {
		for {
			t, ok := c.parseTypeName()
			if !ok {
				return nil, false
			}
			params = append(params, t)
			c.skipTrivia()
			if c.consumeByte(',') {
				c.skipTrivia()
				continue
			}
			break
		}
	}
	if !c.expectByte(')', ") to close function type parameters") {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte(':', ": before function type return type") {
		return nil, false
	}
	c.skipTrivia()
	ret, ok := c.parseTypeName()
	if !ok {
		return nil, false
	}
	return &ast.FunctionType{Range: c.rangeFrom(start), ParamTypes: params, ReturnType: ret}, true
}

func (c *cursor) parsePathType() (*ast.PathType, bool) {
	start := c.mark()
	var segs []ast.TypeNameSegment
	for {
		segStart := c.mark()
		if c.peek() == '(' && c.peekAt(1) == ')' {
			c.bump()
			c.bump()
			segs = append(segs, ast.TypeNameSegment{Range: c.rangeFrom(segStart), Name: "()"})
		} else {
			n := c.identRunLenAt(0)
			if n == 0 {
				c.errorHere("expected type name")
				return nil, false
			}
			name := c.peekIdent()
			for i := uint32(0); i < n; i++ {
				c.bump()
			}
			params, ok := c.parseTypeParamsArgs()
			if !ok {
				return nil, false
			}
			segs = append(segs, ast.TypeNameSegment{Range: c.rangeFrom(segStart), Name: name, TypeParams: params})
		}
		if c.peek() == '.' && (isIdentStart(c.peekAt(1)) || (c.peekAt(1) == '(' && c.peekAt(2) == ')')) {
			c.bump()
			continue
		}
		break
	}
	return &ast.PathType{Range: c.rangeFrom(start), Segments: segs}, true
}
