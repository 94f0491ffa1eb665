package parser

import "lifec/internal/ast"

// atItemStart reports whether an item-introducing keyword is next.
func (c *cursor) atItemStart() bool {
	return c.peekKeyword("fn") || c.peekKeyword("struct") || c.peekKeyword("enum") ||
		c.peekKeyword("trait") || c.peekKeyword("impl") || c.peekKeyword("type") || c.peekKeyword("pub")
}

func (c *cursor) parseTypeParamDecls() ([]ast.TypeParam, bool) {
	if c.peek() != '<' {
		return nil, true
	}
	c.bump()
	c.skipTrivia()
	var params []ast.TypeParam
	if c.peek() == '>' {
		c.bump()
		return params, true
	}
	for {
		start := c.mark()
		seg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		params = append(params, ast.TypeParam{Range: c.rangeFrom(start), Name: seg.Name})
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('>', "> to close type parameter list") {
		return nil, false
	}
	return params, true
}

// parseWhereClause parses an optional `where C1, C2, ...` clause; each
// constraint is kept as raw text since constraint resolution belongs to a
// later compiler phase.
func (c *cursor) parseWhereClause() (*ast.WhereClause, bool) {
	if !c.peekKeyword("where") {
		return nil, true
	}
	start := c.mark()
	c.consumeKeyword("where")
	var constraints []string
	for {
		c.skipTrivia()
		var buf []byte
		depth := 0
		for {
			b := c.peek()
			if c.atEnd() {
				c.errorRange(c.rangeFrom(start), "unterminated where clause")
				return nil, false
			}
			if depth == 0 && (b == ',' || b == '{' || b == ';') {
				break
			}
			if b == '(' || b == '<' {
				depth++
			}
			if b == ')' || b == '>' {
				depth--
			}
			buf = append(buf, c.bump())
		}
		constraints = append(constraints, trimSpaceASCII(string(buf)))
		if c.peek() == ',' {
			c.bump()
			continue
		}
		break
	}
	return &ast.WhereClause{Range: c.rangeFrom(start), Constraints: constraints}, true
}

func trimSpaceASCII(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIIWhitespace(s[start]) {
		start++
	}
	for end > start && isASCIIWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func (c *cursor) parseFuncParams() ([]ast.FuncParam, bool) {
	var params []ast.FuncParam
	c.skipTrivia()
	if c.peek() == ')' {
		return params, true
	}
	for {
		pStart := c.mark()
		isMut := false
		if c.peekKeyword("mut") {
			c.consumeKeyword("mut")
			isMut = true
			c.skipTrivia()
		}
		nameSeg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		var typ ast.TypeName
		c.skipTrivia()
		if c.consumeByte(':') {
			c.skipTrivia()
			t, ok := c.parseTypeName()
			if !ok {
				return nil, false
			}
			typ = t
		}
		params = append(params, ast.FuncParam{Range: c.rangeFrom(pStart), IsMut: isMut, Name: nameSeg.Name, Type: typ})
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	return params, true
}

func (c *cursor) parseFuncDecl() (ast.FuncDecl, bool) {
	start := c.mark()
	c.consumeKeyword("fn")
	c.skipTrivia()
	nameSeg, ok := c.parseIdentifier()
	if !ok {
		return ast.FuncDecl{}, false
	}
	c.skipTrivia()
	typeParams, ok := c.parseTypeParamDecls()
	if !ok {
		return ast.FuncDecl{}, false
	}
	c.skipTrivia()
	if !c.expectByte('(', "( to start function parameters") {
		return ast.FuncDecl{}, false
	}
	params, ok := c.parseFuncParams()
	if !ok {
		return ast.FuncDecl{}, false
	}
	if !c.expectByte(')', ") to close function parameters") {
		return ast.FuncDecl{}, false
	}
	c.skipTrivia()
	if !c.expectByte(':', ": before function return type") {
		return ast.FuncDecl{}, false
	}
	c.skipTrivia()
	retType, ok := c.parseTypeName()
	if !ok {
		return ast.FuncDecl{}, false
	}
	c.skipTrivia()
	where, ok := c.parseWhereClause()
	if !ok {
		return ast.FuncDecl{}, false
	}
	return ast.FuncDecl{
		Range: c.rangeFrom(start), Name: nameSeg.Name, TypeParams: typeParams,
		Params: params, ReturnType: retType, Where: where,
	}, true
}

func (c *cursor) parseFuncItem(isPub bool) (ast.Item, bool) {
	start := c.mark()
	decl, ok := c.parseFuncDecl()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	body, ok := c.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.FuncDef{Range: c.rangeFrom(start), IsPub: isPub, Decl: decl, Body: body}, true
}

func (c *cursor) parseTraitMethodDecl() (ast.FuncDecl, bool) {
	decl, ok := c.parseFuncDecl()
	if !ok {
		return decl, false
	}
	c.skipTrivia()
	if !c.expectByte(';', "; after trait method signature") {
		return decl, false
	}
	return decl, true
}

func (c *cursor) parseStructItem(isPub bool) (ast.Item, bool) {
	start := c.mark()
	c.consumeKeyword("struct")
	c.skipTrivia()
	nameSeg, ok := c.parseIdentifier()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	typeParams, ok := c.parseTypeParamDecls()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	where, ok := c.parseWhereClause()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('{', "{ to start struct body") {
		return nil, false
	}
	c.skipTrivia()
	var fields []ast.StructField
	for c.peek() != '}' {
		fStart := c.mark()
		fPub := false
		if c.peekKeyword("pub") {
			c.consumeKeyword("pub")
			fPub = true
			c.skipTrivia()
		}
		fieldSeg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		if !c.expectByte(':', ": in struct field") {
			return nil, false
		}
		c.skipTrivia()
		ftype, ok := c.parseTypeName()
		if !ok {
			return nil, false
		}
		fields = append(fields, ast.StructField{Range: c.rangeFrom(fStart), Name: fieldSeg.Name, Type: ftype, IsPub: fPub})
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('}', "} to close struct body") {
		return nil, false
	}
	return &ast.StructDef{Range: c.rangeFrom(start), IsPub: isPub, Name: nameSeg.Name, TypeParams: typeParams, Fields: fields, Where: where}, true
}

func (c *cursor) parseEnumItem(isPub bool) (ast.Item, bool) {
	start := c.mark()
	c.consumeKeyword("enum")
	c.skipTrivia()
	nameSeg, ok := c.parseIdentifier()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	typeParams, ok := c.parseTypeParamDecls()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	where, ok := c.parseWhereClause()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('{', "{ to start enum body") {
		return nil, false
	}
	c.skipTrivia()
	var variants []ast.EnumVariant
	for c.peek() != '}' {
		vStart := c.mark()
		vSeg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		switch {
		case c.peek() == '(':
			c.bump()
			c.skipTrivia()
			var types []ast.TypeName
			if c.peek() != ')' {
				for {
					t, ok := c.parseTypeName()
					if !ok {
						return nil, false
					}
					types = append(types, t)
					c.skipTrivia()
					if c.consumeByte(',') {
						c.skipTrivia()
						continue
					}
					break
				}
			}
			if !c.expectByte(')', ") to close tuple variant") {
				return nil, false
			}
			variants = append(variants, ast.EnumVariant{Range: c.rangeFrom(vStart), Kind: ast.TupleVariant, Name: vSeg.Name, FieldTypes: types})
		case c.peek() == '{':
			c.bump()
			c.skipTrivia()
			var fields []ast.StructField
			for c.peek() != '}' {
				fStart := c.mark()
				fSeg, ok := c.parseIdentifier()
				if !ok {
					return nil, false
				}
				c.skipTrivia()
				if !c.expectByte(':', ": in enum struct variant field") {
					return nil, false
				}
				c.skipTrivia()
				ftype, ok := c.parseTypeName()
				if !ok {
					return nil, false
				}
				fields = append(fields, ast.StructField{Range: c.rangeFrom(fStart), Name: fSeg.Name, Type: ftype})
				c.skipTrivia()
				if c.consumeByte(',') {
					c.skipTrivia()
					continue
				}
				break
			}
			if !c.expectByte('}', "} to close enum struct variant") {
				return nil, false
			}
			variants = append(variants, ast.EnumVariant{Range: c.rangeFrom(vStart), Kind: ast.StructVariant, Name: vSeg.Name, Fields: fields})
		default:
			variants = append(variants, ast.EnumVariant{Range: c.rangeFrom(vStart), Kind: ast.UnitVariant, Name: vSeg.Name})
		}
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('}', "} to close enum body") {
		return nil, false
	}
	return &ast.EnumDef{Range: c.rangeFrom(start), IsPub: isPub, Name: nameSeg.Name, TypeParams: typeParams, Variants: variants, Where: where}, true
}

func (c *cursor) parseTraitItem(isPub bool) (ast.Item, bool) {
	start := c.mark()
	c.consumeKeyword("trait")
	c.skipTrivia()
	nameSeg, ok := c.parseIdentifier()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	typeParams, ok := c.parseTypeParamDecls()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	where, ok := c.parseWhereClause()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('{', "{ to start trait body") {
		return nil, false
	}
	c.skipTrivia()
	var assocTypes []string
	var methods []ast.FuncDecl
	for c.peek() != '}' {
		switch {
		case c.peekKeyword("type"):
			c.consumeKeyword("type")
			c.skipTrivia()
			seg, ok := c.parseIdentifier()
			if !ok {
				return nil, false
			}
			assocTypes = append(assocTypes, seg.Name)
			c.skipTrivia()
			if !c.expectByte(';', "; after associated type declaration") {
				return nil, false
			}
		case c.peekKeyword("fn"):
			decl, ok := c.parseTraitMethodDecl()
			if !ok {
				return nil, false
			}
			methods = append(methods, decl)
		default:
			c.errorHere("expected associated type or method signature in trait body")
			return nil, false
		}
		c.skipTrivia()
	}
	if !c.expectByte('}', "} to close trait body") {
		return nil, false
	}
	return &ast.TraitDef{Range: c.rangeFrom(start), IsPub: isPub, Name: nameSeg.Name, TypeParams: typeParams, AssocTypes: assocTypes, Methods: methods, Where: where}, true
}

func (c *cursor) parseImplItem(isPub bool) (ast.Item, bool) {
	start := c.mark()
	c.consumeKeyword("impl")
	c.skipTrivia()
	typeParams, ok := c.parseTypeParamDecls()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	firstType, ok := c.parseTypeName()
	if !ok {
		return nil, false
	}
	c.skipTrivia()

	if c.consumeKeyword("for") {
		c.skipTrivia()
		targetType, ok := c.parseTypeName()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		where, ok := c.parseWhereClause()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		if !c.expectByte('{', "{ to start trait impl body") {
			return nil, false
		}
		c.skipTrivia()
		var assocImpls []ast.AssocTypeImpl
		var methods []*ast.FuncDef
		for c.peek() != '}' {
			switch {
			case c.peekKeyword("type"):
				aStart := c.mark()
				c.consumeKeyword("type")
				c.skipTrivia()
				seg, ok := c.parseIdentifier()
				if !ok {
					return nil, false
				}
				c.skipTrivia()
				if !c.expectByte('=', "= in associated type implementation") {
					return nil, false
				}
				c.skipTrivia()
				atype, ok := c.parseTypeName()
				if !ok {
					return nil, false
				}
				c.skipTrivia()
				if !c.expectByte(';', "; after associated type implementation") {
					return nil, false
				}
				assocImpls = append(assocImpls, ast.AssocTypeImpl{Range: c.rangeFrom(aStart), Name: seg.Name, Type: atype})
			case c.peekKeyword("fn"):
				m, ok := c.parseFuncItem(false)
				if !ok {
					return nil, false
				}
				methods = append(methods, m.(*ast.FuncDef))
			default:
				c.errorHere("expected associated type or method in trait impl body")
				return nil, false
			}
			c.skipTrivia()
		}
		if !c.expectByte('}', "} to close trait impl body") {
			return nil, false
		}
		return &ast.TraitImpl{
			Range: c.rangeFrom(start), IsPub: isPub, TraitName: firstType, TypeName: targetType,
			TypeParams: typeParams, AssocTypeImpls: assocImpls, Methods: methods, Where: where,
		}, true
	}

	where, ok := c.parseWhereClause()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('{', "{ to start impl body") {
		return nil, false
	}
	c.skipTrivia()
	var methods []*ast.FuncDef
	for c.peek() != '}' {
		if !c.peekKeyword("fn") {
			c.errorHere("expected method in impl body")
			return nil, false
		}
		m, ok := c.parseFuncItem(false)
		if !ok {
			return nil, false
		}
		methods = append(methods, m.(*ast.FuncDef))
		c.skipTrivia()
	}
	if !c.expectByte('}', "} to close impl body") {
		return nil, false
	}
	return &ast.ImplBlock{Range: c.rangeFrom(start), IsPub: isPub, TypeName: firstType, TypeParams: typeParams, Methods: methods, Where: where}, true
}

func (c *cursor) parseTypeAliasItem(isPub bool) (ast.Item, bool) {
	start := c.mark()
	c.consumeKeyword("type")
	c.skipTrivia()
	nameSeg, ok := c.parseIdentifier()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	typeParams, ok := c.parseTypeParamDecls()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('=', "= in type alias") {
		return nil, false
	}
	c.skipTrivia()
	aliased, ok := c.parseTypeName()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte(';', "; to end type alias") {
		return nil, false
	}
	return &ast.TypeAlias{Range: c.rangeFrom(start), IsPub: isPub, Name: nameSeg.Name, TypeParams: typeParams, AliasedType: aliased}, true
}

func (c *cursor) parseItemBody(isPub bool) (ast.Item, bool) {
	switch {
	case c.peekKeyword("fn"):
		return c.parseFuncItem(isPub)
	case c.peekKeyword("struct"):
		return c.parseStructItem(isPub)
	case c.peekKeyword("enum"):
		return c.parseEnumItem(isPub)
	case c.peekKeyword("trait"):
		return c.parseTraitItem(isPub)
	case c.peekKeyword("impl"):
		return c.parseImplItem(isPub)
	case c.peekKeyword("type"):
		return c.parseTypeAliasItem(isPub)
	default:
		c.errorHere("expected item (fn, struct, enum, trait, impl, or type)")
		return nil, false
	}
}

// parseItem parses one module-level (or nested) item, including its
// optional leading `pub`.
func (c *cursor) parseItem() (ast.Item, bool) {
	isPub := false
	if c.peekKeyword("pub") {
		c.consumeKeyword("pub")
		isPub = true
		c.skipTrivia()
	}
	return c.parseItemBody(isPub)
}
