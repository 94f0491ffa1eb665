package parser

import "lifec/internal/ast"

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// parseExpr is the expression entry point: a non-assignment expression,
// optionally followed by `= value` (right-associative, lowest precedence,
// careful not to consume `==` or `=>`).
func (c *cursor) parseExpr() (ast.Expr, bool) {
	start := c.mark()
	lhs, ok := c.parseRangeExpr()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if c.peek() == '=' && c.peekAt(1) != '=' && c.peekAt(1) != '>' {
		c.bump()
		c.skipTrivia()
		value, ok := c.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Assignment{Range: c.rangeFrom(start), Target: lhs, Value: value}, true
	}
	return lhs, true
}

// parseRangeExpr parses `a..b` / `a..=b`, binding looser than every binary
// operator but tighter than assignment.
func (c *cursor) parseRangeExpr() (ast.Expr, bool) {
	start := c.mark()
	lhs, ok := c.parseBinary(1)
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if c.peek() == '.' && c.peekAt(1) == '.' {
		c.bump()
		c.bump()
		inclusive := false
		if c.peek() == '=' {
			c.bump()
			inclusive = true
		}
		c.skipTrivia()
		rhs, ok := c.parseBinary(1)
		if !ok {
			return nil, false
		}
		return &ast.RangeExpr{Range: c.rangeFrom(start), Start: lhs, End: rhs, Inclusive: inclusive}, true
	}
	return lhs, true
}

const maxBinaryLevel = 6

// matchBinaryOp checks for the operator belonging to precedence level at
// the cursor, returning its AST op, its byte width, and whether it
// matched.
func (c *cursor) matchBinaryOp(level int) (ast.BinaryOp, int, bool) {
	switch level {
	case 1:
		if c.peek() == '|' && c.peekAt(1) == '|' {
			return ast.Or, 2, true
		}
	case 2:
		if c.peek() == '&' && c.peekAt(1) == '&' {
			return ast.And, 2, true
		}
	case 3:
		if c.peek() == '=' && c.peekAt(1) == '=' {
			return ast.Eq, 2, true
		}
		if c.peek() == '!' && c.peekAt(1) == '=' {
			return ast.Ne, 2, true
		}
	case 4:
		if c.peek() == '<' && c.peekAt(1) == '=' {
			return ast.Le, 2, true
		}
		if c.peek() == '>' && c.peekAt(1) == '=' {
			return ast.Ge, 2, true
		}
		if c.peek() == '<' {
			return ast.Lt, 1, true
		}
		if c.peek() == '>' {
			return ast.Gt, 1, true
		}
	case 5:
		if c.peek() == '+' {
			return ast.Add, 1, true
		}
		if c.peek() == '-' {
			return ast.Sub, 1, true
		}
	case 6:
		if c.peek() == '*' {
			return ast.Mul, 1, true
		}
		if c.peek() == '/' {
			return ast.Div, 1, true
		}
		if c.peek() == '%' {
			return ast.Mod, 1, true
		}
	}
	return 0, 0, false
}

// parseBinary implements precedence climbing over the six binary
// levels (lowest-precedence `||` at level 1 down to `* / %` at level 6),
// falling through to unary expressions beyond the table.
func (c *cursor) parseBinary(level int) (ast.Expr, bool) {
	start := c.mark()
	if level > maxBinaryLevel {
		return c.parseUnary()
	}
	lhs, ok := c.parseBinary(level + 1)
	if !ok {
		return nil, false
	}
	for {
		c.skipTrivia()
		op, size, matched := c.matchBinaryOp(level)
		if !matched {
			break
		}
		for i := 0; i < size; i++ {
			c.bump()
		}
		c.skipTrivia()
		rhs, ok := c.parseBinary(level + 1)
		if !ok {
			return nil, false
		}
		lhs = &ast.Binary{Range: c.rangeFrom(start), Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs, true
}

// parseUnary parses right-associative prefix unary operators, which bind
// tighter than any binary operator, then falls through to a primary
// expression plus its postfix chain.
func (c *cursor) parseUnary() (ast.Expr, bool) {
	c.skipTrivia()
	start := c.mark()
	var op ast.UnaryOp
	switch c.peek() {
	case '-':
		op = ast.Neg
	case '+':
		op = ast.Pos
	case '!':
		op = ast.Not
	case '~':
		op = ast.BitNot
	default:
		prim, ok := c.parsePrimary()
		if !ok {
			return nil, false
		}
		return c.parsePostfix(prim, start)
	}
	c.bump()
	operand, ok := c.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.Unary{Range: c.rangeFrom(start), Op: op, Operand: operand}, true
}

// parsePrimary dispatches on the disambiguation rules of spec §4.2:
// control-flow keywords and blocks first, then literals, then identifier
// forms (struct literal / qualified call / variable name).
func (c *cursor) parsePrimary() (ast.Expr, bool) {
	c.skipTrivia()
	switch {
	case c.peekKeyword("if"):
		node, ok := c.parseIf()
		if !ok {
			return nil, false
		}
		return node, true
	case c.peekKeyword("while"):
		node, ok := c.parseWhile()
		if !ok {
			return nil, false
		}
		return node, true
	case c.peekKeyword("for"):
		node, ok := c.parseFor()
		if !ok {
			return nil, false
		}
		return node, true
	case c.peekKeyword("match"):
		node, ok := c.parseMatch()
		if !ok {
			return nil, false
		}
		return node, true
	case c.peek() == '{':
		node, ok := c.parseBlock()
		if !ok {
			return nil, false
		}
		return node, true
	case isDigit(c.peek()):
		return c.parseNumber()
	case c.peek() == '"':
		lit, ok := c.parseString()
		if !ok {
			return nil, false
		}
		return lit, true
	case c.peek() == '\'':
		lit, ok := c.parseChar()
		if !ok {
			return nil, false
		}
		return lit, true
	case c.peek() == '(':
		return c.parseParenOrUnit()
	case isIdentStart(c.peek()):
		return c.parseIdentifierPrimary()
	default:
		c.errorHere("expected expression")
		return nil, false
	}
}

func (c *cursor) parseNumber() (ast.Expr, bool) {
	n := digitRunLen(c, 0)
	if n == 0 {
		c.errorHere("expected number")
		return nil, false
	}
	if c.looksLikeFloat(n) {
		f, ok := c.parseFloat()
		if !ok {
			return nil, false
		}
		return f, true
	}
	i, ok := c.parseInteger()
	if !ok {
		return nil, false
	}
	return i, true
}

func (c *cursor) parseParenOrUnit() (ast.Expr, bool) {
	start := c.mark()
	c.bump() // '('
	c.skipTrivia()
	if c.peek() == ')' {
		c.bump()
		return &ast.Unit{Range: c.rangeFrom(start)}, true
	}
	expr, ok := c.parseExpr()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte(')', ") to close parenthesized expression") {
		return nil, false
	}
	return expr, true
}

// parseIdentifierPrimary implements the uppercase-struct-literal vs.
// qualified-call vs. single-segment-variable-name lookahead.
func (c *cursor) parseIdentifierPrimary() (ast.Expr, bool) {
	walkStart := c.mark()
	firstUpper := isUpperASCII(c.peek())

	firstSeg, ok := c.parseIdentifier()
	if !ok {
		return nil, false
	}
	afterIdent := c.mark()

	// The struct-literal lookahead walks only the identifier run plus
	// trivia, the same as the original implementation's
	// identifier-run-then-brace check: it does not skip a `<...>`
	// type-argument list first. `Foo<T>{...}` therefore falls through to
	// ordinary binary-operator parsing (a known `<`/`>` ambiguity, not
	// resolved here).
	if firstUpper {
		c.skipTrivia()
		if c.peek() == '{' {
			firstSeg.Range = c.rangeFrom(walkStart)
			typeName := &ast.PathType{
				Range:    firstSeg.Range,
				Segments: []ast.TypeNameSegment{{Range: firstSeg.Range, Name: firstSeg.Name}},
			}
			return c.parseStructLiteralTail(typeName, walkStart)
		}
		c.reset(afterIdent)
	}

	firstParams, ok := c.parseTypeParamsArgs()
	if !ok {
		return nil, false
	}
	firstSeg.TypeParams = firstParams
	firstSeg.Range = c.rangeFrom(walkStart)
	afterFirst := c.mark()

	segs := []ast.VarNameSegment{firstSeg}
	for c.peek() == '.' && isIdentStart(c.peekAt(1)) {
		c.bump()
		segStart := c.mark()
		seg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		p, ok := c.parseTypeParamsArgs()
		if !ok {
			return nil, false
		}
		seg.TypeParams = p
		seg.Range = c.rangeFrom(segStart)
		segs = append(segs, seg)
	}

	if c.peek() == '(' {
		varName := &ast.VarName{Range: c.rangeFrom(walkStart), Segments: segs}
		return c.parseFuncCallTail(varName, walkStart)
	}

	if len(segs) > 1 {
		c.reset(afterFirst)
	}
	varName := &ast.VarName{Range: firstSeg.Range, Segments: []ast.VarNameSegment{firstSeg}}
	return varName, true
}

func (c *cursor) parseStructLiteralTail(tn ast.TypeName, start mark) (ast.Expr, bool) {
	c.skipTrivia()
	if !c.expectByte('{', "{ to start struct literal") {
		return nil, false
	}
	c.skipTrivia()
	var fields []ast.FieldInit
	for c.peek() != '}' {
		fieldStart := c.mark()
		nameSeg, ok := c.parseIdentifier()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		if !c.expectByte(':', ": in struct literal field") {
			return nil, false
		}
		c.skipTrivia()
		val, ok := c.parseExpr()
		if !ok {
			return nil, false
		}
		fields = append(fields, ast.FieldInit{Range: c.rangeFrom(fieldStart), Name: nameSeg.Name, Value: val})
		c.skipTrivia()
		if c.consumeByte(',') {
			c.skipTrivia()
			continue
		}
		break
	}
	if !c.expectByte('}', "} to close struct literal") {
		return nil, false
	}
	return &ast.StructLiteral{Range: c.rangeFrom(start), TypeName: tn, Fields: fields}, true
}

func (c *cursor) parseFuncCallTail(name *ast.VarName, start mark) (ast.Expr, bool) {
	c.skipTrivia()
	if !c.expectByte('(', "( to start call arguments") {
		return nil, false
	}
	c.skipTrivia()
	var args []ast.Expr
	if c.peek() != ')' {
		for {
			arg, ok := c.parseExpr()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			c.skipTrivia()
			if c.consumeByte(',') {
				c.skipTrivia()
				continue
			}
			break
		}
	}
	if !c.expectByte(')', ") to close call arguments") {
		return nil, false
	}
	return &ast.FuncCall{Range: c.rangeFrom(start), Name: name, Args: args}, true
}

// parsePostfix applies `.field` and `(args)` postfix operators to base,
// rewriting `obj.method(args)` into a FuncCall named `method` whose first
// argument is `obj` (uniform method-call desugaring).
func (c *cursor) parsePostfix(base ast.Expr, start mark) (ast.Expr, bool) {
	for {
		if c.peek() == '.' && c.peekAt(1) != '.' && isIdentStart(c.peekAt(1)) {
			c.bump()
			fieldSeg, ok := c.parseIdentifier()
			if !ok {
				return nil, false
			}
			base = &ast.FieldAccess{Range: c.rangeFrom(start), Object: base, Field: fieldSeg.Name}
			continue
		}
		if c.peek() == '(' {
			c.bump()
			c.skipTrivia()
			var args []ast.Expr
			if c.peek() != ')' {
				for {
					arg, ok := c.parseExpr()
					if !ok {
						return nil, false
					}
					args = append(args, arg)
					c.skipTrivia()
					if c.consumeByte(',') {
						c.skipTrivia()
						continue
					}
					break
				}
			}
			if !c.expectByte(')', ") to close call arguments") {
				return nil, false
			}
			rng := c.rangeFrom(start)
			switch b := base.(type) {
			case *ast.FieldAccess:
				name := &ast.VarName{Range: b.Range, Segments: []ast.VarNameSegment{{Range: b.Range, Name: b.Field}}}
				base = &ast.FuncCall{Range: rng, Name: name, Args: append([]ast.Expr{b.Object}, args...)}
			case *ast.VarName:
				base = &ast.FuncCall{Range: rng, Name: b, Args: args}
			default:
				c.errorRange(rng, "expression is not callable")
				return nil, false
			}
			continue
		}
		break
	}
	return base, true
}

func (c *cursor) parseIf() (*ast.If, bool) {
	start := c.mark()
	c.consumeKeyword("if")
	c.skipTrivia()
	cond, ok := c.parseExpr()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	thenBlk, ok := c.parseBlock()
	if !ok {
		return nil, false
	}
	node := &ast.If{Condition: cond, Then: thenBlk}
	for {
		save := c.mark()
		c.skipTrivia()
		if !c.consumeKeyword("else") {
			c.reset(save)
			break
		}
		c.skipTrivia()
		if c.consumeKeyword("if") {
			c.skipTrivia()
			eiCond, ok := c.parseExpr()
			if !ok {
				return nil, false
			}
			c.skipTrivia()
			eiBlock, ok := c.parseBlock()
			if !ok {
				return nil, false
			}
			node.ElseIfs = append(node.ElseIfs, ast.ElseIf{Range: c.rangeFrom(save), Condition: eiCond, Block: eiBlock})
			continue
		}
		elseBlk, ok := c.parseBlock()
		if !ok {
			return nil, false
		}
		node.ElseBlock = elseBlk
		break
	}
	node.Range = c.rangeFrom(start)
	return node, true
}

func (c *cursor) parseWhile() (*ast.While, bool) {
	start := c.mark()
	c.consumeKeyword("while")
	c.skipTrivia()
	cond, ok := c.parseExpr()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	body, ok := c.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.While{Range: c.rangeFrom(start), Condition: cond, Body: body}, true
}

func (c *cursor) parseFor() (*ast.For, bool) {
	start := c.mark()
	c.consumeKeyword("for")
	c.skipTrivia()
	pat, ok := c.parsePattern()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.consumeKeyword("in") {
		c.errorHere("expected 'in' in for loop")
		return nil, false
	}
	c.skipTrivia()
	iter, ok := c.parseExpr()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	body, ok := c.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.For{Range: c.rangeFrom(start), Pattern: pat, Iterator: iter, Body: body}, true
}

func (c *cursor) parseMatch() (*ast.Match, bool) {
	start := c.mark()
	c.consumeKeyword("match")
	c.skipTrivia()
	scrutinee, ok := c.parseExpr()
	if !ok {
		return nil, false
	}
	c.skipTrivia()
	if !c.expectByte('{', "{ to start match arms") {
		return nil, false
	}
	var arms []ast.MatchArm
	for {
		c.skipTrivia()
		if c.peek() == '}' {
			break
		}
		armStart := c.mark()
		pat, ok := c.parsePattern()
		if !ok {
			return nil, false
		}
		c.skipTrivia()
		var guard ast.Expr
		if c.consumeKeyword("if") {
			c.skipTrivia()
			g, ok := c.parseExpr()
			if !ok {
				return nil, false
			}
			guard = g
			c.skipTrivia()
		}
		if !c.expectByte('=', "=> in match arm") {
			return nil, false
		}
		if !c.expectByte('>', "=> in match arm") {
			return nil, false
		}
		c.skipTrivia()
		result, ok := c.parseExpr()
		if !ok {
			return nil, false
		}
		arms = append(arms, ast.MatchArm{Range: c.rangeFrom(armStart), Pattern: pat, Guard: guard, Result: result})
		c.skipTrivia()
		if c.consumeByte(',') {
			continue
		}
	}
	if !c.expectByte('}', "} to close match") {
		return nil, false
	}
	return &ast.Match{Range: c.rangeFrom(start), Scrutinee: scrutinee, Arms: arms}, true
}

func (c *cursor) parseBlock() (*ast.Block, bool) {
	start := c.mark()
	if !c.expectByte('{', "{ to start block") {
		return nil, false
	}
	var stmts []ast.Stmt
	var trailing ast.Expr
	for {
		c.skipTrivia()
		if c.peek() == '}' {
			break
		}
		if c.atEnd() {
			c.errorHere("unterminated block")
			return nil, false
		}
		stmt, trailingExpr, ok := c.parseStatementOrTrailing()
		if !ok {
			return nil, false
		}
		if trailingExpr != nil {
			trailing = trailingExpr
			c.skipTrivia()
			if c.peek() != '}' {
				c.errorHere("expected } after trailing expression")
				return nil, false
			}
			break
		}
		stmts = append(stmts, stmt)
	}
	if !c.expectByte('}', "} to close block") {
		return nil, false
	}
	return &ast.Block{Range: c.rangeFrom(start), Statements: stmts, TrailingExpr: trailing}, true
}
