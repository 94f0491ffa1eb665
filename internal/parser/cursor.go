// Package parser implements a character-level recursive-descent parser
// with no separate tokenization pass: it reads bytes directly off the
// source buffer and performs bounded lookahead to disambiguate
// syntactically overlapping constructs.
package parser

import (
	"fmt"

	"fortio.org/safecast"

	"lifec/internal/ast"
	"lifec/internal/diag"
	"lifec/internal/source"
)

// cursor walks a source buffer byte by byte, tracking (offset, line,
// column) exactly as source.Map does, so the two stay in lockstep.
type cursor struct {
	src    []byte
	offset uint32
	line   uint32
	column uint32

	engine *diag.Engine
}

func newCursor(src []byte, engine *diag.Engine) *cursor {
	return &cursor{src: src, offset: 0, line: 1, column: 1, engine: engine}
}

func (c *cursor) len() uint32 {
	n, err := safecast.Conv[uint32](len(c.src))
	if err != nil {
		panic(fmt.Errorf("parser: source length overflow: %w", err))
	}
	return n
}

func (c *cursor) atEnd() bool {
	return c.offset >= c.len()
}

// peek returns the byte at the cursor, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.offset]
}

// peekAt returns the byte n bytes ahead of the cursor (0 = current), or 0
// past end of input.
func (c *cursor) peekAt(n uint32) byte {
	idx := c.offset + n
	if idx >= c.len() {
		return 0
	}
	return c.src[idx]
}

func (c *cursor) pos() source.Position {
	return source.Position{Line: c.line, Column: c.column}
}

// bump consumes one byte, advancing line/column per spec.md's rules: \n
// resets column and increments line; \r does the same and swallows a
// following \n without a second line increment; every other byte just
// advances column by one (continuation bytes included).
func (c *cursor) bump() byte {
	b := c.peek()
	c.offset++
	switch b {
	case '\n':
		c.line++
		c.column = 1
	case '\r':
		if c.peek() == '\n' {
			c.offset++
		}
		c.line++
		c.column = 1
	default:
		c.column++
	}
	return b
}

// mark is a restorable cursor+diagnostics checkpoint. Restoring one also
// truncates diagnostics appended since the mark, so a failed speculative
// parse never leaks diagnostics from the path not taken.
type mark struct {
	offset   uint32
	line     uint32
	column   uint32
	diagLen  int
}

func (c *cursor) mark() mark {
	return mark{offset: c.offset, line: c.line, column: c.column, diagLen: c.engine.Len()}
}

func (c *cursor) reset(m mark) {
	c.offset, c.line, c.column = m.offset, m.line, m.column
	c.engine.Truncate(m.diagLen)
}

func (c *cursor) rangeFrom(m mark) source.Range {
	return source.Range{
		Start: source.Position{Line: m.line, Column: m.column},
		End:   c.pos(),
	}
}

func (c *cursor) errorHere(message string) {
	p := c.pos()
	c.engine.AddError(source.Range{Start: p, End: p}, message)
}

func (c *cursor) errorRange(rng source.Range, message string) {
	c.engine.AddError(rng, message)
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// skipTrivia consumes whitespace, line comments, and nestable block
// comments. It returns false (with a diagnostic already appended) if an
// unterminated block comment runs to end-of-file.
func (c *cursor) skipTrivia() bool {
	for {
		switch {
		case isASCIIWhitespace(c.peek()):
			c.bump()
		case c.peek() == '/' && c.peekAt(1) == '/':
			for !c.atEnd() && c.peek() != '\n' {
				c.bump()
			}
		case c.peek() == '/' && c.peekAt(1) == '*':
			start := c.mark()
			depth := 0
			c.bump()
			c.bump()
			depth++
			for depth > 0 {
				if c.atEnd() {
					c.errorRange(c.rangeFrom(start), "unterminated block comment")
					return false
				}
				if c.peek() == '/' && c.peekAt(1) == '*' {
					c.bump()
					c.bump()
					depth++
					continue
				}
				if c.peek() == '*' && c.peekAt(1) == '/' {
					c.bump()
					c.bump()
					depth--
					continue
				}
				c.bump()
			}
		default:
			return true
		}
	}
}

var keywords = map[string]bool{
	"fn": true, "struct": true, "enum": true, "trait": true, "impl": true,
	"type": true, "let": true, "mut": true, "return": true, "break": true,
	"continue": true, "if": true, "else": true, "while": true, "for": true,
	"match": true, "in": true, "where": true, "pub": true, "import": true,
	"as": true,
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// identRunLenAt returns the length in bytes of the identifier run starting
// at offset delta bytes ahead of the cursor, or 0 if none starts there.
func (c *cursor) identRunLenAt(delta uint32) uint32 {
	if !isIdentStart(c.peekAt(delta)) {
		return 0
	}
	n := uint32(1)
	for isIdentContinue(c.peekAt(delta + n)) {
		n++
	}
	return n
}

// peekIdent returns the identifier starting at the cursor (without
// consuming it), or "" if none starts there.
func (c *cursor) peekIdent() string {
	n := c.identRunLenAt(0)
	if n == 0 {
		return ""
	}
	b := make([]byte, n)
	for i := uint32(0); i < n; i++ {
		b[i] = c.peekAt(i)
	}
	return string(b)
}

// peekKeyword reports whether keyword kw appears at the cursor, followed
// by a non-identifier-continue byte (so "fnord" is not "fn").
func (c *cursor) peekKeyword(kw string) bool {
	n := uint32(len(kw))
	for i := uint32(0); i < n; i++ {
		if c.peekAt(i) != kw[i] {
			return false
		}
	}
	return !isIdentContinue(c.peekAt(n))
}

// consumeKeyword consumes keyword kw if it is next, returning whether it
// matched.
func (c *cursor) consumeKeyword(kw string) bool {
	if !c.peekKeyword(kw) {
		return false
	}
	for range kw {
		c.bump()
	}
	return true
}

// parseIdentifier consumes and returns a raw identifier, which must not be
// a reserved keyword.
func (c *cursor) parseIdentifier() (ast.VarNameSegment, bool) {
	start := c.mark()
	n := c.identRunLenAt(0)
	if n == 0 {
		c.errorHere("expected identifier")
		return ast.VarNameSegment{}, false
	}
	name := c.peekIdent()
	if keywords[name] {
		c.errorHere(fmt.Sprintf("expected identifier, found keyword %q", name))
		return ast.VarNameSegment{}, false
	}
	for i := uint32(0); i < n; i++ {
		c.bump()
	}
	return ast.VarNameSegment{Range: c.rangeFrom(start), Name: name}, true
}

// consumeByte consumes b if it is next, returning whether it matched.
func (c *cursor) consumeByte(b byte) bool {
	if c.peek() != b {
		return false
	}
	c.bump()
	return true
}

// expectByte consumes b, appending a diagnostic and returning false if it
// is not next.
func (c *cursor) expectByte(b byte, what string) bool {
	if c.consumeByte(b) {
		return true
	}
	c.errorHere(fmt.Sprintf("expected %s", what))
	return false
}
