package parser

import "github.com/brimdata/zfront/compiler/token"

// cursor is a read-only position in a token sequence whose last element is
// EOF.  It is passed and returned by value so that every production owns
// the position it was handed and an unmatched optional production leaves
// its caller's position untouched.
type cursor struct {
	tokens []token.Token
	pos    int
}

func (c cursor) peek() token.Token {
	return c.peekAt(0)
}

// peekAt returns the token n positions ahead, or EOF past the end.
func (c cursor) peekAt(n int) token.Token {
	if i := c.pos + n; i < len(c.tokens) {
		return c.tokens[i]
	}
	return c.tokens[len(c.tokens)-1]
}

// advance returns a cursor advanced by one token.  It never moves past EOF.
func (c cursor) advance() cursor {
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return c
}

func (c cursor) atEOF() bool {
	return c.pos == len(c.tokens)-1
}
