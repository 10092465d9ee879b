package parser

import (
	"testing"

	"github.com/brimdata/zfront/compiler/token"
	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	c := cursor{tokens: []token.Token{
		{ID: token.KeywordFn},
		{ID: token.Symbol},
		{ID: token.EOF},
	}}
	assert.Equal(t, token.KeywordFn, c.peek().ID)
	assert.Equal(t, token.Symbol, c.peekAt(1).ID)
	assert.Equal(t, token.EOF, c.peekAt(5).ID)
	assert.False(t, c.atEOF())

	next := c.advance()
	assert.Equal(t, token.Symbol, next.peek().ID)
	// Advancing returns a new cursor.
	assert.Equal(t, token.KeywordFn, c.peek().ID)

	end := next.advance().advance().advance()
	assert.True(t, end.atEOF())
	assert.Equal(t, token.EOF, end.peek().ID)
}

func TestDecodeString(t *testing.T) {
	cases := []struct {
		lit      string
		expected string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\\b"`, `a\b`},
		{`"\r\n\t"`, "\r\n\t"},
		{`"say \"hi\""`, `say "hi"`},
		{`"\x41"`, "41"},
		{`"trailing\"`, "trailing"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, decodeString(c.lit), "literal: %s", c.lit)
	}
}

func TestSuggestKeyword(t *testing.T) {
	assert.Equal(t, "fn", suggestKeyword("fnn"))
	assert.Equal(t, "return", suggestKeyword("retrun"))
	assert.Equal(t, "unreachable", suggestKeyword("unreachabel"))
	assert.Equal(t, "", suggestKeyword("x"))
	assert.Equal(t, "", suggestKeyword("main"))
}
