package tokenizer

import (
	"errors"
	"testing"

	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/brimdata/zfront/compiler/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(toks []token.Token) []token.ID {
	var out []token.ID
	for _, t := range toks {
		out = append(out, t.ID)
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		src      string
		expected []token.ID
	}{
		{"", []token.ID{token.EOF}},
		{"fn main() {}", []token.ID{token.KeywordFn, token.Symbol, token.LParen, token.RParen, token.LBrace, token.RBrace, token.EOF}},
		{"pub export extern use as mut const unreachable return", []token.ID{
			token.KeywordPub, token.KeywordExport, token.KeywordExtern, token.KeywordUse, token.KeywordAs,
			token.KeywordMut, token.KeywordConst, token.KeywordUnreachable, token.KeywordReturn, token.EOF}},
		{"-> - >> > >= << <= < == != ! || | && & ^ ~ % / * +", []token.ID{
			token.Arrow, token.Dash, token.BitShiftRight, token.CmpGreaterThan, token.CmpGreaterOrEq,
			token.BitShiftLeft, token.CmpLessOrEq, token.CmpLessThan, token.CmpEq, token.CmpNotEq, token.Bang,
			token.BoolOr, token.BinOr, token.BoolAnd, token.BinAnd, token.BinXor, token.Tilde, token.Percent,
			token.Slash, token.Star, token.Plus, token.EOF}},
		{`#link("c") x: *const u8, 42;`, []token.ID{
			token.NumberSign, token.Symbol, token.LParen, token.StringLiteral, token.RParen, token.Symbol,
			token.Colon, token.Star, token.KeywordConst, token.Symbol, token.Comma, token.NumberLiteral,
			token.Semicolon, token.EOF}},
		{"// comment only\nfoo // trailing", []token.ID{token.Symbol, token.EOF}},
	}
	for _, c := range cases {
		toks, err := Tokenize(srcfiles.NewFile("t.zig", []byte(c.src)))
		require.NoError(t, err, "src: %q", c.src)
		assert.Equal(t, c.expected, ids(toks), "src: %q", c.src)
	}
}

func TestTokenPositions(t *testing.T) {
	file := srcfiles.NewFile("t.zig", []byte("fn a()\n  {\"x\\\"y\"}"))
	toks, err := Tokenize(file)
	require.NoError(t, err)
	require.Len(t, toks, 8)
	assert.Equal(t, token.Token{ID: token.KeywordFn, Start: 0, End: 2, Line: 1, Column: 1}, toks[0])
	assert.Equal(t, token.Token{ID: token.LBrace, Start: 9, End: 10, Line: 2, Column: 3}, toks[4])
	assert.Equal(t, `"x\"y"`, toks[5].Text(file.Text))
	assert.Equal(t, token.EOF, toks[7].ID)
	assert.Equal(t, len(file.Text), toks[7].Start)
}

func TestTokenizeErrors(t *testing.T) {
	_, err := Tokenize(srcfiles.NewFile("t.zig", []byte("fn a() {\n  $\n}")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCharacter))
	assert.Equal(t, "t.zig:2:3: error: invalid character: '$'", err.Error())

	_, err = Tokenize(srcfiles.NewFile("t.zig", []byte(`use "std`)))
	assert.True(t, errors.Is(err, ErrUnterminatedString))
	assert.Equal(t, "t.zig:1:5: error: unterminated string", err.Error())
}
