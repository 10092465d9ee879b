// Package tokenizer splits source text into the token sequence consumed by
// the parser.  The sequence always ends with a single EOF token.
package tokenizer

import (
	"errors"
	"fmt"

	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/brimdata/zfront/compiler/token"
)

var (
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrUnterminatedString = errors.New("unterminated string")
)

type lexer struct {
	file   *srcfiles.File
	src    string
	pos    int
	mark   int
	tokens []token.Token
}

// Tokenize lexes the text of file.
func Tokenize(file *srcfiles.File) ([]token.Token, error) {
	lx := &lexer{file: file, src: file.Text}
	for {
		lx.skipSpace()
		lx.mark = lx.pos
		if lx.pos >= len(lx.src) {
			lx.emit(token.EOF)
			return lx.tokens, nil
		}
		if err := lx.lexToken(); err != nil {
			return nil, err
		}
	}
}

func (lx *lexer) emit(id token.ID) {
	p := lx.file.Position(lx.mark)
	lx.tokens = append(lx.tokens, token.Token{
		ID:     id,
		Start:  lx.mark,
		End:    lx.pos,
		Line:   p.Line,
		Column: p.Column,
	})
}

func (lx *lexer) peek(off int) byte {
	if lx.pos+off < len(lx.src) {
		return lx.src[lx.pos+off]
	}
	return 0
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		switch c := lx.src[lx.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.pos++
		case c == '/' && lx.peek(1) == '/':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
		default:
			return
		}
	}
}

func (lx *lexer) lexToken() error {
	c := lx.src[lx.pos]
	switch {
	case isAlpha(c):
		lx.lexIdent()
		return nil
	case isDigit(c):
		lx.lexNumber()
		return nil
	case c == '"':
		return lx.lexString()
	}
	if id, n := lx.punctuation(); n > 0 {
		lx.pos += n
		lx.emit(id)
		return nil
	}
	return lx.file.NewError(ErrInvalidCharacter, fmt.Sprintf("invalid character: '%c'", c), lx.pos, -1)
}

func (lx *lexer) lexIdent() {
	for lx.pos < len(lx.src) && (isAlpha(lx.src[lx.pos]) || isDigit(lx.src[lx.pos])) {
		lx.pos++
	}
	lx.emit(token.Lookup(lx.src[lx.mark:lx.pos]))
}

func (lx *lexer) lexNumber() {
	for lx.pos < len(lx.src) && (isDigit(lx.src[lx.pos]) || lx.src[lx.pos] == '.' || isAlpha(lx.src[lx.pos])) {
		lx.pos++
	}
	lx.emit(token.NumberLiteral)
}

// lexString consumes a double-quoted literal.  Escapes are left in place
// for the parser to decode but an escaped quote does not end the literal.
func (lx *lexer) lexString() error {
	lx.pos++
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
			continue
		case '"':
			lx.pos++
			lx.emit(token.StringLiteral)
			return nil
		case '\n':
			return lx.file.NewError(ErrUnterminatedString, "unterminated string", lx.mark, -1)
		}
		lx.pos++
	}
	return lx.file.NewError(ErrUnterminatedString, "unterminated string", lx.mark, -1)
}

var twoChar = map[string]token.ID{
	"->": token.Arrow,
	"||": token.BoolOr,
	"&&": token.BoolAnd,
	"==": token.CmpEq,
	"!=": token.CmpNotEq,
	"<=": token.CmpLessOrEq,
	">=": token.CmpGreaterOrEq,
	"<<": token.BitShiftLeft,
	">>": token.BitShiftRight,
}

var oneChar = map[byte]token.ID{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	';': token.Semicolon,
	':': token.Colon,
	'#': token.NumberSign,
	'*': token.Star,
	'+': token.Plus,
	'-': token.Dash,
	'/': token.Slash,
	'%': token.Percent,
	'!': token.Bang,
	'~': token.Tilde,
	'|': token.BinOr,
	'^': token.BinXor,
	'&': token.BinAnd,
	'<': token.CmpLessThan,
	'>': token.CmpGreaterThan,
}

func (lx *lexer) punctuation() (token.ID, int) {
	if lx.pos+2 <= len(lx.src) {
		if id, ok := twoChar[lx.src[lx.pos:lx.pos+2]]; ok {
			return id, 2
		}
	}
	if id, ok := oneChar[lx.src[lx.pos]]; ok {
		return id, 1
	}
	return 0, 0
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
