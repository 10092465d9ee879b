// Package token defines the lexical tokens consumed by the parser.
package token

import (
	"fmt"
	"sort"
)

type ID int

const (
	EOF ID = iota
	Symbol
	NumberLiteral
	StringLiteral

	keywordBeg
	KeywordFn
	KeywordReturn
	KeywordMut
	KeywordConst
	KeywordExtern
	KeywordUnreachable
	KeywordPub
	KeywordExport
	KeywordAs
	KeywordUse
	keywordEnd

	LParen
	RParen
	LBrace
	RBrace
	Comma
	Semicolon
	Colon
	NumberSign
	Arrow
	Star
	Plus
	Dash
	Slash
	Percent
	Bang
	Tilde
	BinOr
	BinXor
	BinAnd
	BoolOr
	BoolAnd
	CmpEq
	CmpNotEq
	CmpLessThan
	CmpGreaterThan
	CmpLessOrEq
	CmpGreaterOrEq
	BitShiftLeft
	BitShiftRight
)

var names = [...]string{
	EOF:                "EOF",
	Symbol:             "Symbol",
	NumberLiteral:      "NumberLiteral",
	StringLiteral:      "StringLiteral",
	KeywordFn:          "fn",
	KeywordReturn:      "return",
	KeywordMut:         "mut",
	KeywordConst:       "const",
	KeywordExtern:      "extern",
	KeywordUnreachable: "unreachable",
	KeywordPub:         "pub",
	KeywordExport:      "export",
	KeywordAs:          "as",
	KeywordUse:         "use",
	LParen:             "(",
	RParen:             ")",
	LBrace:             "{",
	RBrace:             "}",
	Comma:              ",",
	Semicolon:          ";",
	Colon:              ":",
	NumberSign:         "#",
	Arrow:              "->",
	Star:               "*",
	Plus:               "+",
	Dash:               "-",
	Slash:              "/",
	Percent:            "%",
	Bang:               "!",
	Tilde:              "~",
	BinOr:              "|",
	BinXor:             "^",
	BinAnd:             "&",
	BoolOr:             "||",
	BoolAnd:            "&&",
	CmpEq:              "==",
	CmpNotEq:           "!=",
	CmpLessThan:        "<",
	CmpGreaterThan:     ">",
	CmpLessOrEq:        "<=",
	CmpGreaterOrEq:     ">=",
	BitShiftLeft:       "<<",
	BitShiftRight:      ">>",
}

func (id ID) String() string {
	if id >= 0 && int(id) < len(names) && names[id] != "" {
		return names[id]
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

func (id ID) IsKeyword() bool {
	return id > keywordBeg && id < keywordEnd
}

var keywords map[string]ID

func init() {
	keywords = make(map[string]ID)
	for id := keywordBeg + 1; id < keywordEnd; id++ {
		keywords[names[id]] = id
	}
}

// Lookup maps an identifier to its keyword ID or Symbol if it is not a
// keyword.
func Lookup(ident string) ID {
	if id, ok := keywords[ident]; ok {
		return id
	}
	return Symbol
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	var out []string
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Token is a classified span of source text.  Start and End are byte
// offsets with End exclusive.  Line and Column are 1-based.
type Token struct {
	ID     ID
	Start  int
	End    int
	Line   int
	Column int
}

// Text returns the raw source text of t.
func (t Token) Text(src string) string {
	if t.Start < 0 || t.End > len(src) || t.Start > t.End {
		return ""
	}
	return src[t.Start:t.End]
}
