package parser

import (
	"strings"

	"github.com/brimdata/zfront/compiler/token"
)

// stringValue returns the decoded contents of a string literal token.
func (p *parser) stringValue(tok token.Token) string {
	return decodeString(p.text(tok))
}

// decodeString strips the quotes from a string literal and decodes its
// escapes.  A backslash followed by a character other than \, r, n, t or "
// is dropped along with that character.
func decodeString(lit string) string {
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		lit = lit[1 : len(lit)-1]
	}
	if strings.IndexByte(lit, '\\') < 0 {
		return lit
	}
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		ch := lit[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}
		i++
		if i >= len(lit) {
			break
		}
		switch lit[i] {
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		}
	}
	return b.String()
}
