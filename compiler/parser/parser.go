package parser

import (
	"errors"
	"fmt"

	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/brimdata/zfront/compiler/token"
	"go.uber.org/zap"
)

var (
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrInvalidDirective = errors.New("invalid directive")
)

type parser struct {
	file   *srcfiles.File
	logger *zap.Logger
}

func (p *parser) loc(tok token.Token) ast.Loc {
	return ast.NewLoc(p.file, tok.Line, tok.Column)
}

func (p *parser) text(tok token.Token) string {
	return tok.Text(p.file.Text)
}

// errorAt returns a diagnostic located at tok.
func (p *parser) errorAt(kind error, tok token.Token, msg string) *srcfiles.Error {
	end := tok.End - 1
	if end < tok.Start {
		end = -1
	}
	err := p.file.NewError(kind, msg, tok.Start, end)
	err.Pos.Line = tok.Line
	err.Pos.Column = tok.Column
	return err
}

func (p *parser) invalidToken(tok token.Token) error {
	text := p.text(tok)
	err := p.errorAt(ErrUnexpectedToken, tok, fmt.Sprintf("invalid token: '%s'", text))
	if tok.ID == token.Symbol {
		if kw := suggestKeyword(text); kw != "" {
			err.Hint = fmt.Sprintf("did you mean '%s'?", kw)
		}
	}
	return err
}

// expect consumes a token of kind id.
func (p *parser) expect(c cursor, id token.ID) (token.Token, cursor, error) {
	tok := c.peek()
	if tok.ID != id {
		return tok, c, p.invalidToken(tok)
	}
	return tok, c.advance(), nil
}

func (p *parser) root(c cursor) (*ast.Root, error) {
	root := &ast.Root{
		Kind: "Root",
		Loc:  p.loc(c.peek()),
	}
	decls, c, err := p.topLevelDecls(c)
	if err != nil {
		return nil, err
	}
	if !c.atEOF() {
		return nil, p.invalidToken(c.peek())
	}
	root.Decls = decls
	return root, nil
}

func (p *parser) topLevelDecls(c cursor) ([]ast.Decl, cursor, error) {
	var decls []ast.Decl
	for {
		first := c.peek()
		dirs, next, err := p.directives(c)
		if err != nil {
			return nil, c, err
		}
		decl, next, err := p.topLevelDecl(next, dirs)
		if err != nil {
			return nil, c, err
		}
		if decl == nil {
			if len(dirs) > 0 {
				return nil, c, p.errorAt(ErrInvalidDirective, first, "invalid directive")
			}
			return decls, c, nil
		}
		p.logger.Debug("declaration",
			zap.String("kind", fmt.Sprintf("%T", decl)),
			zap.Int("line", decl.Pos().Line))
		decls = append(decls, decl)
		c = next
	}
}

// topLevelDecl tries each top-level alternative in turn.  It returns a nil
// Decl and the cursor it was given when none matches.  Each result is
// checked as a concrete pointer so a nil node never becomes a non-nil Decl.
func (p *parser) topLevelDecl(c cursor, dirs []*ast.Directive) (ast.Decl, cursor, error) {
	export, next, err := p.rootExportDecl(c, dirs)
	if err != nil {
		return nil, c, err
	}
	if export != nil {
		return export, next, nil
	}
	def, next, err := p.fnDef(c, false, dirs)
	if err != nil {
		return nil, c, err
	}
	if def != nil {
		return def, next, nil
	}
	block, next, err := p.externBlock(c, false, dirs)
	if err != nil {
		return nil, c, err
	}
	if block != nil {
		return block, next, nil
	}
	use, next, err := p.useDecl(c, dirs)
	if err != nil {
		return nil, c, err
	}
	if use != nil {
		return use, next, nil
	}
	return nil, c, nil
}
