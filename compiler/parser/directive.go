package parser

import (
	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/token"
)

// directives parses zero or more leading directives.
func (p *parser) directives(c cursor) ([]*ast.Directive, cursor, error) {
	var dirs []*ast.Directive
	for c.peek().ID == token.NumberSign {
		dir, next, err := p.directive(c)
		if err != nil {
			return nil, c, err
		}
		dirs = append(dirs, dir)
		c = next
	}
	return dirs, c, nil
}

func (p *parser) directive(c cursor) (*ast.Directive, cursor, error) {
	sign, c, err := p.expect(c, token.NumberSign)
	if err != nil {
		return nil, c, err
	}
	name, c, err := p.expect(c, token.Symbol)
	if err != nil {
		return nil, c, err
	}
	if _, c, err = p.expect(c, token.LParen); err != nil {
		return nil, c, err
	}
	param, c, err := p.expect(c, token.StringLiteral)
	if err != nil {
		return nil, c, err
	}
	if _, c, err = p.expect(c, token.RParen); err != nil {
		return nil, c, err
	}
	return &ast.Directive{
		Kind:  "Directive",
		Name:  p.text(name),
		Param: p.stringValue(param),
		Loc:   p.loc(sign),
	}, c, nil
}
