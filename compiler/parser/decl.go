package parser

import (
	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/token"
)

func (p *parser) typ(c cursor) (ast.Type, cursor, error) {
	tok := c.peek()
	switch tok.ID {
	case token.KeywordUnreachable:
		return &ast.PrimitiveType{
			Kind: "PrimitiveType",
			Name: "unreachable",
			Loc:  p.loc(tok),
		}, c.advance(), nil
	case token.Symbol:
		return &ast.PrimitiveType{
			Kind: "PrimitiveType",
			Name: p.text(tok),
			Loc:  p.loc(tok),
		}, c.advance(), nil
	case token.Star:
		c = c.advance()
		var isConst bool
		switch mod := c.peek(); mod.ID {
		case token.KeywordConst:
			isConst = true
		case token.KeywordMut:
		default:
			return nil, c, p.invalidToken(mod)
		}
		elem, c, err := p.typ(c.advance())
		if err != nil {
			return nil, c, err
		}
		return &ast.PointerType{
			Kind:  "PointerType",
			Const: isConst,
			Elem:  elem,
			Loc:   p.loc(tok),
		}, c, nil
	}
	return nil, c, p.invalidToken(tok)
}

func (p *parser) paramDecl(c cursor) (*ast.ParamDecl, cursor, error) {
	name, c, err := p.expect(c, token.Symbol)
	if err != nil {
		return nil, c, err
	}
	if _, c, err = p.expect(c, token.Colon); err != nil {
		return nil, c, err
	}
	typ, c, err := p.typ(c)
	if err != nil {
		return nil, c, err
	}
	return &ast.ParamDecl{
		Kind: "ParamDecl",
		Name: p.text(name),
		Type: typ,
		Loc:  p.loc(name),
	}, c, nil
}

func (p *parser) paramDeclList(c cursor) ([]*ast.ParamDecl, cursor, error) {
	var params []*ast.ParamDecl
	c, err := p.list(c, func(c cursor) (cursor, error) {
		param, c, err := p.paramDecl(c)
		if err != nil {
			return c, err
		}
		params = append(params, param)
		return c, nil
	})
	return params, c, err
}

// list parses a parenthesized, comma-separated list calling item for each
// element.  The list may be empty and may not end with a comma.
func (p *parser) list(c cursor, item func(cursor) (cursor, error)) (cursor, error) {
	_, c, err := p.expect(c, token.LParen)
	if err != nil {
		return c, err
	}
	if c.peek().ID == token.RParen {
		return c.advance(), nil
	}
	for {
		if c, err = item(c); err != nil {
			return c, err
		}
		tok := c.peek()
		c = c.advance()
		if tok.ID == token.RParen {
			return c, nil
		}
		if tok.ID != token.Comma {
			return c, p.invalidToken(tok)
		}
	}
}

// fnProto parses a function prototype and attaches dirs to it.
func (p *parser) fnProto(c cursor, mandatory bool, dirs []*ast.Directive) (*ast.FnProto, cursor, error) {
	start := c.peek()
	var vis ast.Visibility
	switch start.ID {
	case token.KeywordPub, token.KeywordExport:
		vis = ast.Public
		if start.ID == token.KeywordExport {
			vis = ast.Export
		}
		var err error
		if _, c, err = p.expect(c.advance(), token.KeywordFn); err != nil {
			return nil, c, err
		}
	case token.KeywordFn:
		vis = ast.Private
		c = c.advance()
	default:
		if mandatory {
			return nil, c, p.invalidToken(start)
		}
		return nil, c, nil
	}
	name, c, err := p.expect(c, token.Symbol)
	if err != nil {
		return nil, c, err
	}
	params, c, err := p.paramDeclList(c)
	if err != nil {
		return nil, c, err
	}
	var ret ast.Type
	if arrow := c.peek(); arrow.ID == token.Arrow {
		if ret, c, err = p.typ(c.advance()); err != nil {
			return nil, c, err
		}
	} else {
		ret = &ast.PrimitiveType{
			Kind: "PrimitiveType",
			Name: "void",
			Loc:  p.loc(arrow),
		}
	}
	return &ast.FnProto{
		Kind:       "FnProto",
		Visibility: vis,
		Name:       p.text(name),
		Params:     params,
		ReturnType: ret,
		Directives: dirs,
		Loc:        p.loc(start),
	}, c, nil
}

func (p *parser) fnDef(c cursor, mandatory bool, dirs []*ast.Directive) (*ast.FnDef, cursor, error) {
	proto, next, err := p.fnProto(c, mandatory, dirs)
	if err != nil || proto == nil {
		return nil, c, err
	}
	body, next, err := p.block(next, true)
	if err != nil {
		return nil, c, err
	}
	return &ast.FnDef{
		Kind:  "FnDef",
		Proto: proto,
		Body:  body,
		Loc:   ast.LocOf(proto),
	}, next, nil
}

func (p *parser) fnDecl(c cursor, dirs []*ast.Directive) (*ast.FnDecl, cursor, error) {
	proto, c, err := p.fnProto(c, true, dirs)
	if err != nil {
		return nil, c, err
	}
	if _, c, err = p.expect(c, token.Semicolon); err != nil {
		return nil, c, err
	}
	return &ast.FnDecl{
		Kind:  "FnDecl",
		Proto: proto,
		Loc:   ast.LocOf(proto),
	}, c, nil
}

func (p *parser) externBlock(c cursor, mandatory bool, dirs []*ast.Directive) (*ast.ExternBlock, cursor, error) {
	kw := c.peek()
	if kw.ID != token.KeywordExtern {
		if mandatory {
			return nil, c, p.invalidToken(kw)
		}
		return nil, c, nil
	}
	_, next, err := p.expect(c.advance(), token.LBrace)
	if err != nil {
		return nil, c, err
	}
	block := &ast.ExternBlock{
		Kind:       "ExternBlock",
		Directives: dirs,
		Loc:        p.loc(kw),
	}
	for {
		first := next.peek()
		declDirs, after, err := p.directives(next)
		if err != nil {
			return nil, c, err
		}
		if after.peek().ID == token.RBrace {
			if len(declDirs) > 0 {
				return nil, c, p.errorAt(ErrInvalidDirective, first, "invalid directive")
			}
			return block, after.advance(), nil
		}
		decl, after, err := p.fnDecl(after, declDirs)
		if err != nil {
			return nil, c, err
		}
		block.Decls = append(block.Decls, decl)
		next = after
	}
}

// rootExportDecl is tried only when "export" is followed by a symbol so
// that "export fn" is left for fnDef.
func (p *parser) rootExportDecl(c cursor, dirs []*ast.Directive) (*ast.RootExportDecl, cursor, error) {
	kw := c.peek()
	kind := c.peekAt(1)
	if kw.ID != token.KeywordExport || kind.ID != token.Symbol {
		return nil, c, nil
	}
	name, next, err := p.expect(c.advance().advance(), token.StringLiteral)
	if err != nil {
		return nil, c, err
	}
	if _, next, err = p.expect(next, token.Semicolon); err != nil {
		return nil, c, err
	}
	return &ast.RootExportDecl{
		Kind:       "RootExportDecl",
		ExportKind: p.text(kind),
		Name:       p.stringValue(name),
		Directives: dirs,
		Loc:        p.loc(kw),
	}, next, nil
}

func (p *parser) useDecl(c cursor, dirs []*ast.Directive) (*ast.UseDecl, cursor, error) {
	kw := c.peek()
	if kw.ID != token.KeywordUse {
		return nil, c, nil
	}
	path, next, err := p.expect(c.advance(), token.StringLiteral)
	if err != nil {
		return nil, c, err
	}
	if _, next, err = p.expect(next, token.Semicolon); err != nil {
		return nil, c, err
	}
	return &ast.UseDecl{
		Kind:       "UseDecl",
		Path:       p.stringValue(path),
		Directives: dirs,
		Loc:        p.loc(kw),
	}, next, nil
}

func (p *parser) block(c cursor, mandatory bool) (*ast.Block, cursor, error) {
	lbrace := c.peek()
	if lbrace.ID != token.LBrace {
		if mandatory {
			return nil, c, p.invalidToken(lbrace)
		}
		return nil, c, nil
	}
	block := &ast.Block{
		Kind: "Block",
		Loc:  p.loc(lbrace),
	}
	next := c.advance()
	for next.peek().ID != token.RBrace {
		stmt, after, err := p.statement(next)
		if err != nil {
			return nil, c, err
		}
		block.Statements = append(block.Statements, stmt)
		next = after
	}
	return block, next.advance(), nil
}

// statement is an expression terminated by a semicolon.
func (p *parser) statement(c cursor) (ast.Expr, cursor, error) {
	expr, c, err := p.expression(c, true)
	if err != nil {
		return nil, c, err
	}
	if _, c, err = p.expect(c, token.Semicolon); err != nil {
		return nil, c, err
	}
	return expr, c, nil
}
