package parser

import (
	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/token"
)

// production is one level of the expression ladder.
type production func(c cursor, mandatory bool) (ast.Expr, cursor, error)

// binaryExpr parses "operand [op operand]" where toOp maps the tokens
// accepted at this level to their operator.  At most one operator is
// consumed.
func (p *parser) binaryExpr(c cursor, mandatory bool, operand production, toOp func(token.ID) ast.BinOp) (ast.Expr, cursor, error) {
	lhs, next, err := operand(c, mandatory)
	if err != nil || lhs == nil {
		return nil, c, err
	}
	tok := next.peek()
	op := toOp(tok.ID)
	if op == ast.BinOpInvalid {
		return lhs, next, nil
	}
	rhs, next, err := operand(next.advance(), true)
	if err != nil {
		return nil, c, err
	}
	return &ast.BinOpExpr{
		Kind: "BinOpExpr",
		Op:   op,
		LHS:  lhs,
		RHS:  rhs,
		Loc:  p.loc(tok),
	}, next, nil
}

func (p *parser) expression(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	ret, next, err := p.returnExpr(c)
	if err != nil {
		return nil, c, err
	}
	if ret != nil {
		return ret, next, nil
	}
	expr, next, err := p.boolOrExpr(c, false)
	if err != nil {
		return nil, c, err
	}
	if expr != nil {
		return expr, next, nil
	}
	if mandatory {
		return nil, c, p.invalidToken(c.peek())
	}
	return nil, c, nil
}

func (p *parser) returnExpr(c cursor) (*ast.ReturnExpr, cursor, error) {
	kw := c.peek()
	if kw.ID != token.KeywordReturn {
		return nil, c, nil
	}
	value, next, err := p.expression(c.advance(), false)
	if err != nil {
		return nil, c, err
	}
	return &ast.ReturnExpr{
		Kind:  "ReturnExpr",
		Value: value,
		Loc:   p.loc(kw),
	}, next, nil
}

func (p *parser) boolOrExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.boolAndExpr, only(token.BoolOr, ast.BinOpBoolOr))
}

func (p *parser) boolAndExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.comparisonExpr, only(token.BoolAnd, ast.BinOpBoolAnd))
}

func (p *parser) comparisonExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.binOrExpr, cmpOp)
}

func (p *parser) binOrExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.binXorExpr, only(token.BinOr, ast.BinOpBinOr))
}

func (p *parser) binXorExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.binAndExpr, only(token.BinXor, ast.BinOpBinXor))
}

func (p *parser) binAndExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.bitShiftExpr, only(token.BinAnd, ast.BinOpBinAnd))
}

func (p *parser) bitShiftExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.addExpr, bitShiftOp)
}

func (p *parser) addExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.multExpr, addOp)
}

func (p *parser) multExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	return p.binaryExpr(c, mandatory, p.castExpr, multOp)
}

func only(id token.ID, op ast.BinOp) func(token.ID) ast.BinOp {
	return func(tok token.ID) ast.BinOp {
		if tok == id {
			return op
		}
		return ast.BinOpInvalid
	}
}

func cmpOp(id token.ID) ast.BinOp {
	switch id {
	case token.CmpEq:
		return ast.BinOpCmpEq
	case token.CmpNotEq:
		return ast.BinOpCmpNotEq
	case token.CmpLessThan:
		return ast.BinOpCmpLessThan
	case token.CmpGreaterThan:
		return ast.BinOpCmpGreaterThan
	case token.CmpLessOrEq:
		return ast.BinOpCmpLessOrEq
	case token.CmpGreaterOrEq:
		return ast.BinOpCmpGreaterOrEq
	}
	return ast.BinOpInvalid
}

func bitShiftOp(id token.ID) ast.BinOp {
	switch id {
	case token.BitShiftLeft:
		return ast.BinOpBitShiftLeft
	case token.BitShiftRight:
		return ast.BinOpBitShiftRight
	}
	return ast.BinOpInvalid
}

func addOp(id token.ID) ast.BinOp {
	switch id {
	case token.Plus:
		return ast.BinOpAdd
	case token.Dash:
		return ast.BinOpSub
	}
	return ast.BinOpInvalid
}

func multOp(id token.ID) ast.BinOp {
	switch id {
	case token.Star:
		return ast.BinOpMult
	case token.Slash:
		return ast.BinOpDiv
	case token.Percent:
		return ast.BinOpMod
	}
	return ast.BinOpInvalid
}

func prefixOp(id token.ID) ast.PrefixOp {
	switch id {
	case token.Dash:
		return ast.PrefixOpNegation
	case token.Bang:
		return ast.PrefixOpBoolNot
	case token.Tilde:
		return ast.PrefixOpBinNot
	}
	return ast.PrefixOpInvalid
}

func (p *parser) castExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	expr, next, err := p.prefixOpExpr(c, mandatory)
	if err != nil || expr == nil {
		return nil, c, err
	}
	as := next.peek()
	if as.ID != token.KeywordAs {
		return expr, next, nil
	}
	typ, next, err := p.typ(next.advance())
	if err != nil {
		return nil, c, err
	}
	return &ast.CastExpr{
		Kind: "CastExpr",
		Expr: expr,
		Type: typ,
		Loc:  p.loc(as),
	}, next, nil
}

// prefixOpExpr applies at most one prefix operator, so "- -x" is not an
// expression.
func (p *parser) prefixOpExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	tok := c.peek()
	op := prefixOp(tok.ID)
	if op == ast.PrefixOpInvalid {
		return p.fnCallExpr(c, mandatory)
	}
	operand, next, err := p.fnCallExpr(c.advance(), true)
	if err != nil {
		return nil, c, err
	}
	return &ast.PrefixOpExpr{
		Kind:    "PrefixOpExpr",
		Op:      op,
		Operand: operand,
		Loc:     p.loc(tok),
	}, next, nil
}

// fnCallExpr parses a primary expression optionally followed by a single
// argument list.  The call takes the position of its callee.
func (p *parser) fnCallExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	fn, next, err := p.primaryExpr(c, mandatory)
	if err != nil || fn == nil {
		return nil, c, err
	}
	if next.peek().ID != token.LParen {
		return fn, next, nil
	}
	var args []ast.Expr
	next, err = p.list(next, func(c cursor) (cursor, error) {
		arg, c, err := p.expression(c, true)
		if err != nil {
			return c, err
		}
		args = append(args, arg)
		return c, nil
	})
	if err != nil {
		return nil, c, err
	}
	return &ast.FnCallExpr{
		Kind: "FnCallExpr",
		Func: fn,
		Args: args,
		Loc:  ast.LocOf(fn),
	}, next, nil
}

func (p *parser) primaryExpr(c cursor, mandatory bool) (ast.Expr, cursor, error) {
	tok := c.peek()
	switch tok.ID {
	case token.NumberLiteral:
		return &ast.NumberLiteral{
			Kind: "NumberLiteral",
			Text: p.text(tok),
			Loc:  p.loc(tok),
		}, c.advance(), nil
	case token.StringLiteral:
		return &ast.StringLiteral{
			Kind:  "StringLiteral",
			Value: p.stringValue(tok),
			Loc:   p.loc(tok),
		}, c.advance(), nil
	case token.KeywordUnreachable:
		return &ast.Unreachable{
			Kind: "Unreachable",
			Loc:  p.loc(tok),
		}, c.advance(), nil
	case token.Symbol:
		return &ast.Symbol{
			Kind: "Symbol",
			Name: p.text(tok),
			Loc:  p.loc(tok),
		}, c.advance(), nil
	}
	block, next, err := p.block(c, false)
	if err != nil {
		return nil, c, err
	}
	if block != nil {
		return block, next, nil
	}
	expr, next, err := p.groupedExpr(c)
	if err != nil {
		return nil, c, err
	}
	if expr != nil {
		return expr, next, nil
	}
	if mandatory {
		return nil, c, p.invalidToken(tok)
	}
	return nil, c, nil
}

// groupedExpr returns the parenthesized expression itself; no node
// records the parentheses.
func (p *parser) groupedExpr(c cursor) (ast.Expr, cursor, error) {
	if c.peek().ID != token.LParen {
		return nil, c, nil
	}
	expr, next, err := p.expression(c.advance(), true)
	if err != nil {
		return nil, c, err
	}
	if _, next, err = p.expect(next, token.RParen); err != nil {
		return nil, c, err
	}
	return expr, next, nil
}
