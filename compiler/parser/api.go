// Package parser builds syntax trees from token sequences with a
// recursive-descent parser.  Each grammar production is a method that
// takes a cursor and a mandatory flag and returns the node it parsed, the
// cursor following it, and an error.  When a production is optional and
// its first token does not match, it returns a nil node, the cursor it was
// given, and a nil error so the caller can try another alternative.  Any
// other mismatch is an error and parsing stops at the first one.
//
// Grammar:
//
//	Root           : many(TopLevelDecl) EOF
//	TopLevelDecl   : many(Directive) (RootExportDecl | FnDef | ExternBlock | Use)
//	Directive      : '#' Symbol '(' String ')'
//	RootExportDecl : 'export' Symbol String ';'
//	Use            : 'use' String ';'
//	ExternBlock    : 'extern' '{' many(many(Directive) FnDecl) '}'
//	FnDef          : FnProto Block
//	FnDecl         : FnProto ';'
//	FnProto        : option('pub' | 'export') 'fn' Symbol ParamDeclList option('->' Type)
//	ParamDeclList  : '(' list(ParamDecl, ',') ')'
//	ParamDecl      : Symbol ':' Type
//	Type           : Symbol | 'unreachable' | '*' ('const' | 'mut') Type
//	Block          : '{' many(Expression ';') '}'
//	Expression     : 'return' option(Expression) | BoolOrExpr
//	BoolOrExpr     : BoolAndExpr option('||' BoolAndExpr)
//	BoolAndExpr    : CmpExpr option('&&' CmpExpr)
//	CmpExpr        : BinOrExpr option(CmpOp BinOrExpr)
//	BinOrExpr      : BinXorExpr option('|' BinXorExpr)
//	BinXorExpr     : BinAndExpr option('^' BinAndExpr)
//	BinAndExpr     : ShiftExpr option('&' ShiftExpr)
//	ShiftExpr      : AddExpr option(('<<' | '>>') AddExpr)
//	AddExpr        : MultExpr option(('+' | '-') MultExpr)
//	MultExpr       : CastExpr option(('*' | '/' | '%') CastExpr)
//	CastExpr       : PrefixOpExpr option('as' Type)
//	PrefixOpExpr   : option('-' | '!' | '~') FnCallExpr
//	FnCallExpr     : PrimaryExpr option('(' list(Expression, ',') ')')
//	PrimaryExpr    : Number | String | 'unreachable' | Symbol | Block | '(' Expression ')'
//
// Each binary level accepts at most one operator, so "a + b + c" is not
// an expression.
package parser

import (
	"errors"

	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/brimdata/zfront/compiler/token"
	"github.com/brimdata/zfront/compiler/tokenizer"
	"go.uber.org/zap"
)

var errNoEOF = errors.New("token sequence must end with an EOF token")

type Option func(*parser)

// WithLogger sets a logger for debug tracing of the parse.
func WithLogger(logger *zap.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// Parse tokenizes and parses the text of file.
func Parse(file *srcfiles.File, opts ...Option) (*ast.Root, error) {
	tokens, err := tokenizer.Tokenize(file)
	if err != nil {
		return nil, err
	}
	return ParseTokens(file, tokens, opts...)
}

// ParseText parses text as an unnamed compilation unit.
func ParseText(text string, opts ...Option) (*ast.Root, error) {
	return Parse(srcfiles.NewFile("", []byte(text)), opts...)
}

// ParseTokens parses tokens, which were lexed from file, into a syntax
// tree.  The returned error for a syntax error is a *srcfiles.Error
// wrapping ErrUnexpectedToken or ErrInvalidDirective.
func ParseTokens(file *srcfiles.File, tokens []token.Token, opts ...Option) (*ast.Root, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].ID != token.EOF {
		return nil, errNoEOF
	}
	p := &parser{file: file, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	root, err := p.root(cursor{tokens: tokens})
	if err != nil {
		p.logger.Debug("parse failed", zap.String("file", file.Name), zap.Error(err))
		return nil, err
	}
	p.logger.Debug("parsed",
		zap.String("file", file.Name),
		zap.Int("tokens", len(tokens)),
		zap.Int("decls", len(root.Decls)))
	return root, nil
}
