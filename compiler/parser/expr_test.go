package parser_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/brimdata/zfront/compiler/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sexpr renders an expression as a parenthesized prefix form.
func sexpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Symbol:
		return e.Name
	case *ast.NumberLiteral:
		return e.Text
	case *ast.StringLiteral:
		return strconv.Quote(e.Value)
	case *ast.Unreachable:
		return "unreachable"
	case *ast.BinOpExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op, sexpr(e.LHS), sexpr(e.RHS))
	case *ast.PrefixOpExpr:
		return fmt.Sprintf("(%s %s)", e.Op, sexpr(e.Operand))
	case *ast.CastExpr:
		return fmt.Sprintf("(as %s %s)", sexpr(e.Expr), typeString(e.Type))
	case *ast.FnCallExpr:
		elems := []string{"call", sexpr(e.Func)}
		for _, a := range e.Args {
			elems = append(elems, sexpr(a))
		}
		return "(" + strings.Join(elems, " ") + ")"
	case *ast.ReturnExpr:
		if e.Value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", sexpr(e.Value))
	case *ast.Block:
		elems := []string{"block"}
		for _, s := range e.Statements {
			elems = append(elems, sexpr(s))
		}
		return "(" + strings.Join(elems, " ") + ")"
	}
	return fmt.Sprintf("<%T>", e)
}

func typeString(t ast.Type) string {
	switch t := t.(type) {
	case *ast.PrimitiveType:
		return t.Name
	case *ast.PointerType:
		if t.Const {
			return "*const " + typeString(t.Elem)
		}
		return "*mut " + typeString(t.Elem)
	}
	return fmt.Sprintf("<%T>", t)
}

// parseStmt parses src as the only statement of a function body.
func parseStmt(t *testing.T, src string) ast.Expr {
	t.Helper()
	def := onlyFnDef(t, parse(t, "fn f() { "+src+"; }"))
	require.Len(t, def.Body.Statements, 1)
	return def.Body.Statements[0]
}

func TestBinaryOperators(t *testing.T) {
	cases := []struct {
		op       string
		expected ast.BinOp
	}{
		{"||", ast.BinOpBoolOr},
		{"&&", ast.BinOpBoolAnd},
		{"==", ast.BinOpCmpEq},
		{"!=", ast.BinOpCmpNotEq},
		{"<", ast.BinOpCmpLessThan},
		{">", ast.BinOpCmpGreaterThan},
		{"<=", ast.BinOpCmpLessOrEq},
		{">=", ast.BinOpCmpGreaterOrEq},
		{"|", ast.BinOpBinOr},
		{"^", ast.BinOpBinXor},
		{"&", ast.BinOpBinAnd},
		{"<<", ast.BinOpBitShiftLeft},
		{">>", ast.BinOpBitShiftRight},
		{"+", ast.BinOpAdd},
		{"-", ast.BinOpSub},
		{"*", ast.BinOpMult},
		{"/", ast.BinOpDiv},
		{"%", ast.BinOpMod},
	}
	for _, c := range cases {
		t.Run(c.op, func(t *testing.T) {
			expr := parseStmt(t, "x "+c.op+" y")
			bin, ok := expr.(*ast.BinOpExpr)
			require.True(t, ok, "got %T", expr)
			assert.Equal(t, c.expected, bin.Op)
			assert.Equal(t, c.op, bin.Op.String())
			assert.Equal(t, "x", bin.LHS.(*ast.Symbol).Name)
			assert.Equal(t, "y", bin.RHS.(*ast.Symbol).Name)
			// "fn f() { x " puts the operator at column 12.
			requirePos(t, bin, 1, 12)
		})
	}
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		src      string
		expected string
	}{
		{"a + b * c", "(+ a (* b c))"},
		{"a * b + c", "(+ (* a b) c)"},
		{"a << b + c", "(<< a (+ b c))"},
		{"a & b ^ c", "(^ (& a b) c)"},
		{"a | b ^ c", "(| a (^ b c))"},
		{"a == b | c", "(== a (| b c))"},
		{"a && b == c", "(&& a (== b c))"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a < b || c >= d", "(|| (< a b) (>= c d))"},
		{"-a * b", "(* (- a) b)"},
		{"!f(x)", "(! (call f x))"},
		{"~x >> 2", "(>> (~ x) 2)"},
		{"-a as i32", "(as (- a) i32)"},
		{"x as *const u8", "(as x *const u8)"},
		{"p as *mut *const u8", "(as p *mut *const u8)"},
		{"(a + b) * c", "(* (+ a b) c)"},
		{"((a))", "a"},
		{"f()", "(call f)"},
		{"f(a, b + c, g(1))", "(call f a (+ b c) (call g 1))"},
		{"(f)(x)", "(call f x)"},
		{"return", "(return)"},
		{"return a + b", "(return (+ a b))"},
		{"return return", "(return (return))"},
		{"1 + unreachable", "(+ 1 unreachable)"},
		{`"a\tb\"c\\"`, `"a\tb\"c\\"`},
		{`"a\qb"`, `"ab"`},
		{"{ a; return; }", "(block a (return))"},
		{"{}", "(block)"},
		{"f({ 1; })", "(call f (block 1))"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, sexpr(parseStmt(t, c.src)), "src: %q", c.src)
	}
}

func TestExprPositions(t *testing.T) {
	def := onlyFnDef(t, parse(t, "fn f() {\n  -foo(1) as i32;\n  !x;\n}"))
	require.Len(t, def.Body.Statements, 2)
	cast := def.Body.Statements[0].(*ast.CastExpr)
	requirePos(t, cast, 2, 11)
	requirePos(t, cast.Type, 2, 14)
	neg := cast.Expr.(*ast.PrefixOpExpr)
	requirePos(t, neg, 2, 3)
	call := neg.Operand.(*ast.FnCallExpr)
	// A call takes the position of its callee.
	requirePos(t, call, 2, 4)
	requirePos(t, call.Func, 2, 4)
	requirePos(t, call.Args[0], 2, 8)
	requirePos(t, def.Body.Statements[1], 3, 3)
}

func TestGroupedCallPosition(t *testing.T) {
	call := parseStmt(t, "(g)(1)").(*ast.FnCallExpr)
	requirePos(t, call, 1, 11)
}
