// Package astfmt renders syntax trees as text for debugging and tests.
//
// The dump format writes one node per line, depth first, indenting each
// child two spaces beyond its parent, e.g.,
//
//	Root
//	  FnDef
//	    FnProto 'main'
//	      Type 'void'
//	    Block
//	      ReturnExpr
//	        PrimaryExpr Number 0
package astfmt

import (
	"fmt"

	"github.com/brimdata/zfront/compiler/ast"
)

// Dump returns the indented dump of the tree rooted at n.
func Dump(n ast.Node) string {
	d := &dumper{formatter{tab: 2}}
	d.node(n)
	return d.String()
}

type dumper struct {
	formatter
}

func (d *dumper) children(nodes ...ast.Node) {
	d.open()
	for _, n := range nodes {
		d.node(n)
	}
	d.close()
}

func (d *dumper) directives(dirs []*ast.Directive) {
	d.open()
	for _, dir := range dirs {
		d.node(dir)
	}
	d.close()
}

func (d *dumper) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Root:
		d.line("Root")
		for _, decl := range n.Decls {
			d.children(decl)
		}
	case *ast.RootExportDecl:
		d.line("RootExportDecl %s '%s'", n.ExportKind, n.Name)
		d.directives(n.Directives)
	case *ast.UseDecl:
		d.line("Use '%s'", n.Path)
		d.directives(n.Directives)
	case *ast.ExternBlock:
		d.line("ExternBlock")
		d.directives(n.Directives)
		for _, decl := range n.Decls {
			d.children(decl)
		}
	case *ast.FnDef:
		d.line("FnDef")
		d.children(n.Proto, n.Body)
	case *ast.FnDecl:
		d.line("FnDecl")
		d.children(n.Proto)
	case *ast.FnProto:
		d.line("FnProto '%s'", n.Name)
		d.directives(n.Directives)
		for _, p := range n.Params {
			d.children(p)
		}
		d.children(n.ReturnType)
	case *ast.Directive:
		d.line("Directive %s '%s'", n.Name, n.Param)
	case *ast.ParamDecl:
		d.line("ParamDecl '%s'", n.Name)
		d.children(n.Type)
	case *ast.PrimitiveType:
		d.line("Type '%s'", n.Name)
	case *ast.PointerType:
		mod := "mut"
		if n.Const {
			mod = "const"
		}
		d.line("'%s' PointerType", mod)
		d.children(n.Elem)
	case *ast.Block:
		d.line("Block")
		for _, s := range n.Statements {
			d.children(s)
		}
	case *ast.ReturnExpr:
		d.line("ReturnExpr")
		if n.Value != nil {
			d.children(n.Value)
		}
	case *ast.BinOpExpr:
		d.line("BinOpExpr %s", n.Op)
		d.children(n.LHS, n.RHS)
	case *ast.PrefixOpExpr:
		d.line("PrefixOpExpr %s", n.Op)
		d.children(n.Operand)
	case *ast.CastExpr:
		d.line("CastExpr")
		d.children(n.Expr)
		if n.Type != nil {
			d.children(n.Type)
		}
	case *ast.FnCallExpr:
		d.line("FnCallExpr")
		d.children(n.Func)
		for _, a := range n.Args {
			d.children(a)
		}
	case *ast.NumberLiteral:
		d.line("PrimaryExpr Number %s", n.Text)
	case *ast.StringLiteral:
		d.line("PrimaryExpr String '%s'", n.Value)
	case *ast.Unreachable:
		d.line("PrimaryExpr Unreachable")
	case *ast.Symbol:
		d.line("PrimaryExpr Symbol %s", n.Name)
	default:
		panic(fmt.Sprintf("astfmt: unexpected node type %T", n))
	}
}
