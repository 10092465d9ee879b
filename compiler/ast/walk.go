package ast

import "fmt"

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node.  If f returns false, the children of that node are
// skipped.  Absent optional children are not visited.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// Children returns the child nodes of n in source order.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *Root:
		for _, d := range n.Decls {
			out = append(out, d)
		}
	case *FnDef:
		out = append(out, n.Proto, n.Body)
	case *FnDecl:
		out = append(out, n.Proto)
	case *FnProto:
		for _, d := range n.Directives {
			out = append(out, d)
		}
		for _, p := range n.Params {
			out = append(out, p)
		}
		out = append(out, n.ReturnType)
	case *ParamDecl:
		out = append(out, n.Type)
	case *ExternBlock:
		for _, d := range n.Directives {
			out = append(out, d)
		}
		for _, d := range n.Decls {
			out = append(out, d)
		}
	case *RootExportDecl:
		for _, d := range n.Directives {
			out = append(out, d)
		}
	case *UseDecl:
		for _, d := range n.Directives {
			out = append(out, d)
		}
	case *PointerType:
		out = append(out, n.Elem)
	case *Block:
		for _, s := range n.Statements {
			out = append(out, s)
		}
	case *BinOpExpr:
		out = append(out, n.LHS, n.RHS)
	case *PrefixOpExpr:
		out = append(out, n.Operand)
	case *CastExpr:
		out = append(out, n.Expr)
		if n.Type != nil {
			out = append(out, n.Type)
		}
	case *FnCallExpr:
		out = append(out, n.Func)
		for _, a := range n.Args {
			out = append(out, a)
		}
	case *ReturnExpr:
		if n.Value != nil {
			out = append(out, n.Value)
		}
	case *Directive, *PrimitiveType, *NumberLiteral, *StringLiteral, *Unreachable, *Symbol:
	default:
		panic(fmt.Sprintf("ast.Children: unexpected node type %T", n))
	}
	return out
}
