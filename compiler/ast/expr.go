package ast

type Expr interface {
	Node
	exprNode()
}

type (
	// A Block is a brace-delimited list of statements.  Blocks appear
	// both as function bodies and as primary expressions.
	Block struct {
		Kind       string `json:"kind"`
		Statements []Expr `json:"statements"`
		Loc        `json:"loc"`
	}
	BinOpExpr struct {
		Kind string `json:"kind"`
		Op   BinOp  `json:"op"`
		LHS  Expr   `json:"lhs"`
		RHS  Expr   `json:"rhs"`
		Loc  `json:"loc"`
	}
	PrefixOpExpr struct {
		Kind    string   `json:"kind"`
		Op      PrefixOp `json:"op"`
		Operand Expr     `json:"operand"`
		Loc     `json:"loc"`
	}
	// CastExpr is "expr as Type".  Type is nil only for trees built by
	// hand; the parser always sets it.
	CastExpr struct {
		Kind string `json:"kind"`
		Expr Expr   `json:"expr"`
		Type Type   `json:"type"`
		Loc  `json:"loc"`
	}
	// FnCallExpr takes the position of Func.
	FnCallExpr struct {
		Kind string `json:"kind"`
		Func Expr   `json:"func"`
		Args []Expr `json:"args"`
		Loc  `json:"loc"`
	}
	ReturnExpr struct {
		Kind  string `json:"kind"`
		Value Expr   `json:"value"`
		Loc   `json:"loc"`
	}
	NumberLiteral struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
		Loc  `json:"loc"`
	}
	// StringLiteral holds the decoded value without quotes.
	StringLiteral struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
		Loc   `json:"loc"`
	}
	Unreachable struct {
		Kind string `json:"kind"`
		Loc  `json:"loc"`
	}
	Symbol struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		Loc  `json:"loc"`
	}
)

func (*Block) exprNode()         {}
func (*BinOpExpr) exprNode()     {}
func (*PrefixOpExpr) exprNode()  {}
func (*CastExpr) exprNode()      {}
func (*FnCallExpr) exprNode()    {}
func (*ReturnExpr) exprNode()    {}
func (*NumberLiteral) exprNode() {}
func (*StringLiteral) exprNode() {}
func (*Unreachable) exprNode()   {}
func (*Symbol) exprNode()        {}
