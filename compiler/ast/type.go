package ast

type Type interface {
	Node
	typeNode()
}

type (
	// PrimitiveType names a type, including the "unreachable" keyword
	// and the "void" type implied by a missing return type.
	PrimitiveType struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		Loc  `json:"loc"`
	}
	PointerType struct {
		Kind  string `json:"kind"`
		Const bool   `json:"const"`
		Elem  Type   `json:"elem"`
		Loc   `json:"loc"`
	}
)

func (*PrimitiveType) typeNode() {}
func (*PointerType) typeNode()   {}
