package ast

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

type FnDef struct {
	Kind  string   `json:"kind"`
	Proto *FnProto `json:"proto"`
	Body  *Block   `json:"body"`
	Loc   `json:"loc"`
}

type ExternBlock struct {
	Kind       string       `json:"kind"`
	Directives []*Directive `json:"directives"`
	Decls      []*FnDecl    `json:"decls"`
	Loc        `json:"loc"`
}

// RootExportDecl is "export <kind> <name>;", e.g., export executable "hello";
type RootExportDecl struct {
	Kind       string       `json:"kind"`
	ExportKind string       `json:"export_kind"`
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives"`
	Loc        `json:"loc"`
}

type UseDecl struct {
	Kind       string       `json:"kind"`
	Path       string       `json:"path"`
	Directives []*Directive `json:"directives"`
	Loc        `json:"loc"`
}

func (*FnDef) declNode()          {}
func (*ExternBlock) declNode()    {}
func (*RootExportDecl) declNode() {}
func (*UseDecl) declNode()        {}
