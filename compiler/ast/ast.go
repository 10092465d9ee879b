package ast

// Root is the tree for one compilation unit.
type Root struct {
	Kind  string `json:"kind"`
	Decls []Decl `json:"decls"`
	Loc   `json:"loc"`
}

// A Directive is a "#name("param")" annotation attached to the
// declaration that follows it.
type Directive struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Param string `json:"param"`
	Loc   `json:"loc"`
}

type Visibility int

const (
	Private Visibility = iota
	Public
	Export
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "pub"
	case Export:
		return "export"
	}
	return "private"
}

func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type FnProto struct {
	Kind       string       `json:"kind"`
	Visibility Visibility   `json:"visibility"`
	Name       string       `json:"name"`
	Params     []*ParamDecl `json:"params"`
	ReturnType Type         `json:"return_type"`
	Directives []*Directive `json:"directives"`
	Loc        `json:"loc"`
}

type ParamDecl struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Type Type   `json:"type"`
	Loc  `json:"loc"`
}

// FnDecl is a prototype without a body as found in an extern block.
type FnDecl struct {
	Kind  string   `json:"kind"`
	Proto *FnProto `json:"proto"`
	Loc   `json:"loc"`
}
