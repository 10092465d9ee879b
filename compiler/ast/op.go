package ast

import "fmt"

type BinOp int

const (
	BinOpInvalid BinOp = iota
	BinOpBoolOr
	BinOpBoolAnd
	BinOpCmpEq
	BinOpCmpNotEq
	BinOpCmpLessThan
	BinOpCmpGreaterThan
	BinOpCmpLessOrEq
	BinOpCmpGreaterOrEq
	BinOpBinOr
	BinOpBinXor
	BinOpBinAnd
	BinOpBitShiftLeft
	BinOpBitShiftRight
	BinOpAdd
	BinOpSub
	BinOpMult
	BinOpDiv
	BinOpMod
)

var binOpStrings = [...]string{
	BinOpInvalid:        "(invalid)",
	BinOpBoolOr:         "||",
	BinOpBoolAnd:        "&&",
	BinOpCmpEq:          "==",
	BinOpCmpNotEq:       "!=",
	BinOpCmpLessThan:    "<",
	BinOpCmpGreaterThan: ">",
	BinOpCmpLessOrEq:    "<=",
	BinOpCmpGreaterOrEq: ">=",
	BinOpBinOr:          "|",
	BinOpBinXor:         "^",
	BinOpBinAnd:         "&",
	BinOpBitShiftLeft:   "<<",
	BinOpBitShiftRight:  ">>",
	BinOpAdd:            "+",
	BinOpSub:            "-",
	BinOpMult:           "*",
	BinOpDiv:            "/",
	BinOpMod:            "%",
}

func (o BinOp) String() string {
	if o < 0 || int(o) >= len(binOpStrings) {
		return fmt.Sprintf("BinOp(%d)", int(o))
	}
	return binOpStrings[o]
}

func (o BinOp) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type PrefixOp int

const (
	PrefixOpInvalid PrefixOp = iota
	PrefixOpNegation
	PrefixOpBoolNot
	PrefixOpBinNot
)

func (o PrefixOp) String() string {
	switch o {
	case PrefixOpNegation:
		return "-"
	case PrefixOpBoolNot:
		return "!"
	case PrefixOpBinNot:
		return "~"
	case PrefixOpInvalid:
		return "(invalid)"
	}
	return fmt.Sprintf("PrefixOp(%d)", int(o))
}

func (o PrefixOp) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
