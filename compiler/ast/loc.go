// Package ast declares the types used to represent syntax trees for
// compilation units.
package ast

// This module is derived from the GO AST design pattern in
// https://golang.org/pkg/go/ast/
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import "github.com/brimdata/zfront/compiler/srcfiles"

type Node interface {
	Pos() Loc // Position of the token that introduced the node.
}

// Loc is the source position of a node.  Line and Column are 1-based.
// Owner is the file the node was parsed from.
type Loc struct {
	Owner  *srcfiles.File `json:"-"`
	Line   int            `json:"line"`
	Column int            `json:"column"`
}

func NewLoc(owner *srcfiles.File, line, column int) Loc {
	return Loc{owner, line, column}
}

func (l Loc) Pos() Loc { return l }

// LocOf returns the position of n.  It is used for nodes synthesized
// around an existing child, e.g., a call wrapping its callee, which take
// the position of the child rather than of any token.
func LocOf(n Node) Loc {
	return n.Pos()
}
