// Copyright 2024 The Raxio Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the term model raxio rewrites over (Variable,
// Functor), the statement forms the parser produces, and the surface
// pretty-printer.
package ast

import "github.com/Janko-dev/raxio/token"

// Expr is a first-order term: either a Variable leaf or a Functor node.
// Expr values are immutable once constructed; rewriting always produces a
// new Expr rather than mutating an existing one (I4 of the data model).
type Expr interface {
	exprNode()
	// Pos returns the source position this node was parsed from, or
	// token.NoPos for synthetic nodes built by the engine.
	Pos() token.Pos
}

// Variable is a leaf term identified by a name. Numeric literals are
// Variables whose Name is their decimal text; numbers are never evaluated.
type Variable struct {
	NamePos token.Pos
	Name    string
}

func (*Variable) exprNode()        {}
func (v *Variable) Pos() token.Pos { return v.NamePos }

// Functor is a term node with an identifier Head and zero or more ordered
// Args. Arity is len(Args); a zero-arity Functor is distinct from a
// same-named Variable.
type Functor struct {
	HeadPos token.Pos
	Head    string
	Args    []Expr
}

func (*Functor) exprNode()        {}
func (f *Functor) Pos() token.Pos { return f.HeadPos }

// Arity returns the number of arguments of f.
func (f *Functor) Arity() int { return len(f.Args) }

// Binary operator and grouping functor heads, used both by the parser
// (desugaring infix syntax) and by the printer (re-sugaring for display).
const (
	HeadAdd   = "add"
	HeadSub   = "sub"
	HeadMul   = "mul"
	HeadDiv   = "div"
	HeadGroup = "group"
)

var binaryOps = map[string]string{
	HeadAdd: "+",
	HeadSub: "-",
	HeadMul: "*",
	HeadDiv: "/",
}

// IsBinaryOp reports whether head is one of the sugared infix operator
// functors (add/sub/mul/div) with exactly two arguments.
func IsBinaryOp(f *Functor) (op string, ok bool) {
	if f.Arity() != 2 {
		return "", false
	}
	op, ok = binaryOps[f.Head]
	return op, ok
}

// NewVariable builds a synthetic Variable with no source position, for use
// by the engine when constructing rewritten terms.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

// NewFunctor builds a synthetic Functor with no source position.
func NewFunctor(head string, args ...Expr) *Functor {
	return &Functor{Head: head, Args: args}
}

// Clone produces a deep, independent copy of e. The engine clones R before
// splicing it into a new term so that no two positions in a rewritten tree
// share a mutable node (I4: terms are immutable, but defensive cloning
// keeps callers who might mutate a leaf they hold a reference to from
// affecting the session's history).
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case *Variable:
		v := *n
		return &v
	case *Functor:
		args := make([]Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = Clone(a)
		}
		return &Functor{HeadPos: n.HeadPos, Head: n.Head, Args: args}
	default:
		panic("ast: unknown Expr type")
	}
}

// Equal reports whether a and b are structurally equal, ignoring source
// positions. Used by the ast and session tests.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Functor:
		y, ok := b.(*Functor)
		if !ok || x.Head != y.Head || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
