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

package engine

import "github.com/Janko-dev/raxio/ast"

// MatchOne attempts to match pattern L against the root of subject C,
// producing a new term. It never fails: if L does not structurally match
// C's root, C is returned unchanged (P1). The four cases are exhaustive by
// (C, L) shape (§4.1):
//
//  1. (Variable, Variable): same name -> clone of R; else C unchanged.
//  2. (Functor, Functor): same head/arity and bindable args -> substitute(R,
//     bindings); otherwise C unchanged.
//  3. (Variable, Functor): C unchanged — a bare variable subject can't
//     satisfy a functor pattern.
//  4. (Functor, Variable): a single-level argument substitution, not a
//     full recursive descent — see matchBareVariable.
func MatchOne(c, l, r ast.Expr) ast.Expr {
	switch cn := c.(type) {
	case *ast.Variable:
		if ln, ok := l.(*ast.Variable); ok && cn.Name == ln.Name {
			return ast.Clone(r)
		}
		// Either L is a Functor (case 3: a variable subject can't
		// satisfy it) or the names differ (case 1, no match).
		return c

	case *ast.Functor:
		switch ln := l.(type) {
		case *ast.Functor:
			if cn.Head != ln.Head || len(cn.Args) != len(ln.Args) {
				return c
			}
			b := make(bindings, len(ln.Args))
			if !bind(ln.Args, cn.Args, b) {
				return c
			}
			return substitute(r, b)
		case *ast.Variable:
			return matchBareVariable(cn, ln, r)
		}
	}
	return c
}

// matchBareVariable implements §4.1 case 4: the pattern is a bare
// Variable, so there is no structure to recurse into. The result is a new
// Functor with the same head, whose argument list maps over c.Args: each
// argument that is itself a Variable named l.Name becomes a clone of R;
// every other argument (including nested Functors) is kept unchanged.
// This is asymmetric with the Functor-vs-Functor case on purpose — it is
// preserved reference behavior, not a simplification (§9 open question).
func matchBareVariable(c *ast.Functor, l *ast.Variable, r ast.Expr) ast.Expr {
	args := make([]ast.Expr, len(c.Args))
	for i, a := range c.Args {
		if v, ok := a.(*ast.Variable); ok && v.Name == l.Name {
			args[i] = ast.Clone(r)
		} else {
			args[i] = a
		}
	}
	return &ast.Functor{Head: c.Head, Args: args}
}
