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

// Package engine is the rewrite engine: one-level pattern matching,
// template substitution, and depth-controlled traversal over ast.Expr
// trees. It never fails on well-formed input — a pattern that doesn't
// match returns the subject unchanged (spec §4.5).
package engine

import "github.com/Janko-dev/raxio/ast"

// bindings maps a pattern variable's name to the subject sub-term it bound
// to. The reference semantics only ever inserts with Variable-pattern keys
// and only ever queries with Variable expressions, so the table is keyed
// by Identifier (the variable's name) rather than by an Expr value,
// avoiding the need to hash or compare arbitrary trees (§9 of the spec).
type bindings map[string]ast.Expr

// bind constructs the binding table for a pattern's argument list against
// a subject's argument list of the same length, walking pairs in order
// (§4.1, "Binding Table construction"):
//
//   - (Variable, anything)      -> insert l.Name -> c
//   - (Functor, Variable)       -> fail
//   - (Functor, Functor)        -> recurse if heads/arities match, else fail
//
// A pattern variable bound twice to different subjects is resolved
// last-binding-wins (no occurs-check, no non-linear-pattern enforcement);
// this is the reference semantics, not a simplification (§9 open question).
func bind(patArgs, subjArgs []ast.Expr, b bindings) bool {
	for i, l := range patArgs {
		c := subjArgs[i]
		switch lp := l.(type) {
		case *ast.Variable:
			b[lp.Name] = c
		case *ast.Functor:
			cf, ok := c.(*ast.Functor)
			if !ok {
				return false
			}
			if lp.Head != cf.Head || len(lp.Args) != len(cf.Args) {
				return false
			}
			if !bind(lp.Args, cf.Args, b) {
				return false
			}
		}
	}
	return true
}
