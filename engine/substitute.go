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

// substitute instantiates a template R under a (possibly empty) binding
// table, by pure structural recursion (§4.2, P5 "substituter is a pure
// tree-map"):
//
//   - Variable v: if v.Name is a key in b, return a clone of its image;
//     otherwise v is a free symbol in the template and is kept as-is.
//   - Functor h(args…): return Functor(h, [substitute(a, b) for a in args]).
//
// substitute never fails and never consults anything beyond b.
func substitute(r ast.Expr, b bindings) ast.Expr {
	switch n := r.(type) {
	case *ast.Variable:
		if img, ok := b[n.Name]; ok {
			return ast.Clone(img)
		}
		return ast.Clone(n)
	case *ast.Functor:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = substitute(a, b)
		}
		return &ast.Functor{Head: n.Head, Args: args}
	default:
		panic("engine: unknown Expr type")
	}
}
