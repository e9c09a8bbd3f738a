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

// Traverse rewrites every sub-term of c at exactly depth d, left to right,
// with MatchOne(node, l, r). Depth is edges from the root; the root is
// depth 0 (§4.3).
//
//   - d == 0: apply MatchOne at the root.
//   - d > 0, c is a Variable: c has no children to descend into; returned
//     unchanged (a depth overrun is silently ignored, not an error).
//   - d > 0, c is a Functor: recurse into every argument at depth d-1,
//     rebuilding the Functor around the results.
//
// The result at depth d is not re-scanned after replacement — traversal
// is single-pass, not a fixpoint (P4: Traverse(c, l, r, 0) == MatchOne(c,
// l, r)).
func Traverse(c, l, r ast.Expr, d int) ast.Expr {
	if d == 0 {
		return MatchOne(c, l, r)
	}
	f, ok := c.(*ast.Functor)
	if !ok {
		return c
	}
	args := make([]ast.Expr, len(f.Args))
	for i, a := range f.Args {
		args[i] = Traverse(a, l, r, d-1)
	}
	return &ast.Functor{HeadPos: f.HeadPos, Head: f.Head, Args: args}
}
