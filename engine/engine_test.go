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

import (
	"testing"

	"github.com/Janko-dev/raxio/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// exprDiff reports a diff between two Expr trees, ignoring source
// positions, which are diagnostics metadata and never part of a term's
// semantic identity (SPEC_FULL.md §3).
func exprDiff(want, got ast.Expr) string {
	return cmp.Diff(want, got,
		cmpopts.IgnoreFields(ast.Variable{}, "NamePos"),
		cmpopts.IgnoreFields(ast.Functor{}, "HeadPos"),
	)
}

func v(name string) *ast.Variable { return ast.NewVariable(name) }

func f(head string, args ...ast.Expr) *ast.Functor { return ast.NewFunctor(head, args...) }

// P1: identity on no-match.
func TestMatchOne_NoMatchIsIdentity(t *testing.T) {
	c := f("g", v("A"))
	l := f("h", v("x"))
	r := v("z")
	got := MatchOne(c, l, r)
	if diff := exprDiff(c, got); diff != "" {
		t.Errorf("MatchOne no-match should return C unchanged (-want +got):\n%s", diff)
	}
}

// P2: reflexive replace on matching leaves.
func TestMatchOne_VariableVariableReflexive(t *testing.T) {
	got := MatchOne(v("x"), v("x"), f("wrapped", v("x")))
	want := f("wrapped", v("x"))
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("MatchOne(v,v) mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchOne_VariableVariableNoMatch(t *testing.T) {
	got := MatchOne(v("x"), v("y"), f("wrapped", v("y")))
	if diff := exprDiff(v("x"), got); diff != "" {
		t.Errorf("MatchOne(v,v) differing names should be identity (-want +got):\n%s", diff)
	}
}

func TestMatchOne_VariableAgainstFunctorIsIdentity(t *testing.T) {
	c := v("A")
	l := f("h", v("x"))
	got := MatchOne(c, l, v("z"))
	if diff := exprDiff(c, got); diff != "" {
		t.Errorf("case 3 (Variable C, Functor L) should be identity (-want +got):\n%s", diff)
	}
}

// S1: swap.
func TestMatchOne_FunctorFunctorSwap(t *testing.T) {
	l := f("f", v("a"), v("b"))
	r := f("f", v("b"), v("a"))
	c := f("f", v("1"), v("0"))
	got := MatchOne(c, l, r)
	want := f("f", v("0"), v("1"))
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("swap mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchOne_FunctorHeadArityMismatchIsIdentity(t *testing.T) {
	c := f("g", v("x"), v("A")) // arity 2, different head than pattern
	l := f("h", v("x"))
	got := MatchOne(c, l, f("wrapped", v("x")))
	if diff := exprDiff(c, got); diff != "" {
		t.Errorf("head mismatch should be identity (-want +got):\n%s", diff)
	}
}

// S4: in-line rule head disagreement at root stays silent (identity).
func TestMatchOne_S4_NoMatchSilence(t *testing.T) {
	c := f("f", v("A"))
	l := f("g", v("x"))
	r := f("h", v("x"))
	got := MatchOne(c, l, r)
	if diff := exprDiff(c, got); diff != "" {
		t.Errorf("S4 mismatch (-want +got):\n%s", diff)
	}
}

// S3: bare-variable pattern, one-level argument substitution. Neither "A"
// nor "B" is named "x", so neither argument is replaced — per open-question
// decision 6 of DESIGN.md, spec.md's S3 worked example ("h(t(A), t(B))") conflicts with
// original_source/src/runtime.rs's match_patterns (lines 233-251), which
// only replaces an argument Variable whose name equals the pattern's name.
func TestMatchOne_BareVariablePattern(t *testing.T) {
	c := f("h", v("A"), v("B"))
	l := v("x")
	r := f("t", v("x"))
	got := MatchOne(c, l, r)
	want := f("h", v("A"), v("B"))
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("bare-variable pattern mismatch (-want +got):\n%s", diff)
	}
}

// §9: nested Functor arguments are left untouched by the bare-variable
// case — only immediate Variable children matching the pattern's name are
// replaced.
func TestMatchOne_BareVariablePattern_NestedFunctorUntouched(t *testing.T) {
	nested := f("inner", v("x")) // contains a Variable named "x", but nested
	c := f("h", v("x"), nested)
	l := v("x")
	r := f("t", v("x"))
	got := MatchOne(c, l, r)
	want := f("h", f("t", v("x")), nested)
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("nested functor should be untouched (-want +got):\n%s", diff)
	}
}

// Binding collisions: last-binding-wins (§9 open question, preserved).
func TestMatchOne_NonLinearPatternLastBindingWins(t *testing.T) {
	c := f("f", v("1"), v("2"))
	l := f("f", v("x"), v("x"))
	r := v("x")
	got := MatchOne(c, l, r)
	want := v("2") // second occurrence of x overwrites the first
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("non-linear pattern mismatch (-want +got):\n%s", diff)
	}
}

// P4: depth-0 traversal agrees with MatchOne.
func TestTraverse_DepthZeroAgreesWithMatchOne(t *testing.T) {
	c := f("f", v("A"))
	l := f("f", v("x"))
	r := f("g", v("x"))
	want := MatchOne(c, l, r)
	got := Traverse(c, l, r, 0)
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("Traverse(d=0) should agree with MatchOne (-want +got):\n%s", diff)
	}
}

// S2: depth traversal.
func TestTraverse_DepthOne(t *testing.T) {
	l := f("f", v("x"))
	r := f("g", v("x"), v("x"))
	c := f("f", f("f", v("A")))
	got := Traverse(c, l, r, 1)
	want := f("f", f("g", v("A"), v("A")))
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("depth-1 traversal mismatch (-want +got):\n%s", diff)
	}
}

// Depth overrun: a leaf reached before depth is exhausted is unchanged.
func TestTraverse_DepthOverrunIsIdentity(t *testing.T) {
	c := f("f", v("A"))
	l := f("f", v("x"))
	r := f("g", v("x"))
	got := Traverse(c, l, r, 3)
	if diff := exprDiff(c, got); diff != "" {
		t.Errorf("depth overrun should be identity (-want +got):\n%s", diff)
	}
}

// P5: substitute with an empty binding table is the identity tree-map.
func TestSubstitute_EmptyBindingsIsIdentity(t *testing.T) {
	r := f("g", v("free"), f("h", v("also_free")))
	got := substitute(r, bindings{})
	if diff := exprDiff(r, got); diff != "" {
		t.Errorf("substitute with no bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstitute_BoundVariableReplaced(t *testing.T) {
	r := f("g", v("x"), v("y"))
	b := bindings{"x": v("A"), "y": v("B")}
	got := substitute(r, b)
	want := f("g", v("A"), v("B"))
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("substitute mismatch (-want +got):\n%s", diff)
	}
}

// Infix-sugared example (S6): comm rule a+b => b+a applied to x+y.
func TestMatchOne_InfixSugarRoundTrip(t *testing.T) {
	l := f(ast.HeadAdd, v("a"), v("b"))
	r := f(ast.HeadAdd, v("b"), v("a"))
	c := f(ast.HeadAdd, v("x"), v("y"))
	got := MatchOne(c, l, r)
	want := f(ast.HeadAdd, v("y"), v("x"))
	if diff := exprDiff(want, got); diff != "" {
		t.Errorf("infix rule mismatch (-want +got):\n%s", diff)
	}
	if s := ast.Sprint(got); s != "y + x" {
		t.Errorf("Sprint(got) = %q, want %q", s, "y + x")
	}
}
