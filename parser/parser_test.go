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

package parser

import (
	"testing"

	"github.com/Janko-dev/raxio/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diffOpts() cmp.Option {
	return cmp.Options{
		cmpopts.IgnoreFields(ast.Variable{}, "NamePos"),
		cmpopts.IgnoreFields(ast.Functor{}, "HeadPos"),
		cmpopts.IgnoreFields(ast.Define{}, "DefPos"),
		cmpopts.IgnoreFields(ast.Apply{}, "NamePos"),
		cmpopts.IgnoreFields(ast.End{}, "EndPos"),
	}
}

func v(name string) *ast.Variable { return ast.NewVariable(name) }
func f(head string, args ...ast.Expr) *ast.Functor { return ast.NewFunctor(head, args...) }

func TestParseFile_Define(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`def swap as f(a, b) => f(b, a)`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{
		&ast.Define{
			Name: "swap",
			L:    f("f", v("a"), v("b")),
			R:    f("f", v("b"), v("a")),
		},
	}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_ExprStmt(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`f(1, 0)`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.ExprStmt{E: f("f", v("1"), v("0"))}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_Apply(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`swap at 0`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.Apply{Name: "swap", Depth: 0}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_InlineRule(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`g(x) => h(x) at 0`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.Rule{L: f("g", v("x")), R: f("h", v("x")), Depth: 0}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_EndWithPath(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`end "out.txt"`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.End{Path: "out.txt"}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_EndWithoutPath(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`end`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.End{}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_ArithmeticPrecedence(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`x + y * z`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.ExprStmt{E: f(ast.HeadAdd, v("x"), f(ast.HeadMul, v("y"), v("z")))}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("precedence mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_LeftAssociative(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`x - y - z`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.ExprStmt{E: f(ast.HeadSub, f(ast.HeadSub, v("x"), v("y")), v("z"))}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("left-associativity mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_Group(t *testing.T) {
	stmts, err := ParseFile("test", []byte(`(e1, e2)`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.ExprStmt{E: f(ast.HeadGroup, v("e1"), v("e2"))}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("group mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_FullScript(t *testing.T) {
	src := `def swap as f(a, b) => f(b, a)
f(1, 0)
swap at 0
end`
	stmts, err := ParseFile("test", []byte(src))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(stmts) != 4 {
		t.Fatalf("len(stmts) = %d, want 4", len(stmts))
	}
}

func TestParseFile_MalformedArrow(t *testing.T) {
	_, err := ParseFile("test", []byte(`f(x) =x h(x) at 0`))
	if err == nil {
		t.Fatalf("expected a lex error for malformed '=>'")
	}
}

func TestParseFile_MissingDepth(t *testing.T) {
	_, err := ParseFile("test", []byte(`f(x) => g(x) at`))
	if err == nil {
		t.Fatalf("expected a parse error for missing depth value")
	}
}

func TestParseFile_KeywordAsIdentifierPrefix(t *testing.T) {
	// "definitely" must lex as one IDENT, not as the keyword "def" followed
	// by "initely" (spec §6: keywords recognized only at a token boundary).
	stmts, err := ParseFile("test", []byte(`definitely`))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []ast.Stmt{&ast.ExprStmt{E: v("definitely")}}
	if diff := cmp.Diff(want, stmts, diffOpts()); diff != "" {
		t.Errorf("keyword-prefix mismatch (-want +got):\n%s", diff)
	}
}
