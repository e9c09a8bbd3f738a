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

package ast

import "strings"

// Sprint renders e in its sugared, infix form:
//   - a Variable prints as its name;
//   - a binary add/sub/mul/div Functor prints as "<arg0> <op> <arg1>";
//   - a group Functor prints as "(<arg0>, <arg1>, …)";
//   - any other Functor prints as "head(<arg0>, <arg1>, …)".
func Sprint(e Expr) string {
	var b strings.Builder
	writeSugared(&b, e)
	return b.String()
}

func writeSugared(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Variable:
		b.WriteString(n.Name)
	case *Functor:
		if op, ok := IsBinaryOp(n); ok {
			writeSugared(b, n.Args[0])
			b.WriteByte(' ')
			b.WriteString(op)
			b.WriteByte(' ')
			writeSugared(b, n.Args[1])
			return
		}
		if n.Head == HeadGroup {
			b.WriteByte('(')
			writeArgs(b, n.Args, writeSugared)
			b.WriteByte(')')
			return
		}
		b.WriteString(n.Head)
		b.WriteByte('(')
		writeArgs(b, n.Args, writeSugared)
		b.WriteByte(')')
	}
}

// SprintPrefix renders e in fully parenthesized functor-prefix form,
// without any infix or group re-sugaring: every Functor prints as
// "head(<arg0>, <arg1>, …)".
func SprintPrefix(e Expr) string {
	var b strings.Builder
	writePrefix(&b, e)
	return b.String()
}

func writePrefix(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Variable:
		b.WriteString(n.Name)
	case *Functor:
		b.WriteString(n.Head)
		b.WriteByte('(')
		writeArgs(b, n.Args, writePrefix)
		b.WriteByte(')')
	}
}

func writeArgs(b *strings.Builder, args []Expr, write func(*strings.Builder, Expr)) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		write(b, a)
	}
}

// containsBinaryOp reports whether e contains any add/sub/mul/div functor
// anywhere in its tree, including at the root.
func containsBinaryOp(e Expr) bool {
	f, ok := e.(*Functor)
	if !ok {
		return false
	}
	if _, ok := IsBinaryOp(f); ok {
		return true
	}
	for _, a := range f.Args {
		if containsBinaryOp(a) {
			return true
		}
	}
	return false
}

// Display renders e the way the REPL prints the current term, with prefix
// (e.g. "Result: " or "    ") prepended to the first line: the sugared
// form, plus — when e contains any binary operator sub-functor — a second
// line reading "As functor: <prefix form>", indented to align under the
// first line's text (mirroring original_source/src/runtime.rs's
// print_current_expr, which pads the second line to prefix.len() spaces).
func Display(e Expr, prefix string) string {
	sugared := prefix + Sprint(e)
	if !containsBinaryOp(e) {
		return sugared
	}
	return sugared + "\n" + strings.Repeat(" ", len(prefix)) + "As functor: " + SprintPrefix(e)
}
