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

// Package errors defines the positioned error type shared by the raxio
// scanner and parser, and a List that accumulates more than one of them
// per batch.
package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Janko-dev/raxio/token"
)

// Error is a lexical or syntactic error tied to a source position.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// Newf creates a positioned Error.
func Newf(pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// List is an accumulated, sortable collection of *Error values produced
// while scanning or parsing a single batch (one REPL line, or one script
// file). A List with no entries is not an error: call Err to get an error
// value suitable for returning, or nil if the list is empty.
type List []*Error

// Add appends a new positioned error to the list.
func (l *List) Add(pos token.Position, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

// Addf appends a new positioned, formatted error to the list.
func (l *List) Addf(pos token.Position, format string, args ...interface{}) {
	l.Add(pos, fmt.Sprintf(format, args...))
}

// Reset empties the list so it can be reused for the next batch.
func (l *List) Reset() { *l = (*l)[:0] }

// Len, Swap, Less implement sort.Interface, ordering by source position.
func (l List) Len() int      { return len(l) }
func (l List) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l List) Less(i, j int) bool {
	pi, pj := l[i].Pos, l[j].Pos
	if pi.Filename != pj.Filename {
		return pi.Filename < pj.Filename
	}
	if pi.Line != pj.Line {
		return pi.Line < pj.Line
	}
	return pi.Column < pj.Column
}

// Sort orders the list by source position, for stable, readable output.
func (l List) Sort() { sort.Sort(l) }

// Err returns the list as an error, or nil if the list has no entries.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (and %d more errors)", l[0], len(l)-1)
	return b.String()
}
