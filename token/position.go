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

package token

import (
	"fmt"
	"sort"
)

// Position describes an arbitrary, printable source position: a filename,
// byte offset, line, and column. A Position is valid if Line > 0.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// IsValid reports whether the position is valid.
func (pos Position) IsValid() bool { return pos.Line > 0 }

func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact, comparable reference into a File's offset table. The
// zero Pos is NoPos: it carries no file or line information and never
// participates in engine semantics, only in diagnostics.
type Pos struct {
	file   *File
	offset int
}

// NoPos is the zero value for Pos.
var NoPos = Pos{}

// IsValid reports whether p refers to an actual offset within a File.
func (p Pos) IsValid() bool { return p.file != nil }

// Position expands p into a full Position, resolving line and column.
func (p Pos) Position() Position {
	if !p.IsValid() {
		return Position{}
	}
	return p.file.position(p.offset)
}

func (p Pos) String() string { return p.Position().String() }

// File tracks line-start offsets for a single source text, so that a byte
// offset can be turned into a line/column pair on demand.
type File struct {
	name  string
	size  int
	lines []int // offsets of the start of each line; lines[0] == 0
}

// NewFile creates a File for diagnostics purposes. size is the length in
// bytes of the source text that will be scanned.
func NewFile(name string, size int) *File {
	return &File{name: name, size: size, lines: []int{0}}
}

// Name returns the filename (or REPL label) this File was created for.
func (f *File) Name() string { return f.name }

// AddLine records that a new line begins at offset. Offsets must be added
// in increasing order, as the scanner encounters newlines left to right.
func (f *File) AddLine(offset int) {
	if n := len(f.lines); n == 0 || f.lines[n-1] < offset {
		f.lines = append(f.lines, offset)
	}
}

// Pos returns the compact position for a byte offset into this file.
func (f *File) Pos(offset int) Pos {
	return Pos{file: f, offset: offset}
}

func (f *File) position(offset int) Position {
	// lines[i] is the offset where line i+1 (1-based) begins; find the
	// last line-start <= offset.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Position{
		Filename: f.name,
		Offset:   offset,
		Line:     i + 1,
		Column:   offset - f.lines[i] + 1,
	}
}
