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

// Package scanner implements a lexer for raxio source text. It takes a
// []byte as source, which can then be tokenized through repeated calls to
// Scan.
package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/Janko-dev/raxio/token"
)

// ErrorHandler is called for each lexical error encountered, with the
// position of the offending byte and a human-readable message.
type ErrorHandler func(pos token.Position, msg string)

// A Scanner holds the scanner's internal state while tokenizing a source
// text. It must be initialized with Init before use.
type Scanner struct {
	file *token.File
	src  []byte
	err  ErrorHandler

	ch       rune // current character
	offset   int  // offset of ch
	rdOffset int  // offset after ch
}

// Init prepares s to scan src, whose diagnostics will be attributed to file.
// Lexical errors are reported via err, which may be nil to discard them.
func (s *Scanner) Init(file *token.File, src []byte, err ErrorHandler) {
	s.file = file
	s.src = src
	s.err = err
	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.next()
}

func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal NUL byte")
		case r >= utf8.RuneSelf:
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		s.ch = -1 // EOF sentinel
	}
}

func (s *Scanner) error(offset int, msg string) {
	if s.err != nil {
		s.err(s.file.Pos(offset).Position(), msg)
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.next()
	}
}

func (s *Scanner) scanIdentifier() string {
	start := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[start:s.offset])
}

func (s *Scanner) scanNumber() string {
	start := s.offset
	for isDigit(s.ch) {
		s.next()
	}
	return string(s.src[start:s.offset])
}

// scanString scans a "..." path literal. The opening quote has already been
// consumed by the caller.
func (s *Scanner) scanString() string {
	start := s.offset
	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(start-1, "string literal not terminated")
			return string(s.src[start:s.offset])
		}
		s.next()
		if ch == '"' {
			return string(s.src[start : s.offset-1])
		}
	}
}

// Scan reads the next token from the source. It returns token.EOF at the
// end of input.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
	s.skipWhitespace()

	pos = s.file.Pos(s.offset)

	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.Lookup(lit)
	case isDigit(ch):
		lit = s.scanNumber()
		tok = token.NUMBER
	default:
		s.next()
		switch ch {
		case -1:
			tok = token.EOF
		case '+':
			tok = token.ADD
		case '-':
			tok = token.SUB
		case '*':
			tok = token.MUL
		case '/':
			tok = token.QUO
		case '(':
			tok = token.LPAREN
			lit = "("
		case ')':
			tok = token.RPAREN
			lit = ")"
		case ',':
			tok = token.COMMA
			lit = ","
		case '=':
			if s.ch == '>' {
				s.next()
				tok = token.ARROW
				lit = "=>"
			} else {
				s.error(s.offset-1, "malformed '=>': expected '>' after '='")
				tok = token.ILLEGAL
			}
		case '"':
			tok = token.STRING
			lit = s.scanString()
		default:
			s.error(s.offset-1, "illegal character "+string(ch))
			tok = token.ILLEGAL
		}
	}
	return pos, tok, lit
}
