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

// Package parser turns raxio source text into a sequence of ast.Stmt
// values, desugaring infix arithmetic and grouped tuples into functors as
// it goes (grammar in SPEC_FULL.md §6).
package parser

import (
	"strconv"

	"github.com/Janko-dev/raxio/ast"
	"github.com/Janko-dev/raxio/errors"
	"github.com/Janko-dev/raxio/scanner"
	"github.com/Janko-dev/raxio/token"
)

type parser struct {
	file   *token.File
	errors errors.List

	scanner scanner.Scanner

	pos token.Pos
	tok token.Token
	lit string
}

func (p *parser) init(filename string, src []byte) {
	p.file = token.NewFile(filename, len(src))
	p.scanner.Init(p.file, src, func(pos token.Position, msg string) {
		p.errors.Add(pos, msg)
	})
	p.next()
}

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.scanner.Scan()
}

func (p *parser) errorf(pos token.Pos, format string, args ...interface{}) {
	p.errors.Addf(pos.Position(), format, args...)
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorf(pos, "expected %s, found %s", tok, describe(p.tok, p.lit))
	}
	p.next()
	return pos
}

func describe(tok token.Token, lit string) string {
	if tok == token.IDENT || tok == token.NUMBER || tok == token.STRING {
		return lit
	}
	return tok.String()
}

// ParseFile parses an entire script (or one REPL line) into a sequence of
// statements. All lexical and syntactic errors found are returned together
// as an errors.List; statements up to the first unrecoverable error are
// still returned, since callers processing a whole file may want to report
// everything at once before giving up (§7 of SPEC_FULL.md).
func ParseFile(filename string, src []byte) ([]ast.Stmt, error) {
	var p parser
	p.init(filename, src)

	var stmts []ast.Stmt
	for p.tok != token.EOF {
		stmt, ok := p.parseStmt()
		if !ok {
			// parseStmt already recorded an error; skip to the next
			// statement boundary so one bad line doesn't cascade.
			p.syncToNextStmt()
			continue
		}
		stmts = append(stmts, stmt)
	}
	p.errors.Sort()
	return stmts, p.errors.Err()
}

// syncToNextStmt advances past tokens until DEF, END, or EOF. Only def and
// end statements are resynchronized on: expression, apply, and in-line rule
// statements between a malformed statement and the next def/end are
// skipped along with it.
func (p *parser) syncToNextStmt() {
	for p.tok != token.EOF {
		switch p.tok {
		case token.DEF, token.END:
			return
		}
		p.next()
	}
}

func (p *parser) parseStmt() (ast.Stmt, bool) {
	switch p.tok {
	case token.DEF:
		return p.parseDefine()
	case token.END:
		return p.parseEnd()
	default:
		return p.parseRuleOrExpr()
	}
}

// parseDefine parses `def IDENT as term => term`.
func (p *parser) parseDefine() (ast.Stmt, bool) {
	defPos := p.pos
	p.next() // consume 'def'

	if p.tok != token.IDENT {
		p.errorf(p.pos, "expected rule name after 'def', found %s", describe(p.tok, p.lit))
		return nil, false
	}
	name := p.lit
	p.next()

	p.expect(token.AS)

	l, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	p.expect(token.ARROW)
	r, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	return &ast.Define{DefPos: defPos, Name: name, L: l, R: r}, true
}

// parseEnd parses `end` or `end STRING`.
func (p *parser) parseEnd() (ast.Stmt, bool) {
	endPos := p.pos
	p.next() // consume 'end'
	path := ""
	if p.tok == token.STRING {
		path = p.lit
		p.next()
	}
	return &ast.End{EndPos: endPos, Path: path}, true
}

// parseRuleOrExpr parses `term` (an ExprStmt) or `term => term at NUMBER`
// (a Rule statement), per the grammar's `rule-or-expr` production. A bare
// identifier immediately followed by `at NUMBER` (no `=>`) parses as an
// Apply statement instead.
func (p *parser) parseRuleOrExpr() (ast.Stmt, bool) {
	if p.tok == token.IDENT && p.peekIsAt() {
		namePos := p.pos
		name := p.lit
		p.next() // name
		p.next() // 'at'
		depth, ok := p.parseDepth()
		if !ok {
			return nil, false
		}
		return &ast.Apply{NamePos: namePos, Name: name, Depth: depth}, true
	}

	l, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	if p.tok != token.ARROW {
		return &ast.ExprStmt{E: l}, true
	}
	p.next() // '=>'
	r, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	p.expect(token.AT)
	depth, ok := p.parseDepth()
	if !ok {
		return nil, false
	}
	return &ast.Rule{L: l, R: r, Depth: depth}, true
}

// peekIsAt reports whether the parser is sitting on a bare IDENT that is
// immediately followed by the `at` keyword, i.e. an Apply statement rather
// than the start of a larger term. It scans ahead one token and restores
// the parser's position, since the grammar needs one token of lookahead
// here to distinguish `swap at 0` (Apply) from `swap(x) => ...` (a term
// that happens to start with an identifier).
func (p *parser) peekIsAt() bool {
	save := p.scanner
	savePos, saveTok, saveLit := p.pos, p.tok, p.lit

	p.next()
	isAt := p.tok == token.AT

	p.scanner = save
	p.pos, p.tok, p.lit = savePos, saveTok, saveLit
	return isAt
}

func (p *parser) parseDepth() (int, bool) {
	if p.tok != token.NUMBER {
		p.errorf(p.pos, "expected depth value after 'at', found %s", describe(p.tok, p.lit))
		return 0, false
	}
	n, err := strconv.Atoi(p.lit)
	if err != nil {
		p.errorf(p.pos, "invalid depth %q: %v", p.lit, err)
		return 0, false
	}
	p.next()
	return n, true
}
