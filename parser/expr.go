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
	"github.com/Janko-dev/raxio/ast"
	"github.com/Janko-dev/raxio/token"
)

// parseTerm implements `term := factor (("+"|"-") factor)*`, left
// associative, desugaring each operator into an add/sub Functor.
func (p *parser) parseTerm() (ast.Expr, bool) {
	x, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	for p.tok == token.ADD || p.tok == token.SUB {
		pos := p.pos
		head := ast.HeadAdd
		if p.tok == token.SUB {
			head = ast.HeadSub
		}
		p.next()
		y, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		x = &ast.Functor{HeadPos: pos, Head: head, Args: []ast.Expr{x, y}}
	}
	return x, true
}

// parseFactor implements `factor := atom (("*"|"/") atom)*`, binding
// tighter than parseTerm's +/-.
func (p *parser) parseFactor() (ast.Expr, bool) {
	x, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for p.tok == token.MUL || p.tok == token.QUO {
		pos := p.pos
		head := ast.HeadMul
		if p.tok == token.QUO {
			head = ast.HeadDiv
		}
		p.next()
		y, ok := p.parseAtom()
		if !ok {
			return nil, false
		}
		x = &ast.Functor{HeadPos: pos, Head: head, Args: []ast.Expr{x, y}}
	}
	return x, true
}

// parseAtom implements:
//
//	atom := IDENT ( "(" args? ")" )?   // Variable or Functor
//	      | NUMBER                     // Variable with digit name
//	      | "(" args? ")"              // group(…)
func (p *parser) parseAtom() (ast.Expr, bool) {
	switch p.tok {
	case token.IDENT:
		pos, name := p.pos, p.lit
		p.next()
		if p.tok == token.LPAREN {
			args, ok := p.parseArgs()
			if !ok {
				return nil, false
			}
			return &ast.Functor{HeadPos: pos, Head: name, Args: args}, true
		}
		return &ast.Variable{NamePos: pos, Name: name}, true

	case token.NUMBER:
		pos, lit := p.pos, p.lit
		p.next()
		return &ast.Variable{NamePos: pos, Name: lit}, true

	case token.LPAREN:
		pos := p.pos
		args, ok := p.parseArgs()
		if !ok {
			return nil, false
		}
		return &ast.Functor{HeadPos: pos, Head: ast.HeadGroup, Args: args}, true

	default:
		p.errorf(p.pos, "expected operand, found %s", describe(p.tok, p.lit))
		return nil, false
	}
}

// parseArgs parses `"(" args? ")"` where `args := term ("," term)*`. The
// opening '(' must be the current token.
func (p *parser) parseArgs() ([]ast.Expr, bool) {
	p.expect(token.LPAREN)
	var args []ast.Expr
	if p.tok != token.RPAREN {
		for {
			arg, ok := p.parseTerm()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if p.tok != token.COMMA {
				break
			}
			p.next()
		}
	}
	p.expect(token.RPAREN)
	return args, true
}
