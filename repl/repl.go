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

package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Janko-dev/raxio/ast"
	"github.com/Janko-dev/raxio/parser"
	"github.com/Janko-dev/raxio/session"
)

const (
	globalPrompt   = "> "
	matchingPrompt = "    ~> "

	helpText = `raxio: an interactive term-rewriting interpreter

Statements:
  def NAME as L => R    define a rewrite rule
  EXPR                  start a matching session anchored at EXPR
  NAME at DEPTH         apply the named rule at depth DEPTH
  L => R at DEPTH       apply an in-line rule at depth DEPTH
  end ["path"]          end the session, optionally writing a transcript

REPL commands (not statements):
  help    show this text
  undo    undo the last rule application
  quit    exit raxio`
)

// runREPL drives the read-eval-print loop described in spec §6: a prompt
// that changes with the session mode, one statement (or REPL command) per
// line, with warnings from a line's statement printed immediately after it.
func runREPL(c *Command, in io.Reader, out io.Writer) error {
	s := session.New()
	scanner := bufio.NewScanner(in)

	prompt := func() {
		if s.Mode == session.Matching {
			fmt.Fprint(out, matchingPrompt)
		} else {
			fmt.Fprint(out, globalPrompt)
		}
	}

	prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			prompt()
			continue
		}

		switch line {
		case "quit":
			return nil
		case "help":
			fmt.Fprintln(out, helpText)
			prompt()
			continue
		case "undo":
			top, ok := s.Undo()
			if ok {
				fmt.Fprintln(out, ast.Display(top, "    "))
			}
			prompt()
			continue
		}

		runBatch(s, "<repl>", line, out, c.Stderr())
		prompt()
	}
	return scanner.Err()
}

// runFile interprets an entire script file as one batch, then exits (spec
// §6, "raxio FILE — interpret file, then exit").
func runFile(c *Command, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(c.Stderr(), "cannot read %s: %v\n", path, err)
		return nil
	}
	s := session.New()
	runBatch(s, path, string(src), os.Stdout, c.Stderr())
	return nil
}

// runBatch parses src as one batch and dispatches every statement it
// yields against s, printing each statement's output and, at the end,
// every warning accumulated during the batch (spec §7: "warnings
// accumulate into a buffer drained at end of batch"). Parse errors and
// warnings are reported but never cause a non-zero exit code; only I/O
// errors surfaced from Dispatch (a failed transcript write) are written to
// errOut, which the caller wires to something that does (spec §6,
// "Exit-code wiring").
func runBatch(s *session.Session, filename, src string, out, errOut io.Writer) {
	stmts, err := parser.ParseFile(filename, []byte(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	for _, stmt := range stmts {
		text, derr := s.Dispatch(stmt)
		if text != "" {
			fmt.Fprintln(out, text)
		}
		if derr != nil {
			fmt.Fprintln(errOut, derr)
		}
	}

	for _, w := range s.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	s.Warnings = nil
}
