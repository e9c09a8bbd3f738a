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

// Package repl wires the session machine to a command-line interface: an
// interactive prompt loop, and a one-shot "interpret this file" mode, both
// reachable from the single raxio command tree (spec §6).
package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Command wraps a *cobra.Command the way cmd/cue's Command does: Stderr()
// returns a writer that both forwards to the real stderr and remembers
// that something was written, so Run can report a non-zero exit code even
// when the top-level error return is nil (SPEC_FULL.md §6, "Exit-code
// wiring").
type Command struct {
	root   *cobra.Command
	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = c.hasErr || len(b) > 0
	return os.Stderr.Write(b)
}

// Stderr returns the writer diagnostics should be printed to.
func (c *Command) Stderr() io.Writer { return (*errWriter)(c) }

// New builds the raxio command tree. args is the full command line minus
// the program name (os.Args[1:]).
func New(args []string) *Command {
	c := &Command{}
	root := &cobra.Command{
		Use:   "raxio [file]",
		Short: "an interactive term-rewriting interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(c, args[0])
			}
			return runREPL(c, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.SetArgs(args)
	c.root = root
	return c
}

// Run executes the command tree. It returns a non-nil error either when
// cobra reports one, or when anything was ever written to Stderr()
// (SPEC_FULL.md §6).
func (c *Command) Run() error {
	if err := c.root.Execute(); err != nil {
		return err
	}
	if c.hasErr {
		return fmt.Errorf("raxio: completed with errors")
	}
	return nil
}

// Main runs the raxio command line and returns the process exit code.
func Main() int {
	c := New(os.Args[1:])
	if err := c.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
