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

package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/Janko-dev/raxio/ast"
)

// Transcript renders the current matching session's history and
// derivation in the export format of spec §4.4. It is written even if the
// session had zero rule applications (§9: preserved reference behavior —
// an anchor-only session still produces "Start pattern matching on
// <e_0>\n\nResult: <e_0>").
func (s *Session) Transcript() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Start pattern matching on %s", ast.Sprint(s.History[0]))

	for i, step := range s.Derivation {
		fmt.Fprintf(&b, "\n\n%d. Applying rule: %s => %s at depth %d, results in:\n    %s",
			i+1, ast.Sprint(step.L), ast.Sprint(step.R), step.Depth, ast.Sprint(s.History[i+1]))
	}

	top, _ := s.Top()
	fmt.Fprintf(&b, "\n\nResult: %s", ast.Sprint(top))
	return b.String()
}

// exportTranscript writes the current session's Transcript to path,
// overwriting any existing file.
func (s *Session) exportTranscript(path string) error {
	return os.WriteFile(path, []byte(s.Transcript()), 0o644)
}
