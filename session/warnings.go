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

import "fmt"

// Warning is a non-fatal engine diagnostic (spec §4.5, §7): an out-of-state
// statement, or a reference to an undefined rule. Warnings never abort
// statement processing; they accumulate on Session.Warnings and are
// drained by the caller at the end of a batch.
type Warning struct {
	Kind WarningKind
	// Name is set for RuleDoesNotExist; empty for the no-effect kinds.
	Name string
}

// WarningKind enumerates the warning categories named in spec §4.4's
// dispatch table.
type WarningKind int

const (
	ExprHasNoEffect WarningKind = iota
	ApplyRuleNoEffect
	InLineRuleNoEffect
	EndStmtHasNoEffect
	RuleDoesNotExist
)

func (w Warning) Error() string { return w.String() }

func (w Warning) String() string {
	switch w.Kind {
	case ExprHasNoEffect:
		return "expression statement has no effect while already matching"
	case ApplyRuleNoEffect:
		return "apply statement has no effect outside of a matching session"
	case InLineRuleNoEffect:
		return "in-line rule has no effect outside of a matching session"
	case EndStmtHasNoEffect:
		return "end statement has no effect outside of a matching session"
	case RuleDoesNotExist:
		return fmt.Sprintf("rule %q does not exist", w.Name)
	default:
		return "unknown warning"
	}
}
