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

// Command raxio is an interactive term-rewriting interpreter. Run it with
// no arguments for a REPL, or with a single file argument to interpret a
// script and exit.
package main

import (
	"os"

	"github.com/Janko-dev/raxio/repl"
)

func main() {
	os.Exit(repl.Main())
}
