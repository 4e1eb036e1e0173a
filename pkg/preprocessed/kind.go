// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package preprocessed

import "fmt"

// Kind identifies the generation rule of a preprocessed column.  Kinds are
// declared in priority order: amongst columns of the same size, those of a
// lower priority come first in the trace.
type Kind uint8

const (
	// IS_FIRST columns are 1 on the first row, and 0 elsewhere.
	IS_FIRST Kind = iota
	// SEQ columns hold the row index on each row.
	SEQ
)

// KINDS is the set of kinds instantiated in the preprocessed trace.
var KINDS = []Kind{IS_FIRST, SEQ}

// Priority determines the relative order of columns of the same size.
func (k Kind) Priority() uint {
	return uint(k)
}

func (k Kind) String() string {
	switch k {
	case IS_FIRST:
		return "is_first"
	case SEQ:
		return "seq"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
