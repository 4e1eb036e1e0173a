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
package termio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TablePrinter_01(t *testing.T) {
	var out strings.Builder
	//
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "id", "size")
	tp.Set(0, 1, "seq")
	tp.Set(1, 1, "16")
	tp.SetEscape(0, 0, BoldAnsiEscape())
	tp.AnsiEscapes(false)
	//
	require.NoError(t, tp.Print(&out))
	require.Equal(t, "  id | size |\n seq |   16 |\n", out.String())
	require.Equal(t, "seq", tp.Get(0, 1))
	require.Equal(t, uint(2), tp.Height())
}

func Test_TablePrinter_02(t *testing.T) {
	var out strings.Builder
	//
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "preprocessed_seq_20")
	tp.SetMaxWidths(8)
	//
	require.NoError(t, tp.Print(&out))
	require.Equal(t, " prepro.. |\n", out.String())
}

func Test_TablePrinter_03(t *testing.T) {
	var out strings.Builder
	//
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "x")
	tp.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	//
	require.NoError(t, tp.Print(&out))
	require.Equal(t, "\033[31m x\033[0m |\n", out.String())
	require.Panics(t, func() { tp.SetRow(0, "a", "b") })
}
