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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_GenerateAll(t *testing.T) {
	var columns []Column[M31]
	// Restrict to smaller columns
	for _, column := range TraceColumns[M31]() {
		if column.LogSize() <= 12 {
			columns = append(columns, column)
		}
	}
	//
	for _, parallelism := range []uint{0, 1, 3} {
		evals := GenerateAll(columns, parallelism)
		//
		require.Len(t, evals, len(columns))
		//
		for i, column := range columns {
			require.Equal(t, column.LogSize(), evals[i].LogSize())
			require.Equal(t, column.Generate().Values(), evals[i].Values(), "column %s", column)
		}
	}
}
