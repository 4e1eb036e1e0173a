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
	"slices"
	"testing"

	"github.com/consensys/go-cairo-air/field"
	"github.com/consensys/go-cairo-air/field/koalabear"
	"github.com/consensys/go-cairo-air/pkg/domain"
	"github.com/stretchr/testify/require"
)

func Test_CheckCatalog_01(t *testing.T) {
	require.NoError(t, CheckCatalog(TraceColumns[M31]()))
	require.NoError(t, CheckCatalog(NewCatalog[koalabear.Element]().Columns()))
}

func Test_CheckCatalog_02(t *testing.T) {
	columns := TraceColumns[M31]()
	// Swap the two columns of size LOG_MAX_ROWS
	columns[0], columns[1] = columns[1], columns[0]
	//
	require.Error(t, CheckOrder(columns))
	require.NoError(t, CheckCoverage(columns))
	require.Error(t, CheckCatalog(columns))
}

func Test_CheckCatalog_03(t *testing.T) {
	columns := TraceColumns[M31]()
	// Reversing changes order, but nothing else
	slices.Reverse(columns)
	//
	require.Error(t, CheckOrder(columns))
	require.NoError(t, CheckCoverage(columns))
	require.NoError(t, CheckUniqueIds(columns))
}

func Test_CheckCoverage_01(t *testing.T) {
	columns := TraceColumns[M31]()
	// Drop the last column
	require.Error(t, CheckCoverage(columns[:len(columns)-1]))
	// Add a duplicate
	require.Error(t, CheckCoverage(append(columns, columns[0])))
	require.Error(t, CheckUniqueIds(append(columns, columns[0])))
	// Add a column of an unsupported size
	require.Error(t, CheckCoverage(append(columns, NewColumn[M31](SEQ, 3))))
	require.NoError(t, CheckOrder(append(columns, NewColumn[M31](SEQ, 3))))
}

func Test_CheckColumn(t *testing.T) {
	for _, column := range TraceColumns[M31]() {
		if column.LogSize() <= 10 {
			require.NoError(t, CheckColumn(column), "column %s", column)
		}
	}
}

func Test_CheckColumn_Largest(t *testing.T) {
	require.NoError(t, CheckColumn(NewColumn[M31](SEQ, LOG_MAX_ROWS)))
	require.NoError(t, CheckColumn(NewColumn[M31](IS_FIRST, LOG_MAX_ROWS)))
}

func Test_CheckEvaluation_01(t *testing.T) {
	column := NewColumn[M31](SEQ, 6)
	values := column.Generate().NaturalOrder()
	// Matching table
	require.NoError(t, checkEvaluation(column, domain.FromNaturalOrder(domain.NewCanonicCoset(6), values)))
	// Corrupt one row
	values[37] = field.Uint32[M31](0)
	require.Error(t, checkEvaluation(column, domain.FromNaturalOrder(domain.NewCanonicCoset(6), values)))
}

func Test_CheckEvaluation_02(t *testing.T) {
	// Table stored in natural (rather than bit-reversed) order
	column := NewColumn[M31](SEQ, 5)
	eval := domain.NewEvaluation(domain.NewCanonicCoset(5), column.Generate().NaturalOrder())
	//
	require.Error(t, checkEvaluation(column, eval))
}

func Test_CheckEvaluation_03(t *testing.T) {
	// Table of the wrong size
	column := NewColumn[M31](IS_FIRST, 6)
	//
	require.Error(t, checkEvaluation(column, NewColumn[M31](IS_FIRST, 5).Generate()))
	require.Error(t, checkEvaluation(column, NewColumn[M31](IS_FIRST, 7).Generate()))
}

func Test_CheckColumns(t *testing.T) {
	columns := TraceColumns[koalabear.Element]()
	//
	require.NoError(t, CheckColumns(columns, 12, 4))
	require.NoError(t, CheckColumns(columns, 8, 0))
}
